package models

// AirportIdentity is the pair of identifiers the flight-search API needs to
// address one airport. Resolved fresh on every request, never cached.
type AirportIdentity struct {
	EntityID string `json:"entityId"`
	SkyID    string `json:"skyId"`
}

// FlightSearchResponse mirrors the FlightLabs retrieveFlights payload.
// A nil Itineraries slice means the key was absent from the payload; an
// empty search result decodes to a non-nil empty slice.
type FlightSearchResponse struct {
	Itineraries []Itinerary `json:"itineraries"`
}

// Itinerary is one priced travel option consisting of one or more legs.
type Itinerary struct {
	ID    string   `json:"id,omitempty"`
	Price Price    `json:"price"`
	Legs  []Leg    `json:"legs"`
	Score float64  `json:"score"`
	Tags  []string `json:"tags,omitempty"`
}

type Price struct {
	Raw       float64 `json:"raw"`
	Formatted string  `json:"formatted"`
}

// Leg is one directional flight segment with origin, destination and timing.
type Leg struct {
	Origin            AirportInfo `json:"origin"`
	Destination       AirportInfo `json:"destination"`
	Departure         string      `json:"departure"`
	Arrival           string      `json:"arrival"`
	DurationInMinutes int         `json:"durationInMinutes"`
	StopCount         int         `json:"stopCount,omitempty"`
	Carriers          Carriers    `json:"carriers"`
	Segments          []Segment   `json:"segments,omitempty"`
}

type AirportInfo struct {
	City        string `json:"city"`
	DisplayCode string `json:"displayCode"`
}

type Carriers struct {
	Marketing []Carrier `json:"marketing"`
}

type Carrier struct {
	Name        string `json:"name"`
	AlternateID string `json:"alternateId,omitempty"`
}

type Segment struct {
	FlightNumber     string  `json:"flightNumber"`
	MarketingCarrier Carrier `json:"marketingCarrier"`
}
