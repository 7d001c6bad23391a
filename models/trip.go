package models

// ParsedIntent is the structured travel request extracted from free text by
// the language model. All three fields are required.
type ParsedIntent struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	TravelMonth int    `json:"travel_month"` // 1-12
}

// SelectedItineraries groups the three notable options picked from a single
// search response. Any of them may be nil when no itinerary qualifies.
type SelectedItineraries struct {
	BestOverall    *Itinerary `json:"best_overall"`
	MostEconomical *Itinerary `json:"most_economical"`
	Shortest       *Itinerary `json:"shortest"`
}

// FormattedFlight is one flattened leg presented to the client. The price is
// the owning itinerary's display string, repeated on every leg.
type FormattedFlight struct {
	Price        string `json:"price"`
	From         string `json:"from"`
	To           string `json:"to"`
	Departure    string `json:"departure"`
	Arrival      string `json:"arrival"`
	Duration     string `json:"duration"`
	Airline      string `json:"airline"`
	FlightNumber string `json:"flightNumber"`
	AlternateID  string `json:"alternateId"`
}

// TripPlanResult is the final API response: flattened flight records plus the
// generated prose itinerary.
type TripPlanResult struct {
	FlightData []FormattedFlight `json:"flight_data"`
	Response   string            `json:"response"`
}
