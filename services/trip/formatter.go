package trip

import (
	"errors"
	"fmt"
	"time"

	"orbit/models"
)

// ErrNoItineraries marks a search payload without an itineraries key. An
// empty itinerary list is fine; a missing one is malformed upstream data.
var ErrNoItineraries = errors.New("flight search response has no itineraries")

// FormatFlights flattens every leg of every itinerary into display records.
// Each record carries its itinerary's pre-formatted price. Formatting is
// all-or-nothing: malformed input fails the whole call, no partial results.
func FormatFlights(resp *models.FlightSearchResponse) ([]models.FormattedFlight, error) {
	if resp == nil || resp.Itineraries == nil {
		return nil, ErrNoItineraries
	}

	flights := make([]models.FormattedFlight, 0, len(resp.Itineraries))
	for _, it := range resp.Itineraries {
		if it.Legs == nil {
			return nil, fmt.Errorf("itinerary %q has no legs", it.ID)
		}
		for _, leg := range it.Legs {
			departure, err := formatLegTime(leg.Departure)
			if err != nil {
				return nil, fmt.Errorf("leg departure: %w", err)
			}
			arrival, err := formatLegTime(leg.Arrival)
			if err != nil {
				return nil, fmt.Errorf("leg arrival: %w", err)
			}

			airline := "Unknown Airline"
			if len(leg.Carriers.Marketing) > 0 {
				airline = leg.Carriers.Marketing[0].Name
			}

			flightNumber, alternateID := "N/A", "N/A"
			if len(leg.Segments) > 0 {
				if fn := leg.Segments[0].FlightNumber; fn != "" {
					flightNumber = fn
				}
				if alt := leg.Segments[0].MarketingCarrier.AlternateID; alt != "" {
					alternateID = alt
				}
			}

			flights = append(flights, models.FormattedFlight{
				Price:        it.Price.Formatted,
				From:         fmt.Sprintf("%s (%s)", leg.Origin.City, leg.Origin.DisplayCode),
				To:           fmt.Sprintf("%s (%s)", leg.Destination.City, leg.Destination.DisplayCode),
				Departure:    departure,
				Arrival:      arrival,
				Duration:     fmt.Sprintf("%dh %dm", leg.DurationInMinutes/60, leg.DurationInMinutes%60),
				Airline:      airline,
				FlightNumber: flightNumber,
				AlternateID:  alternateID,
			})
		}
	}
	return flights, nil
}

// Leg timestamps usually arrive as zone-less local times; some responses
// carry an offset.
var legTimeLayouts = []string{"2006-01-02T15:04:05", time.RFC3339}

func formatLegTime(value string) (string, error) {
	for _, layout := range legTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02 15:04"), nil
		}
	}
	return "", fmt.Errorf("unparseable timestamp %q", value)
}
