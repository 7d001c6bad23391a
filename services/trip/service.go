// File: services/trip/service.go
package trip

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"orbit/models"
	"orbit/services/flights"
	ai "orbit/services/intelligence"
	"orbit/utils"

	"go.uber.org/zap"
)

// Service plans a trip from a single free-text request.
type Service interface {
	PlanTrip(ctx context.Context, query string) (*models.TripPlanResult, error)
}

// DefaultTripService drives the parse -> date -> airports -> search ->
// select/format -> narrate pipeline. Strictly sequential, one pass per
// request, no retries; a failure at any step before formatting aborts the
// whole request.
type DefaultTripService struct {
	AI      ai.TextGenerator
	Flights flights.Client

	// Now is the clock used for travel-year inference. Defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultTripService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultTripService) PlanTrip(ctx context.Context, query string) (*models.TripPlanResult, error) {
	logger := utils.GetLogger()

	intent, err := s.parseIntent(ctx, query)
	if err != nil {
		return nil, err
	}

	date := travelDate(intent.TravelMonth, s.now())
	logger.Debug("resolved travel date",
		zap.String("origin", intent.Origin),
		zap.String("destination", intent.Destination),
		zap.String("date", date),
	)

	origin, err := s.Flights.ResolveAirport(ctx, intent.Origin)
	if err != nil {
		return nil, fmt.Errorf("resolve origin: %w", err)
	}
	destination, err := s.Flights.ResolveAirport(ctx, intent.Destination)
	if err != nil {
		return nil, fmt.Errorf("resolve destination: %w", err)
	}

	search, err := s.Flights.SearchFlights(ctx, origin, destination, date)
	if err != nil {
		return nil, fmt.Errorf("search flights: %w", err)
	}

	selected := SelectItineraries(search)
	flightData, err := FormatFlights(search)
	if err != nil {
		return nil, err
	}

	narrative, err := s.AI.GenerateContent(ctx, narrativePrompt(intent, selected))
	if err != nil {
		return nil, fmt.Errorf("itinerary narration: %w", err)
	}

	return &models.TripPlanResult{
		FlightData: flightData,
		Response:   narrative,
	}, nil
}

// narrativePrompt embeds the three selected itineraries, raw, into the fixed
// day-by-day instruction template.
func narrativePrompt(intent models.ParsedIntent, sel models.SelectedItineraries) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Plan a trip based on the following information:\n")
	fmt.Fprintf(&b, "- Origin: %s\n", intent.Origin)
	fmt.Fprintf(&b, "- Destination: %s\n", intent.Destination)
	b.WriteString("Make sure the itinerary has a flight section with the 3 options below, in case an airline is the best choice.\n")
	b.WriteString("If the destination is better reached by driving, train or bus, include the best option for that as well.\n\n")

	fmt.Fprintf(&b, "Best Overall Flight: %s\n\n", itineraryJSON(sel.BestOverall))
	fmt.Fprintf(&b, "Most Economical Flight: %s\n\n", itineraryJSON(sel.MostEconomical))
	fmt.Fprintf(&b, "Shortest Flight: %s\n\n", itineraryJSON(sel.Shortest))

	b.WriteString(`Please provide a detailed day-to-day itinerary including:

- Suggested flights or transportation
- Hotel recommendations
- Daily activities and attractions
- Estimated costs
- Local transportation options

Format the response in a clear, easy-to-read structure.`)
	return b.String()
}

func itineraryJSON(it *models.Itinerary) string {
	if it == nil {
		return "N/A"
	}
	b, err := json.Marshal(it)
	if err != nil {
		return "N/A"
	}
	return string(b)
}
