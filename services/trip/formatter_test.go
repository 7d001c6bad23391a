package trip

import (
	"testing"

	"orbit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchResponse(its ...models.Itinerary) *models.FlightSearchResponse {
	// A no-arg call must mean an empty itinerary list, not a missing key.
	if its == nil {
		its = []models.Itinerary{}
	}
	return &models.FlightSearchResponse{Itineraries: its}
}

func TestFormatFlights(t *testing.T) {
	leg := models.Leg{
		Origin:            models.AirportInfo{City: "Phoenix", DisplayCode: "PHX"},
		Destination:       models.AirportInfo{City: "Tokyo", DisplayCode: "NRT"},
		Departure:         "2024-07-01T08:30:00",
		Arrival:           "2024-07-01T14:35:00",
		DurationInMinutes: 125,
		Carriers: models.Carriers{Marketing: []models.Carrier{
			{Name: "Japan Airlines", AlternateID: "JL"},
		}},
		Segments: []models.Segment{
			{FlightNumber: "61", MarketingCarrier: models.Carrier{AlternateID: "JL"}},
		},
	}

	t.Run("flattens one leg into one record", func(t *testing.T) {
		resp := searchResponse(models.Itinerary{
			Price: models.Price{Raw: 850, Formatted: "$850"},
			Legs:  []models.Leg{leg},
		})

		flights, err := FormatFlights(resp)
		require.NoError(t, err)
		require.Len(t, flights, 1)

		got := flights[0]
		assert.Equal(t, "$850", got.Price)
		assert.Equal(t, "Phoenix (PHX)", got.From)
		assert.Equal(t, "Tokyo (NRT)", got.To)
		assert.Equal(t, "2024-07-01 08:30", got.Departure)
		assert.Equal(t, "2024-07-01 14:35", got.Arrival)
		assert.Equal(t, "2h 5m", got.Duration)
		assert.Equal(t, "Japan Airlines", got.Airline)
		assert.Equal(t, "61", got.FlightNumber)
		assert.Equal(t, "JL", got.AlternateID)
	})

	t.Run("multi-leg itinerary repeats the itinerary price", func(t *testing.T) {
		second := leg
		second.Origin = models.AirportInfo{City: "Tokyo", DisplayCode: "NRT"}
		second.Destination = models.AirportInfo{City: "Osaka", DisplayCode: "KIX"}

		resp := searchResponse(models.Itinerary{
			Price: models.Price{Formatted: "$999"},
			Legs:  []models.Leg{leg, second},
		})

		flights, err := FormatFlights(resp)
		require.NoError(t, err)
		require.Len(t, flights, 2)
		assert.Equal(t, "$999", flights[0].Price)
		assert.Equal(t, "$999", flights[1].Price)
	})

	t.Run("empty marketing carriers falls back to Unknown Airline", func(t *testing.T) {
		bare := leg
		bare.Carriers = models.Carriers{}
		bare.Segments = nil

		flights, err := FormatFlights(searchResponse(models.Itinerary{Legs: []models.Leg{bare}}))
		require.NoError(t, err)
		require.Len(t, flights, 1)
		assert.Equal(t, "Unknown Airline", flights[0].Airline)
		assert.Equal(t, "N/A", flights[0].FlightNumber)
		assert.Equal(t, "N/A", flights[0].AlternateID)
	})

	t.Run("empty itinerary list yields empty non-nil slice", func(t *testing.T) {
		flights, err := FormatFlights(searchResponse())
		require.NoError(t, err)
		assert.NotNil(t, flights)
		assert.Empty(t, flights)
	})

	t.Run("missing itineraries key is fatal", func(t *testing.T) {
		flights, err := FormatFlights(&models.FlightSearchResponse{Itineraries: nil})
		assert.ErrorIs(t, err, ErrNoItineraries)
		assert.Nil(t, flights)
	})

	t.Run("itinerary without legs is fatal", func(t *testing.T) {
		flights, err := FormatFlights(searchResponse(models.Itinerary{ID: "broken"}))
		assert.Error(t, err)
		assert.Nil(t, flights)
	})

	t.Run("unparseable timestamp fails the whole call", func(t *testing.T) {
		bad := leg
		bad.Departure = "yesterday"

		flights, err := FormatFlights(searchResponse(models.Itinerary{Legs: []models.Leg{bad}}))
		assert.Error(t, err)
		assert.Nil(t, flights)
	})

	t.Run("zoned timestamps are accepted", func(t *testing.T) {
		zoned := leg
		zoned.Departure = "2024-07-01T08:30:00+09:00"
		zoned.Arrival = "2024-07-01T14:35:00+09:00"

		flights, err := FormatFlights(searchResponse(models.Itinerary{Legs: []models.Leg{zoned}}))
		require.NoError(t, err)
		assert.Equal(t, "2024-07-01 08:30", flights[0].Departure)
	})
}

func TestFormatLegTimeDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{125, "2h 5m"},
		{60, "1h 0m"},
		{59, "0h 59m"},
		{0, "0h 0m"},
	}

	for _, tt := range tests {
		leg := models.Leg{
			Departure:         "2024-07-01T08:30:00",
			Arrival:           "2024-07-01T10:35:00",
			DurationInMinutes: tt.minutes,
		}
		flights, err := FormatFlights(searchResponse(models.Itinerary{Legs: []models.Leg{leg}}))
		require.NoError(t, err)
		assert.Equal(t, tt.want, flights[0].Duration)
	}
}
