package trip

import (
	"testing"

	"orbit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itinerary(id string, score float64, raw float64, minutes int, tags ...string) models.Itinerary {
	return models.Itinerary{
		ID:    id,
		Score: score,
		Price: models.Price{Raw: raw, Formatted: "$0"},
		Legs:  []models.Leg{{DurationInMinutes: minutes}},
		Tags:  tags,
	}
}

func TestSelectItineraries(t *testing.T) {
	t.Run("highest score wins best overall, no tags means no others", func(t *testing.T) {
		resp := &models.FlightSearchResponse{Itineraries: []models.Itinerary{
			itinerary("a", 3, 100, 60),
			itinerary("b", 7, 100, 60),
			itinerary("c", 5, 100, 60),
		}}

		sel := SelectItineraries(resp)

		require.NotNil(t, sel.BestOverall)
		assert.Equal(t, "b", sel.BestOverall.ID)
		assert.Nil(t, sel.MostEconomical)
		assert.Nil(t, sel.Shortest)
	})

	t.Run("score ties keep the earliest candidate", func(t *testing.T) {
		resp := &models.FlightSearchResponse{Itineraries: []models.Itinerary{
			itinerary("first", 7, 100, 60),
			itinerary("second", 7, 100, 60),
		}}

		sel := SelectItineraries(resp)

		require.NotNil(t, sel.BestOverall)
		assert.Equal(t, "first", sel.BestOverall.ID)
	})

	t.Run("lowest raw price among cheapest-tagged wins", func(t *testing.T) {
		resp := &models.FlightSearchResponse{Itineraries: []models.Itinerary{
			itinerary("a", 1, 200, 60, "cheapest"),
			itinerary("b", 1, 150, 60, "cheapest"),
			itinerary("c", 1, 50, 60), // untagged, must not win
		}}

		sel := SelectItineraries(resp)

		require.NotNil(t, sel.MostEconomical)
		assert.Equal(t, "b", sel.MostEconomical.ID)
	})

	t.Run("lowest total duration among shortest-tagged wins", func(t *testing.T) {
		multiLeg := models.Itinerary{
			ID:   "multi",
			Tags: []string{"shortest"},
			Legs: []models.Leg{
				{DurationInMinutes: 100},
				{DurationInMinutes: 100},
			},
		}
		resp := &models.FlightSearchResponse{Itineraries: []models.Itinerary{
			multiLeg,
			itinerary("direct", 1, 100, 180, "shortest"),
			itinerary("fastest-untagged", 1, 100, 30),
		}}

		sel := SelectItineraries(resp)

		require.NotNil(t, sel.Shortest)
		assert.Equal(t, "direct", sel.Shortest.ID)
	})

	t.Run("empty list yields all nil without error", func(t *testing.T) {
		sel := SelectItineraries(&models.FlightSearchResponse{Itineraries: []models.Itinerary{}})

		assert.Nil(t, sel.BestOverall)
		assert.Nil(t, sel.MostEconomical)
		assert.Nil(t, sel.Shortest)
	})

	t.Run("missing list yields all nil", func(t *testing.T) {
		sel := SelectItineraries(&models.FlightSearchResponse{})

		assert.Nil(t, sel.BestOverall)
		assert.Nil(t, sel.MostEconomical)
		assert.Nil(t, sel.Shortest)
	})

	t.Run("negative scores still produce a best overall", func(t *testing.T) {
		resp := &models.FlightSearchResponse{Itineraries: []models.Itinerary{
			itinerary("a", -5, 100, 60),
			itinerary("b", -2, 100, 60),
		}}

		sel := SelectItineraries(resp)

		require.NotNil(t, sel.BestOverall)
		assert.Equal(t, "b", sel.BestOverall.ID)
	})
}
