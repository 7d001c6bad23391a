package trip

import (
	"math"
	"slices"

	"orbit/models"
)

// Tags the search API attaches to itineraries meeting a criterion.
const (
	tagCheapest = "cheapest"
	tagShortest = "shortest"
)

// SelectItineraries scans the itinerary list once and picks three notable
// options: the strictly-highest score overall, the lowest raw price among
// those tagged cheapest, and the lowest total duration among those tagged
// shortest. Ties keep the earliest-seen candidate. A missing or empty list
// yields all-nil selections; that is not an error.
func SelectItineraries(resp *models.FlightSearchResponse) models.SelectedItineraries {
	var sel models.SelectedItineraries
	if resp == nil {
		return sel
	}

	bestScore := math.Inf(-1)
	cheapestPrice := math.Inf(1)
	shortestDuration := math.Inf(1)

	for i := range resp.Itineraries {
		it := &resp.Itineraries[i]

		if it.Score > bestScore {
			bestScore = it.Score
			sel.BestOverall = it
		}

		if slices.Contains(it.Tags, tagCheapest) && it.Price.Raw < cheapestPrice {
			cheapestPrice = it.Price.Raw
			sel.MostEconomical = it
		}

		if slices.Contains(it.Tags, tagShortest) {
			if d := float64(totalDuration(it)); d < shortestDuration {
				shortestDuration = d
				sel.Shortest = it
			}
		}
	}
	return sel
}

// totalDuration sums the leg durations of an itinerary in minutes.
func totalDuration(it *models.Itinerary) int {
	total := 0
	for _, leg := range it.Legs {
		total += leg.DurationInMinutes
	}
	return total
}
