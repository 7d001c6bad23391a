package flights

import (
	"context"
	"fmt"

	"orbit/models"
)

// Client talks to the external flight-search collaborator. Both operations
// are single, synchronous calls with no retries or pagination.
type Client interface {
	// ResolveAirport maps a free-text place name to the identifier pair the
	// search API requires. The first candidate returned by the lookup wins.
	ResolveAirport(ctx context.Context, query string) (models.AirportIdentity, error)

	// SearchFlights runs one search for the given airports and YYYY-MM-DD date.
	SearchFlights(ctx context.Context, origin, destination models.AirportIdentity, date string) (*models.FlightSearchResponse, error)
}

// NotFoundError is returned when an airport lookup yields no candidates.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no airport found for query: %s", e.Query)
}
