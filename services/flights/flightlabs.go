// File: services/flights/flightlabs.go
package flights

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"orbit/models"
)

const defaultBaseURL = "https://www.goflightlabs.com"

// FlightLabsClient implements Client against the goflightlabs.com REST API.
type FlightLabsClient struct {
	accessKey  string
	baseURL    string
	httpClient *http.Client
}

// NewFlightLabsClient builds a client for the given access key. An empty
// baseURL falls back to the production endpoint; tests point it at a local
// server instead.
func NewFlightLabsClient(accessKey, baseURL string) *FlightLabsClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &FlightLabsClient{
		accessKey:  accessKey,
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// airportRecord is the slice element of the retrieveAirport response. Only
// the two identifiers are of interest.
type airportRecord struct {
	EntityID string `json:"entityId"`
	SkyID    string `json:"skyId"`
}

func (c *FlightLabsClient) ResolveAirport(ctx context.Context, query string) (models.AirportIdentity, error) {
	params := url.Values{}
	params.Set("access_key", c.accessKey)
	params.Set("query", query)

	var records []airportRecord
	if err := c.getJSON(ctx, "/retrieveAirport", params, &records); err != nil {
		return models.AirportIdentity{}, err
	}
	if len(records) == 0 {
		return models.AirportIdentity{}, &NotFoundError{Query: query}
	}
	return models.AirportIdentity{
		EntityID: records[0].EntityID,
		SkyID:    records[0].SkyID,
	}, nil
}

func (c *FlightLabsClient) SearchFlights(ctx context.Context, origin, destination models.AirportIdentity, date string) (*models.FlightSearchResponse, error) {
	params := url.Values{}
	params.Set("access_key", c.accessKey)
	params.Set("originSkyId", origin.SkyID)
	params.Set("destinationSkyId", destination.SkyID)
	params.Set("originEntityId", origin.EntityID)
	params.Set("destinationEntityId", destination.EntityID)
	params.Set("date", date)

	var resp models.FlightSearchResponse
	if err := c.getJSON(ctx, "/retrieveFlights", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *FlightLabsClient) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build flight api request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call flight api %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("flight api %s returned status %d", endpoint, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode flight api %s response: %w", endpoint, err)
	}
	return nil
}
