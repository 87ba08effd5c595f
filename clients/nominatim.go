/*
# Module: clients/nominatim.go
Nominatim geocoding API client for reverse and forward lookups.

## Linked Modules
- [types/api_types](../types/api_types.go) - Nominatim response types

## Tags
api-client, geocoding, nominatim

## Exports
NominatimClient, NewNominatimClient, ReverseGeocode, ForwardGeocode

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "clients/nominatim.go" ;
    code:description "Nominatim geocoding API client for reverse and forward lookups" ;
    code:linksTo [
        code:name "types/api_types" ;
        code:path "../types/api_types.go" ;
        code:relationship "Nominatim response types"
    ] ;
    code:exports :NominatimClient, :NewNominatimClient, :ReverseGeocode, :ForwardGeocode ;
    code:tags "api-client", "geocoding", "nominatim" .
<!-- End LinkedDoc RDF -->
*/
package clients

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"recreo/types"
)

const (
	defaultNominatimBaseURL = "https://nominatim.openstreetmap.org"

	// Nominatim's usage policy requires an identifying User-Agent.
	nominatimUserAgent = "RecreoApp/1.0"
)

// NominatimClient handles Nominatim geocoding API requests
type NominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewNominatimClient creates a new Nominatim API client. An empty baseURL
// selects the public nominatim.openstreetmap.org instance.
func NewNominatimClient(baseURL string) *NominatimClient {
	if baseURL == "" {
		baseURL = defaultNominatimBaseURL
	}
	return &NominatimClient{
		baseURL:    baseURL,
		userAgent:  nominatimUserAgent,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// ReverseGeocode looks up the address at the given coordinates
func (c *NominatimClient) ReverseGeocode(lat, lon float64) (*types.NominatimPlace, error) {
	params := url.Values{}
	params.Add("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Add("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Add("format", "json")
	params.Add("addressdetails", "1")

	body, err := c.get(c.baseURL + "/reverse?" + params.Encode())
	if err != nil {
		return nil, err
	}

	var place types.NominatimPlace
	if err := json.Unmarshal(body, &place); err != nil {
		return nil, fmt.Errorf("failed to parse Nominatim response: %w", err)
	}

	return &place, nil
}

// ForwardGeocode looks up coordinates for a US city/state pair. Returns nil
// without an error when Nominatim has no match.
func (c *NominatimClient) ForwardGeocode(city, state string) (*types.NominatimPlace, error) {
	params := url.Values{}
	params.Add("city", city)
	params.Add("state", state)
	params.Add("country", "United States")
	params.Add("format", "json")
	params.Add("addressdetails", "1")
	params.Add("limit", "1")

	body, err := c.get(c.baseURL + "/search?" + params.Encode())
	if err != nil {
		return nil, err
	}

	var places []types.NominatimPlace
	if err := json.Unmarshal(body, &places); err != nil {
		return nil, fmt.Errorf("failed to parse Nominatim response: %w", err)
	}

	if len(places) == 0 {
		return nil, nil
	}
	return &places[0], nil
}

func (c *NominatimClient) get(fullURL string) ([]byte, error) {
	req, err := http.NewRequest("GET", fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Nominatim API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Nominatim API error (status %d): %s", resp.StatusCode, string(body))
	}

	return body, nil
}
