/*
# Module: clients/yelp.go
Yelp Fusion API client for nearby business search.

## Linked Modules
- [types/api_types](../types/api_types.go) - Yelp response types

## Tags
api-client, yelp, business, search

## Exports
YelpClient, NewYelpClient, NewYelpClientWithOAuth, YelpSearchParams, SearchBusinesses

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "clients/yelp.go" ;
    code:description "Yelp Fusion API client for nearby business search" ;
    code:linksTo [
        code:name "types/api_types" ;
        code:path "../types/api_types.go" ;
        code:relationship "Yelp response types"
    ] ;
    code:exports :YelpClient, :NewYelpClient, :NewYelpClientWithOAuth, :YelpSearchParams, :SearchBusinesses ;
    code:tags "api-client", "yelp", "business", "search" .
<!-- End LinkedDoc RDF -->
*/
package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"recreo/types"
)

const (
	defaultYelpBaseURL = "https://api.yelp.com"

	// Yelp rejects search radii above 40000 meters
	maxYelpRadiusMeters = 40000
)

// YelpSearchParams holds the query parameters for a business search
type YelpSearchParams struct {
	Latitude     float64
	Longitude    float64
	Categories   string
	Limit        int
	RadiusMeters int
	OpenNow      bool
}

// YelpClient handles Yelp Fusion API requests
type YelpClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewYelpClient creates a Yelp client authenticated with a static API key.
// An empty baseURL selects the public api.yelp.com endpoint.
func NewYelpClient(apiKey, baseURL string) *YelpClient {
	if baseURL == "" {
		baseURL = defaultYelpBaseURL
	}
	return &YelpClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// NewYelpClientWithOAuth creates a Yelp client that exchanges app credentials
// for bearer tokens via the legacy /oauth2/token endpoint. The token transport
// refreshes expired tokens on its own.
func NewYelpClientWithOAuth(clientID, clientSecret, baseURL string) *YelpClient {
	if baseURL == "" {
		baseURL = defaultYelpBaseURL
	}
	cc := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     baseURL + "/oauth2/token",
	}
	httpClient := cc.Client(context.Background())
	httpClient.Timeout = 5 * time.Second
	return &YelpClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// SearchBusinesses runs a business search near the given coordinates
func (c *YelpClient) SearchBusinesses(params YelpSearchParams) (*types.YelpSearchResponse, error) {
	radius := params.RadiusMeters
	if radius > maxYelpRadiusMeters {
		radius = maxYelpRadiusMeters
	}

	query := url.Values{}
	query.Add("latitude", fmt.Sprintf("%.6f", params.Latitude))
	query.Add("longitude", fmt.Sprintf("%.6f", params.Longitude))
	query.Add("categories", params.Categories)
	query.Add("limit", strconv.Itoa(params.Limit))
	query.Add("radius", strconv.Itoa(radius))
	if params.OpenNow {
		query.Add("open_now", "true")
	}

	req, err := http.NewRequest("GET", c.baseURL+"/v3/businesses/search?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Yelp API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Yelp API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result types.YelpSearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse Yelp response: %w", err)
	}

	return &result, nil
}
