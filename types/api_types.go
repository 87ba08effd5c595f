/*
# Module: types/api_types.go
External API response data structures.

## Linked Modules
(None - types package has no dependencies)

## Tags
data-types, api-client

## Exports
YelpSearchResponse, YelpBusiness, NominatimPlace

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "types/api_types.go" ;
    code:description "External API response data structures" ;
    code:exports :YelpSearchResponse, :YelpBusiness, :NominatimPlace ;
    code:tags "data-types", "api-client" .
<!-- End LinkedDoc RDF -->
*/
package types

// YelpSearchResponse represents the Yelp Fusion business search response
type YelpSearchResponse struct {
	Total      int            `json:"total"`
	Businesses []YelpBusiness `json:"businesses"`
}

// YelpBusiness represents a single business in a Yelp search response
type YelpBusiness struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	ImageURL     string  `json:"image_url"`
	URL          string  `json:"url"`
	Phone        string  `json:"phone"`
	DisplayPhone string  `json:"display_phone"`
	ReviewCount  int     `json:"review_count"`
	Rating       float64 `json:"rating"`
	Price        string  `json:"price"`
	IsClosed     bool    `json:"is_closed"`
	Distance     float64 `json:"distance"` // meters
	Coordinates  struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"coordinates"`
	Categories []struct {
		Alias string `json:"alias"`
		Title string `json:"title"`
	} `json:"categories"`
	Location struct {
		Address1 string `json:"address1"`
		City     string `json:"city"`
		State    string `json:"state"`
		ZipCode  string `json:"zip_code"`
	} `json:"location"`
}

// NominatimPlace represents one result from the Nominatim geocoding API.
// Nominatim returns coordinates as strings.
type NominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Address     struct {
		City     string `json:"city"`
		Town     string `json:"town"`
		Village  string `json:"village"`
		County   string `json:"county"`
		State    string `json:"state"`
		Region   string `json:"region"`
		Postcode string `json:"postcode"`
		Country  string `json:"country"`
	} `json:"address"`
}
