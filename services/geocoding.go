/*
# Module: services/geocoding.go
Geocoding with sentinel fallbacks so lookups never fail a request.

## Linked Modules
- [clients/nominatim](../clients/nominatim.go) - Nominatim API transport
- [types/api_types](../types/api_types.go) - Nominatim response types

## Tags
business-logic, geocoding, fallback

## Exports
GeocodingService, NewGeocodingService, GeocodeClient, ReverseResult, ForwardResult, Reverse, Forward

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "services/geocoding.go" ;
    code:description "Geocoding with sentinel fallbacks so lookups never fail a request" ;
    code:linksTo [
        code:name "clients/nominatim" ;
        code:path "../clients/nominatim.go" ;
        code:relationship "Nominatim API transport"
    ], [
        code:name "types/api_types" ;
        code:path "../types/api_types.go" ;
        code:relationship "Nominatim response types"
    ] ;
    code:exports :GeocodingService, :NewGeocodingService, :GeocodeClient, :ReverseResult, :ForwardResult, :Reverse, :Forward ;
    code:tags "business-logic", "geocoding", "fallback" .
<!-- End LinkedDoc RDF -->
*/
package services

import (
	"log"
	"strconv"

	"recreo/types"
)

// Sentinels stored when reverse geocoding cannot resolve a field.
const (
	UnknownCity  = "Unknown City"
	UnknownState = "Unknown State"
)

// GeocodeClient is the transport this service needs. *clients.NominatimClient
// satisfies it.
type GeocodeClient interface {
	ReverseGeocode(lat, lon float64) (*types.NominatimPlace, error)
	ForwardGeocode(city, state string) (*types.NominatimPlace, error)
}

// ReverseResult is a coordinates-to-place lookup outcome. Resolved is false
// when any field fell back to a sentinel.
type ReverseResult struct {
	City     string
	State    string
	Resolved bool
}

// ForwardResult is a place-to-coordinates lookup outcome. Lat/Lon are only
// meaningful when Resolved is true.
type ForwardResult struct {
	Lat      float64
	Lon      float64
	Resolved bool
}

// GeocodingService wraps the geocoding client with the fallback policy
type GeocodingService struct {
	client GeocodeClient
}

// NewGeocodingService creates a new geocoding service
func NewGeocodingService(client GeocodeClient) *GeocodingService {
	return &GeocodingService{client: client}
}

// Reverse resolves coordinates to a city/state pair. It never fails: any
// transport error or missing address field degrades to the sentinels.
// Locality preference is city, then town, then village; subdivision is
// state, then region.
func (s *GeocodingService) Reverse(lat, lon float64) ReverseResult {
	place, err := s.client.ReverseGeocode(lat, lon)
	if err != nil || place == nil {
		log.Printf("⚠️  Reverse geocode failed for (%.6f, %.6f): %v", lat, lon, err)
		return ReverseResult{City: UnknownCity, State: UnknownState}
	}

	city := place.Address.City
	if city == "" {
		city = place.Address.Town
	}
	if city == "" {
		city = place.Address.Village
	}

	state := place.Address.State
	if state == "" {
		state = place.Address.Region
	}

	resolved := city != "" && state != ""
	if city == "" {
		city = UnknownCity
	}
	if state == "" {
		state = UnknownState
	}
	if !resolved {
		log.Printf("⚠️  Incomplete address for (%.6f, %.6f), stored as %s, %s", lat, lon, city, state)
	}

	return ReverseResult{City: city, State: state, Resolved: resolved}
}

// Forward resolves a city/state pair to coordinates. Best effort: any
// failure, empty result set, or unparseable coordinate yields an unresolved
// result and the caller proceeds without coordinates.
func (s *GeocodingService) Forward(city, state string) ForwardResult {
	place, err := s.client.ForwardGeocode(city, state)
	if err != nil {
		log.Printf("⚠️  Forward geocode failed for %s, %s: %v", city, state, err)
		return ForwardResult{}
	}
	if place == nil {
		log.Printf("⚠️  No geocoding result for %s, %s", city, state)
		return ForwardResult{}
	}

	lat, latErr := strconv.ParseFloat(place.Lat, 64)
	lon, lonErr := strconv.ParseFloat(place.Lon, 64)
	if latErr != nil || lonErr != nil {
		log.Printf("⚠️  Unparseable coordinates %q, %q for %s, %s", place.Lat, place.Lon, city, state)
		return ForwardResult{}
	}

	return ForwardResult{Lat: lat, Lon: lon, Resolved: true}
}
