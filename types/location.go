/*
# Module: types/location.go
Session location data structures.

## Linked Modules
(None - types package has no dependencies)

## Tags
data-types, location, session

## Exports
Coordinate, LocationRecord

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "types/location.go" ;
    code:description "Session location data structures" ;
    code:exports :Coordinate, :LocationRecord ;
    code:tags "data-types", "location", "session" .
<!-- End LinkedDoc RDF -->
*/
package types

// Coordinate is a validated latitude/longitude pair from a request body.
// Values outside the +/-90 and +/-180 ranges are accepted and passed through.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// LocationRecord is the per-session location. Lat and Lon are pointers
// because (0, 0) is a real coordinate; nil means "not known yet", which
// happens when a city/state pair could not be forward geocoded.
type LocationRecord struct {
	Lat   *float64 `json:"lat,omitempty" dynamodbav:"lat,omitempty"`
	Lon   *float64 `json:"lon,omitempty" dynamodbav:"lon,omitempty"`
	City  string   `json:"city,omitempty" dynamodbav:"city,omitempty"`
	State string   `json:"state,omitempty" dynamodbav:"state,omitempty"`
}

// HasCoords reports whether both coordinates are known.
func (r LocationRecord) HasCoords() bool {
	return r.Lat != nil && r.Lon != nil
}

// HasPlace reports whether both city and state are known.
func (r LocationRecord) HasPlace() bool {
	return r.City != "" && r.State != ""
}
