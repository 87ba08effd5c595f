/*
# Module: types/activity.go
Recreational activity data structures.

## Linked Modules
(None - types package has no dependencies)

## Tags
data-types, activity

## Exports
Activity, ActivityDetail, ActivityFilter

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "types/activity.go" ;
    code:description "Recreational activity data structures" ;
    code:exports :Activity, :ActivityDetail, :ActivityFilter ;
    code:tags "data-types", "activity" .
<!-- End LinkedDoc RDF -->
*/
package types

// ActivityFilter holds the optional listing filters parsed from query
// parameters. Pointer fields distinguish "not supplied" from zero.
type ActivityFilter struct {
	Category         string
	MaxDistanceMiles *float64
	MinRating        *float64
	OpenNow          bool
}

// Activity is one business from the search provider, flattened for display.
type Activity struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Address       string  `json:"address"`
	DistanceMiles float64 `json:"distance_miles"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	Rating        float64 `json:"rating"`
	IsClosed      bool    `json:"is_closed"`
}

// ActivityDetail extends Activity with the fields only the detail page shows.
type ActivityDetail struct {
	Activity
	Phone         string `json:"phone"`
	ReviewCount   int    `json:"review_count"`
	ImageURL      string `json:"image_url"`
	SourceURL     string `json:"source_url"`
	ZipCode       string `json:"zip_code"`
	Price         string `json:"price"`
	AIDescription string `json:"ai_description"`
}
