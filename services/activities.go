/*
# Module: services/activities.go
Nearby recreational activity search, filtering, and detail lookup.

## Linked Modules
- [clients/yelp](../clients/yelp.go) - Yelp Fusion API transport
- [types/activity](../types/activity.go) - Activity data structures

## Tags
business-logic, search, activities, filtering

## Exports
ActivityService, NewActivityService, BusinessSearcher, SearchNearby, FindByName, DefaultCategories

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "services/activities.go" ;
    code:description "Nearby recreational activity search, filtering, and detail lookup" ;
    code:linksTo [
        code:name "clients/yelp" ;
        code:path "../clients/yelp.go" ;
        code:relationship "Yelp Fusion API transport"
    ], [
        code:name "types/activity" ;
        code:path "../types/activity.go" ;
        code:relationship "Activity data structures"
    ] ;
    code:exports :ActivityService, :NewActivityService, :BusinessSearcher, :SearchNearby, :FindByName, :DefaultCategories ;
    code:tags "business-logic", "search", "activities", "filtering" .
<!-- End LinkedDoc RDF -->
*/
package services

import (
	"log"
	"math"
	"strings"

	"recreo/clients"
	"recreo/types"
)

// DefaultCategories is the recreational category set searched when the
// listing has no explicit type filter (Yelp category aliases).
const DefaultCategories = "active,arts,beaches,fitness,hiking,localflavor,museums,parks,tours"

const (
	// detail lookups search wider than the listing so a business found
	// through a filtered listing is still matchable on its own page
	detailCategories = DefaultCategories + ",restaurants,food,nightlife"

	metersPerMile = 1609

	defaultRadiusMeters = 25000

	listLimit   = 20
	detailLimit = 40
)

// BusinessSearcher is the search transport this service needs.
// *clients.YelpClient satisfies it.
type BusinessSearcher interface {
	SearchBusinesses(params clients.YelpSearchParams) (*types.YelpSearchResponse, error)
}

// ActivityService turns coordinates plus optional filters into activity lists
type ActivityService struct {
	yelp BusinessSearcher
}

// NewActivityService creates a new activity search service
func NewActivityService(yelp BusinessSearcher) *ActivityService {
	return &ActivityService{yelp: yelp}
}

// SearchNearby lists recreational activities around the given coordinates.
// Provider failures degrade to an empty list and are logged; they never fail
// the page. The minimum-rating filter is applied after fetching because the
// provider has no rating parameter.
func (s *ActivityService) SearchNearby(lat, lon float64, filter types.ActivityFilter) []types.Activity {
	categories := DefaultCategories
	if filter.Category != "" {
		categories = filter.Category
	}

	radius := defaultRadiusMeters
	if filter.MaxDistanceMiles != nil {
		radius = int(*filter.MaxDistanceMiles * metersPerMile)
	}

	result, err := s.yelp.SearchBusinesses(clients.YelpSearchParams{
		Latitude:     lat,
		Longitude:    lon,
		Categories:   categories,
		Limit:        listLimit,
		RadiusMeters: radius,
		OpenNow:      filter.OpenNow,
	})
	if err != nil {
		log.Printf("⚠️  Activity search failed: %v", err)
		return []types.Activity{}
	}

	activities := []types.Activity{}
	for _, business := range result.Businesses {
		if filter.MinRating != nil && business.Rating < *filter.MinRating {
			continue
		}
		activities = append(activities, mapActivity(business))
	}

	log.Printf("🏪 Found %d activities near (%.6f, %.6f)", len(activities), lat, lon)
	return activities
}

// FindByName returns the first nearby business whose normalized name matches
// the requested one, or nil when nothing matches. The lookup searches a
// broader category set than the listing, with a higher limit.
func (s *ActivityService) FindByName(lat, lon float64, name string) *types.ActivityDetail {
	result, err := s.yelp.SearchBusinesses(clients.YelpSearchParams{
		Latitude:     lat,
		Longitude:    lon,
		Categories:   detailCategories,
		Limit:        detailLimit,
		RadiusMeters: defaultRadiusMeters,
	})
	if err != nil {
		log.Printf("⚠️  Activity detail search failed: %v", err)
		return nil
	}

	want := normalizeName(name)
	for _, business := range result.Businesses {
		if normalizeName(business.Name) != want {
			continue
		}

		phone := business.DisplayPhone
		if phone == "" {
			phone = business.Phone
		}
		return &types.ActivityDetail{
			Activity:    mapActivity(business),
			Phone:       phone,
			ReviewCount: business.ReviewCount,
			ImageURL:    business.ImageURL,
			SourceURL:   business.URL,
			ZipCode:     business.Location.ZipCode,
			Price:       business.Price,
		}
	}

	log.Printf("⚠️  No activity named %q among %d nearby businesses", name, len(result.Businesses))
	return nil
}

// normalizeName makes URL path segments comparable with provider names
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func mapActivity(business types.YelpBusiness) types.Activity {
	name := business.Name
	if name == "" {
		name = "Unnamed"
	}

	titles := []string{}
	for _, category := range business.Categories {
		titles = append(titles, category.Title)
	}

	parts := []string{}
	if business.Location.Address1 != "" {
		parts = append(parts, business.Location.Address1)
	}
	if business.Location.City != "" {
		parts = append(parts, business.Location.City)
	}

	return types.Activity{
		Name:          name,
		Description:   strings.Join(titles, ", "),
		Address:       strings.Join(parts, ", "),
		DistanceMiles: metersToMiles(business.Distance),
		Lat:           business.Coordinates.Latitude,
		Lon:           business.Coordinates.Longitude,
		Rating:        business.Rating,
		IsClosed:      business.IsClosed,
	}
}

// metersToMiles converts a provider distance to miles rounded to two
// decimals (1609 meters to the mile).
func metersToMiles(meters float64) float64 {
	return math.Round(meters/metersPerMile*100) / 100
}
