package services

import (
	"fmt"
	"testing"

	"recreo/types"
)

type fakeGeocodeClient struct {
	reverse func(lat, lon float64) (*types.NominatimPlace, error)
	forward func(city, state string) (*types.NominatimPlace, error)
}

func (f *fakeGeocodeClient) ReverseGeocode(lat, lon float64) (*types.NominatimPlace, error) {
	return f.reverse(lat, lon)
}

func (f *fakeGeocodeClient) ForwardGeocode(city, state string) (*types.NominatimPlace, error) {
	return f.forward(city, state)
}

func placeWithAddress(city, town, village, state, region string) *types.NominatimPlace {
	var place types.NominatimPlace
	place.Address.City = city
	place.Address.Town = town
	place.Address.Village = village
	place.Address.State = state
	place.Address.Region = region
	return &place
}

func TestGeocodingService_Reverse(t *testing.T) {
	tests := []struct {
		name         string
		place        *types.NominatimPlace
		err          error
		wantCity     string
		wantState    string
		wantResolved bool
	}{
		{
			name:         "city and state",
			place:        placeWithAddress("Colorado Springs", "", "", "Colorado", ""),
			wantCity:     "Colorado Springs",
			wantState:    "Colorado",
			wantResolved: true,
		},
		{
			name:         "town preferred when city missing",
			place:        placeWithAddress("", "Manitou Springs", "Green Mountain Falls", "Colorado", ""),
			wantCity:     "Manitou Springs",
			wantState:    "Colorado",
			wantResolved: true,
		},
		{
			name:         "village when city and town missing",
			place:        placeWithAddress("", "", "Victor", "Colorado", ""),
			wantCity:     "Victor",
			wantState:    "Colorado",
			wantResolved: true,
		},
		{
			name:         "region when state missing",
			place:        placeWithAddress("San Juan", "", "", "", "Puerto Rico"),
			wantCity:     "San Juan",
			wantState:    "Puerto Rico",
			wantResolved: true,
		},
		{
			name:         "transport error falls back to sentinels",
			err:          fmt.Errorf("connection refused"),
			wantCity:     UnknownCity,
			wantState:    UnknownState,
			wantResolved: false,
		},
		{
			name:         "empty address falls back to sentinels",
			place:        placeWithAddress("", "", "", "", ""),
			wantCity:     UnknownCity,
			wantState:    UnknownState,
			wantResolved: false,
		},
		{
			name:         "city without state keeps the real city",
			place:        placeWithAddress("Boulder", "", "", "", ""),
			wantCity:     "Boulder",
			wantState:    UnknownState,
			wantResolved: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeGeocodeClient{
				reverse: func(lat, lon float64) (*types.NominatimPlace, error) {
					return tt.place, tt.err
				},
			}
			got := NewGeocodingService(client).Reverse(38.8, -104.8)

			if got.City != tt.wantCity {
				t.Errorf("got city %q want %q", got.City, tt.wantCity)
			}
			if got.State != tt.wantState {
				t.Errorf("got state %q want %q", got.State, tt.wantState)
			}
			if got.Resolved != tt.wantResolved {
				t.Errorf("got resolved %v want %v", got.Resolved, tt.wantResolved)
			}
		})
	}
}

func TestGeocodingService_Forward(t *testing.T) {
	coords := func(lat, lon string) *types.NominatimPlace {
		var place types.NominatimPlace
		place.Lat = lat
		place.Lon = lon
		return &place
	}

	tests := []struct {
		name         string
		place        *types.NominatimPlace
		err          error
		wantLat      float64
		wantLon      float64
		wantResolved bool
	}{
		{
			name:         "coordinates parsed from strings",
			place:        coords("39.7392", "-104.9903"),
			wantLat:      39.7392,
			wantLon:      -104.9903,
			wantResolved: true,
		},
		{
			name: "transport error unresolved",
			err:  fmt.Errorf("timeout"),
		},
		{
			name: "no result unresolved",
		},
		{
			name:  "unparseable coordinates unresolved",
			place: coords("not-a-number", "-104.99"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeGeocodeClient{
				forward: func(city, state string) (*types.NominatimPlace, error) {
					return tt.place, tt.err
				},
			}
			got := NewGeocodingService(client).Forward("Denver", "CO")

			if got.Resolved != tt.wantResolved {
				t.Fatalf("got resolved %v want %v", got.Resolved, tt.wantResolved)
			}
			if tt.wantResolved && (got.Lat != tt.wantLat || got.Lon != tt.wantLon) {
				t.Errorf("got (%v, %v) want (%v, %v)", got.Lat, got.Lon, tt.wantLat, tt.wantLon)
			}
		})
	}
}
