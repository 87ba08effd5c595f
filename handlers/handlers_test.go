package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"recreo/clients"
	"recreo/services"
	"recreo/storage"
	"recreo/types"
)

// fakeGeocodeClient scripts geocoding responses for handler tests
type fakeGeocodeClient struct {
	reverse func(lat, lon float64) (*types.NominatimPlace, error)
	forward func(city, state string) (*types.NominatimPlace, error)
}

func (f *fakeGeocodeClient) ReverseGeocode(lat, lon float64) (*types.NominatimPlace, error) {
	if f.reverse == nil {
		return nil, nil
	}
	return f.reverse(lat, lon)
}

func (f *fakeGeocodeClient) ForwardGeocode(city, state string) (*types.NominatimPlace, error) {
	if f.forward == nil {
		return nil, nil
	}
	return f.forward(city, state)
}

// fakeSearcher records the last search and returns a scripted response
type fakeSearcher struct {
	gotParams clients.YelpSearchParams
	called    bool
	response  *types.YelpSearchResponse
	err       error
}

func (f *fakeSearcher) SearchBusinesses(params clients.YelpSearchParams) (*types.YelpSearchResponse, error) {
	f.called = true
	f.gotParams = params
	if f.err != nil {
		return nil, f.err
	}
	if f.response == nil {
		return &types.YelpSearchResponse{}, nil
	}
	return f.response, nil
}

// fakeChatCompleter returns a fixed AI reply
type fakeChatCompleter struct {
	reply  string
	err    error
	called bool
}

func (f *fakeChatCompleter) ChatCompletion(model string, messages []clients.ChatMessage, maxTokens int) (string, error) {
	f.called = true
	return f.reply, f.err
}

// testEnv wires the handlers against in-memory storage and fakes
type testEnv struct {
	repo      *storage.MemorySessionRepository
	geocode   *fakeGeocodeClient
	searcher  *fakeSearcher
	completer *fakeChatCompleter
	pages     *PageHandler
	location  *LocationHandler
	cards     *ShareCardHandler
}

func newTestEnv() *testEnv {
	env := &testEnv{
		repo:      storage.NewMemorySessionRepository(),
		geocode:   &fakeGeocodeClient{},
		searcher:  &fakeSearcher{},
		completer: &fakeChatCompleter{reply: "A lovely spot for an afternoon."},
	}

	geocoder := services.NewGeocodingService(env.geocode)
	activities := services.NewActivityService(env.searcher)
	describer := services.NewDescriptionService(env.completer)

	env.pages = NewPageHandler(env.repo, geocoder, activities, describer)
	env.location = NewLocationHandler(env.repo, geocoder)
	env.cards = NewShareCardHandler(env.repo, activities)
	return env
}

func (env *testEnv) seedLocation(t *testing.T, sessionID string, record types.LocationRecord) {
	t.Helper()
	if err := env.repo.SaveLocation(context.Background(), sessionID, record); err != nil {
		t.Fatalf("seeding session location: %v", err)
	}
}

func (env *testEnv) storedLocation(t *testing.T, sessionID string) *types.LocationRecord {
	t.Helper()
	record, err := env.repo.GetLocation(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("reading session location: %v", err)
	}
	return record
}

// sessionRequest builds a request carrying an existing session cookie
func sessionRequest(method, target, body, sessionID string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	if sessionID != "" {
		r.AddCookie(&http.Cookie{Name: "session_id", Value: sessionID})
	}
	return r
}

func geocodedPlace(lat, lon, city, state string) *types.NominatimPlace {
	place := &types.NominatimPlace{Lat: lat, Lon: lon}
	place.Address.City = city
	place.Address.State = state
	return place
}

func searchResult(businesses ...types.YelpBusiness) *types.YelpSearchResponse {
	return &types.YelpSearchResponse{
		Total:      len(businesses),
		Businesses: businesses,
	}
}

func ratedBusiness(name string, rating float64) types.YelpBusiness {
	b := types.YelpBusiness{
		Name:        name,
		Rating:      rating,
		ReviewCount: 100,
		Distance:    1609,
	}
	b.Location.Address1 = "1805 N 30th St"
	b.Location.City = "Colorado Springs"
	return b
}

func coordPtr(v float64) *float64 { return &v }
