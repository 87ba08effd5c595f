package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"recreo/types"
)

func TestHandleSaveLocation_RejectsNonPost(t *testing.T) {
	env := newTestEnv()

	w := httptest.NewRecorder()
	env.location.HandleSaveLocation(w, sessionRequest(http.MethodGet, "/api/location/", "", ""))

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
}

func TestHandleSaveLocation_InvalidPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{not json`},
		{"missing lat", `{"lon": 10}`},
		{"missing lon", `{"lat": 10}`},
		{"null lat", `{"lat": null, "lon": 10}`},
		{"boolean lat", `{"lat": true, "lon": 10}`},
		{"non-numeric string", `{"lat": "north", "lon": 10}`},
		{"nan string", `{"lat": "NaN", "lon": 10}`},
		{"trailing garbage", `{"lat": 38.8339, "lon": -104.8214}garbage`},
		{"two json values", `{"lat": 38.8339, "lon": -104.8214}{"lat": 0}`},
		{"empty body", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()

			w := httptest.NewRecorder()
			env.location.HandleSaveLocation(w, sessionRequest(http.MethodPost, "/api/location/", tt.body, "sess-1"))

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}

			var resp map[string]any
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if resp["ok"] != false {
				t.Errorf("ok = %v, want false", resp["ok"])
			}
			if resp["error"] != "Invalid data" {
				t.Errorf("error = %v, want %q", resp["error"], "Invalid data")
			}
			if env.storedLocation(t, "sess-1") != nil {
				t.Error("invalid payload should not store anything")
			}
		})
	}
}

func TestHandleSaveLocation_StoresAndEchoes(t *testing.T) {
	env := newTestEnv()
	env.geocode.reverse = func(lat, lon float64) (*types.NominatimPlace, error) {
		return geocodedPlace("", "", "Colorado Springs", "Colorado"), nil
	}

	w := httptest.NewRecorder()
	body := `{"lat": 38.8339, "lon": -104.8214}`
	env.location.HandleSaveLocation(w, sessionRequest(http.MethodPost, "/api/location/", body, "sess-1"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp struct {
		OK     bool                 `json:"ok"`
		Coords types.LocationRecord `json:"coords"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.OK {
		t.Error("ok = false, want true")
	}
	if resp.Coords.Lat == nil || *resp.Coords.Lat != 38.8339 {
		t.Errorf("echoed lat = %v, want 38.8339", resp.Coords.Lat)
	}
	if resp.Coords.City != "Colorado Springs" || resp.Coords.State != "Colorado" {
		t.Errorf("echoed place = %q, %q", resp.Coords.City, resp.Coords.State)
	}

	stored := env.storedLocation(t, "sess-1")
	if stored == nil {
		t.Fatal("expected a stored session record")
	}
	if *stored.Lat != 38.8339 || *stored.Lon != -104.8214 {
		t.Errorf("stored coords = (%v, %v)", *stored.Lat, *stored.Lon)
	}
	if stored.City != "Colorado Springs" {
		t.Errorf("stored city = %q", stored.City)
	}
}

func TestHandleSaveLocation_BoundaryCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		lat, lon float64
	}{
		{"zero island", `{"lat": 0, "lon": 0}`, 0, 0},
		{"north east corner", `{"lat": 90, "lon": 180}`, 90, 180},
		{"south west", `{"lat": -90, "lon": -180}`, -90, -180},
		{"numeric strings", `{"lat": "41.5", "lon": "-81.7"}`, 41.5, -81.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()

			w := httptest.NewRecorder()
			env.location.HandleSaveLocation(w, sessionRequest(http.MethodPost, "/api/location/", tt.body, "sess-1"))

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
			}

			stored := env.storedLocation(t, "sess-1")
			if stored == nil || stored.Lat == nil || stored.Lon == nil {
				t.Fatal("expected stored coordinates")
			}
			if *stored.Lat != tt.lat || *stored.Lon != tt.lon {
				t.Errorf("stored coords = (%v, %v), want (%v, %v)", *stored.Lat, *stored.Lon, tt.lat, tt.lon)
			}
		})
	}
}

func TestHandleSaveLocation_GeocodeFailureStillSaves(t *testing.T) {
	env := newTestEnv()
	env.geocode.reverse = func(lat, lon float64) (*types.NominatimPlace, error) {
		return nil, errors.New("nominatim unreachable")
	}

	w := httptest.NewRecorder()
	body := `{"lat": 38.8339, "lon": -104.8214}`
	env.location.HandleSaveLocation(w, sessionRequest(http.MethodPost, "/api/location/", body, "sess-1"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	stored := env.storedLocation(t, "sess-1")
	if stored == nil {
		t.Fatal("expected a stored session record")
	}
	if stored.City != "Unknown City" || stored.State != "Unknown State" {
		t.Errorf("stored place = %q, %q, want sentinels", stored.City, stored.State)
	}
}

func TestHandleSaveLocation_OverwritesPrevious(t *testing.T) {
	env := newTestEnv()
	env.seedLocation(t, "sess-1", types.LocationRecord{
		Lat: coordPtr(39.7392), Lon: coordPtr(-104.9903),
		City: "Denver", State: "Colorado",
	})
	env.geocode.reverse = func(lat, lon float64) (*types.NominatimPlace, error) {
		return geocodedPlace("", "", "Boulder", "Colorado"), nil
	}

	w := httptest.NewRecorder()
	body := `{"lat": 40.015, "lon": -105.2705}`
	env.location.HandleSaveLocation(w, sessionRequest(http.MethodPost, "/api/location/", body, "sess-1"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	stored := env.storedLocation(t, "sess-1")
	if stored.City != "Boulder" {
		t.Errorf("stored city = %q, want the new value", stored.City)
	}
	if *stored.Lat != 40.015 {
		t.Errorf("stored lat = %v, want the new value", *stored.Lat)
	}
}

func postForm(target, form, sessionID string) *http.Request {
	r := sessionRequest(http.MethodPost, target, form, sessionID)
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestHandleSaveTextLocation_BlankRedirectsHome(t *testing.T) {
	tests := []struct {
		name string
		form string
	}{
		{"all blank", "city=&state="},
		{"whitespace city", "city=%20%20&state=CO"},
		{"missing state", "city=Denver"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()

			w := httptest.NewRecorder()
			env.location.HandleSaveTextLocation(w, postForm("/save_text_location/", tt.form, "sess-1"))

			if w.Code != http.StatusFound {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
			}
			if loc := w.Header().Get("Location"); loc != "/" {
				t.Errorf("redirect = %q, want %q", loc, "/")
			}
			if env.storedLocation(t, "sess-1") != nil {
				t.Error("blank input should not store anything")
			}
		})
	}
}

func TestHandleSaveTextLocation_SavesAndRedirects(t *testing.T) {
	env := newTestEnv()
	env.geocode.forward = func(city, state string) (*types.NominatimPlace, error) {
		if city != "Denver" || state != "CO" {
			return nil, fmt.Errorf("unexpected lookup: %s, %s", city, state)
		}
		return geocodedPlace("39.7392", "-104.9903", "Denver", "Colorado"), nil
	}

	w := httptest.NewRecorder()
	env.location.HandleSaveTextLocation(w, postForm("/save_text_location/", "city=Denver&state=co", "sess-1"))

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if loc := w.Header().Get("Location"); loc != "/activities/" {
		t.Errorf("redirect = %q, want %q", loc, "/activities/")
	}

	stored := env.storedLocation(t, "sess-1")
	if stored == nil {
		t.Fatal("expected a stored session record")
	}
	if stored.City != "Denver" || stored.State != "CO" {
		t.Errorf("stored place = %q, %q, want Denver, CO", stored.City, stored.State)
	}
	if !stored.HasCoords() || *stored.Lat != 39.7392 || *stored.Lon != -104.9903 {
		t.Errorf("stored coords = %v, %v, want geocoded values", stored.Lat, stored.Lon)
	}
}

func TestHandleSaveTextLocation_UnresolvedStillSaves(t *testing.T) {
	env := newTestEnv()
	env.geocode.forward = func(city, state string) (*types.NominatimPlace, error) {
		return nil, errors.New("nominatim unreachable")
	}

	w := httptest.NewRecorder()
	env.location.HandleSaveTextLocation(w, postForm("/save_text_location/", "city=Nowhereville&state=ZZ", "sess-1"))

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if loc := w.Header().Get("Location"); loc != "/activities/" {
		t.Errorf("redirect = %q, want %q", loc, "/activities/")
	}

	stored := env.storedLocation(t, "sess-1")
	if stored == nil {
		t.Fatal("expected a stored session record")
	}
	if stored.HasCoords() {
		t.Error("unresolved place should be stored without coordinates")
	}
	if stored.City != "Nowhereville" || stored.State != "ZZ" {
		t.Errorf("stored place = %q, %q", stored.City, stored.State)
	}
}
