/*
# Module: handlers/location.go
HTTP handlers that capture a visitor's location into their session.

## Linked Modules
- middleware/session.go: Session cookie management
- services/geocoding.go: Coordinate and place name resolution
- storage/repository.go: SessionRepository interface
- types/location.go: LocationRecord and Coordinate types

## Tags
http, handlers, location, session, api

## Exports
LocationHandler, NewLocationHandler, HandleSaveLocation, HandleSaveTextLocation

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "handlers/location.go" ;
    code:description "HTTP handlers that capture a visitor's location into their session" ;
    code:imports :middleware_session, :services_geocoding, :storage_repository, :types_location ;
    code:exports :LocationHandler, :NewLocationHandler ;
    code:tags "http", "handlers", "location", "session", "api" .
<!-- End LinkedDoc RDF -->
*/
package handlers

import (
	"encoding/json"
	"io"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"recreo/middleware"
	"recreo/services"
	"recreo/storage"
	"recreo/types"
)

// LocationHandler handles the endpoints that write a location into the
// visitor's session.
type LocationHandler struct {
	sessions storage.SessionRepository
	geocoder *services.GeocodingService
}

// NewLocationHandler creates a location handler
func NewLocationHandler(sessions storage.SessionRepository, geocoder *services.GeocodingService) *LocationHandler {
	return &LocationHandler{
		sessions: sessions,
		geocoder: geocoder,
	}
}

// HandleSaveLocation handles POST /api/location/
// Accepts a JSON body with lat/lon, reverse geocodes it, and stores the
// result in the session. Validation failures all get the same response.
func (h *LocationHandler) HandleSaveLocation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	coord, ok := parseCoordinate(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"ok":    false,
			"error": "Invalid data",
		})
		return
	}

	place := h.geocoder.Reverse(coord.Lat, coord.Lon)
	record := types.LocationRecord{
		Lat:   &coord.Lat,
		Lon:   &coord.Lon,
		City:  place.City,
		State: place.State,
	}

	sessionID := middleware.EnsureSession(w, r)
	if err := h.sessions.SaveLocation(r.Context(), sessionID, record); err != nil {
		log.Printf("⚠️  Failed to save session location: %v", err)
	}

	log.Printf("📍 Location saved: session=%s (%.6f, %.6f) %s, %s",
		sessionID, coord.Lat, coord.Lon, place.City, place.State)

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":     true,
		"coords": record,
	})
}

// HandleSaveTextLocation handles POST /save_text_location/
// Reads city/state form fields, forward geocodes them when possible, and
// stores the result in the session. Always redirects: home when the input
// is blank, to the activities page otherwise.
func (h *LocationHandler) HandleSaveTextLocation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	city := strings.TrimSpace(r.FormValue("city"))
	state := strings.ToUpper(strings.TrimSpace(r.FormValue("state")))
	if city == "" || state == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	record := types.LocationRecord{City: city, State: state}
	if fwd := h.geocoder.Forward(city, state); fwd.Resolved {
		record.Lat = &fwd.Lat
		record.Lon = &fwd.Lon
	}

	sessionID := middleware.EnsureSession(w, r)
	if err := h.sessions.SaveLocation(r.Context(), sessionID, record); err != nil {
		log.Printf("⚠️  Failed to save session location: %v", err)
	}

	log.Printf("📍 Text location saved: session=%s %s, %s (coords=%v)",
		sessionID, city, state, record.HasCoords())

	http.Redirect(w, r, "/activities/", http.StatusFound)
}

// parseCoordinate extracts and validates lat/lon from a JSON request body.
// The body must be a single JSON object with nothing trailing; numbers and
// numeric strings are both accepted, anything else fails.
func parseCoordinate(r *http.Request) (types.Coordinate, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return types.Coordinate{}, false
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return types.Coordinate{}, false
	}

	lat, ok := toFloat(payload["lat"])
	if !ok {
		return types.Coordinate{}, false
	}
	lon, ok := toFloat(payload["lon"])
	if !ok {
		return types.Coordinate{}, false
	}

	return types.Coordinate{Lat: lat, Lon: lon}, true
}

// toFloat coerces a decoded JSON value to a finite float64. Strings like
// "41.5" count; booleans, null, and absent keys do not.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("⚠️  Failed to encode response: %v", err)
	}
}
