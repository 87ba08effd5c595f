/*
# Module: handlers/pages.go
HTML page handlers: landing, location capture, activity listing and detail.

## Linked Modules
- middleware/session.go: Session cookie management
- services/geocoding.go: Forward geocoding for coordinate backfill
- services/activities.go: Nearby activity search
- services/description.go: AI descriptions for the detail page
- storage/repository.go: SessionRepository interface
- handlers/templates.go: Embedded page templates

## Tags
http, handlers, html, pages, activities

## Exports
PageHandler, NewPageHandler, HandleIndex, HandleLocationPage, HandleActivities, HandleActivityDetail

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "handlers/pages.go" ;
    code:description "HTML page handlers for the activity finder" ;
    code:imports :middleware_session, :services_geocoding, :services_activities, :services_description, :storage_repository ;
    code:exports :PageHandler, :NewPageHandler ;
    code:tags "http", "handlers", "html", "pages", "activities" .
<!-- End LinkedDoc RDF -->
*/
package handlers

import (
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"

	"recreo/middleware"
	"recreo/services"
	"recreo/storage"
	"recreo/types"
)

// PageHandler renders the HTML pages
type PageHandler struct {
	sessions   storage.SessionRepository
	geocoder   *services.GeocodingService
	activities *services.ActivityService
	describer  *services.DescriptionService
}

// NewPageHandler creates a page handler
func NewPageHandler(sessions storage.SessionRepository, geocoder *services.GeocodingService, activities *services.ActivityService, describer *services.DescriptionService) *PageHandler {
	return &PageHandler{
		sessions:   sessions,
		geocoder:   geocoder,
		activities: activities,
		describer:  describer,
	}
}

// HandleIndex handles GET /
func (h *PageHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	sessionID := middleware.EnsureSession(w, r)
	record := h.currentLocation(r, sessionID)
	renderPage(w, indexTemplate, map[string]any{"Coords": record})
}

// HandleLocationPage handles GET /location/
// Renders the capture form and hands the page a CSRF token cookie.
func (h *PageHandler) HandleLocationPage(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.EnsureSession(w, r)
	middleware.SetCSRFCookie(w)
	record := h.currentLocation(r, sessionID)
	renderPage(w, locationTemplate, map[string]any{"Coords": record})
}

// HandleActivities handles GET /activities/
// Lists recreational activities near the session's location. Without
// coordinates the page renders with an empty list rather than failing.
func (h *PageHandler) HandleActivities(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.EnsureSession(w, r)
	record := h.backfillCoordinates(r, sessionID, h.currentLocation(r, sessionID))

	activities := []types.Activity{}
	if record != nil && record.HasCoords() {
		activities = h.activities.SearchNearby(*record.Lat, *record.Lon, parseActivityFilter(r))
	} else {
		log.Printf("⚠️  No coordinates in session %s, rendering empty activity list", sessionID)
	}

	renderPage(w, activitiesTemplate, map[string]any{
		"Coords":     record,
		"Activities": activities,
	})
}

// HandleActivityDetail handles GET /activity/<name>/
// Looks the activity up by name near the session's location and decorates
// it with an AI-generated description.
func (h *PageHandler) HandleActivityDetail(w http.ResponseWriter, r *http.Request) {
	name := strings.Trim(strings.TrimPrefix(r.URL.Path, "/activity/"), "/")
	if name == "" {
		http.NotFound(w, r)
		return
	}

	sessionID := middleware.EnsureSession(w, r)
	record := h.backfillCoordinates(r, sessionID, h.currentLocation(r, sessionID))

	var detail *types.ActivityDetail
	if record != nil && record.HasCoords() {
		detail = h.activities.FindByName(*record.Lat, *record.Lon, name)
	}
	if detail != nil {
		detail.AIDescription = h.describer.Describe(detail.Name)
	}

	renderPage(w, activityDetailTemplate, map[string]any{
		"Coords": record,
		"Name":   name,
		"Detail": detail,
	})
}

// currentLocation loads the session's stored location, treating lookup
// failures as an absent record.
func (h *PageHandler) currentLocation(r *http.Request, sessionID string) *types.LocationRecord {
	record, err := h.sessions.GetLocation(r.Context(), sessionID)
	if err != nil {
		log.Printf("⚠️  Failed to load session location: %v", err)
		return nil
	}
	return record
}

// backfillCoordinates forward geocodes a city/state-only record and writes
// the coordinates back to the session so later requests skip the lookup.
func (h *PageHandler) backfillCoordinates(r *http.Request, sessionID string, record *types.LocationRecord) *types.LocationRecord {
	if record == nil || record.HasCoords() || !record.HasPlace() {
		return record
	}

	fwd := h.geocoder.Forward(record.City, record.State)
	if !fwd.Resolved {
		return record
	}

	record.Lat = &fwd.Lat
	record.Lon = &fwd.Lon
	if err := h.sessions.SaveLocation(r.Context(), sessionID, *record); err != nil {
		log.Printf("⚠️  Failed to backfill session coordinates: %v", err)
	}
	log.Printf("🌍 Backfilled coordinates for session %s: %s, %s -> (%.6f, %.6f)",
		sessionID, record.City, record.State, fwd.Lat, fwd.Lon)
	return record
}

// parseActivityFilter reads the optional listing filters from the query
// string. Unparseable numbers are treated as unset.
func parseActivityFilter(r *http.Request) types.ActivityFilter {
	q := r.URL.Query()

	filter := types.ActivityFilter{Category: strings.TrimSpace(q.Get("type"))}
	if v := q.Get("max_distance"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxDistanceMiles = &f
		}
	}
	if v := q.Get("min_rating"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinRating = &f
		}
	}
	switch q.Get("open_now") {
	case "on", "true", "1":
		filter.OpenNow = true
	}
	return filter
}

// renderPage executes a page template with the standard HTML headers
func renderPage(w http.ResponseWriter, tmpl *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		log.Printf("⚠️  Template render failed: %v", err)
	}
}
