/*
# Module: middleware/session.go
Session identity and CSRF cookies.

## Linked Modules
(None - operates on requests and responses only)

## Tags
http, session, cookies, middleware

## Exports
EnsureSession, SetCSRFCookie

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "middleware/session.go" ;
    code:description "Session identity and CSRF cookies" ;
    code:exports :EnsureSession, :SetCSRFCookie ;
    code:tags "http", "session", "cookies", "middleware" .
<!-- End LinkedDoc RDF -->
*/
package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

const (
	sessionCookieName = "session_id"
	csrfCookieName    = "csrftoken"

	// matches the session store's 24 hour TTL
	cookieMaxAge = 86400
)

// EnsureSession returns the request's session ID, minting one and setting
// the cookie when the client has none yet.
func EnsureSession(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   cookieMaxAge,
		Path:     "/",
	})
	return id
}

// SetCSRFCookie sets a fresh CSRF token cookie. It stays readable by page
// scripts so the location form can echo the token back.
func SetCSRFCookie(w http.ResponseWriter) string {
	token := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     csrfCookieName,
		Value:    token,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   cookieMaxAge,
		Path:     "/",
	})
	return token
}
