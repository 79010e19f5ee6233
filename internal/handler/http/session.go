package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-vitals-keeper/internal/utils"
	"github.com/MKhiriev/go-vitals-keeper/models"
)

// sessionCookieName is the name of the HTTP-only cookie carrying the signed
// session token.
const sessionCookieName = "session_token"

// setSessionCookie places the signed session token into an HTTP-only cookie.
// The cookie lifetime matches the token expiry so that the browser drops it
// when the token stops being accepted anyway.
func setSessionCookie(w http.ResponseWriter, token models.Token) {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if token.ExpiresAt != nil {
		cookie.Expires = token.ExpiresAt.Time
	}

	http.SetCookie(w, cookie)
}

// clearSessionCookie expires the session cookie immediately.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}

// getTokenFromRequest extracts the raw session token from the request.
//
// The session cookie is authoritative; the "Authorization: Bearer" header is
// accepted as a fallback for non-browser clients.
func getTokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoSessionToken
	}

	return utils.ParseBearerToken(authHeader)
}
