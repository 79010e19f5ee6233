package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-vitals-keeper/internal/logger"
	"github.com/MKhiriev/go-vitals-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces session-based authentication.
//
// It extracts the session token from the request (cookie first, then the
// "Authorization" header), validates it via [service.AuthService.ParseToken],
// and — on success — stores the authenticated user's ID in the request
// context under [utils.UserIDCtxKey] before delegating to the next handler.
//
// Requests without a valid session are redirected to /login with HTTP 302:
// the protected pages are browser-facing, so a redirect to the login page is
// more useful than a bare 401.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromRequest(r)
		if err != nil {
			log.Err(err).Send()
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
