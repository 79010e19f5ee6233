package http

import (
	"net/http"

	"github.com/MKhiriev/go-vitals-keeper/internal/logger"
	"github.com/MKhiriev/go-vitals-keeper/internal/utils"
	"github.com/MKhiriev/go-vitals-keeper/models"
)

// adminOnly is an HTTP middleware restricting a route to accounts carrying
// the admin role. It must run after [Handler.auth], which puts the
// authenticated user's ID into the request context.
//
// The role is checked against the database on every request rather than
// trusted from the session token, so revoking the role takes effect
// immediately. Non-admin accounts receive HTTP 403.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		userID, ok := utils.GetUserIDFromContext(ctx)
		if !ok {
			log.Error().Msg("no user id in context for admin check")
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		isAdmin, err := h.services.AuthService.IsAdmin(ctx, userID)
		if err != nil {
			log.Err(err).Int64("user_id", userID).Msg("admin role check failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if !isAdmin {
			log.Warn().Int64("user_id", userID).Msg("admin route denied")
			utils.WriteJSON(w, models.ErrorResponse{Error: "admin role required"}, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
