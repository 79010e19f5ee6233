package http

import (
	"net/http"

	"github.com/MKhiriev/go-vitals-keeper/internal/logger"
	"github.com/MKhiriev/go-vitals-keeper/internal/utils"
)

func (h *Handler) adminSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	summary, err := h.services.AdminService.Summary(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during summary aggregation")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}
