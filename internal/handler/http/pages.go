package http

import (
	"net/http"

	"github.com/MKhiriev/go-vitals-keeper/internal/utils"
	"github.com/MKhiriev/go-vitals-keeper/models"
)

// awarenessPayload is the static informational content served on /awareness.
// The guidance is deliberately generic: the service records readings, it does
// not give medical advice.
var awarenessPayload = struct {
	Title  string   `json:"title"`
	Topics []string `json:"topics"`
}{
	Title: "Cardiovascular health awareness",
	Topics: []string{
		"Blood pressure above 140 mmHg systolic is considered high.",
		"Fasting blood sugar above 180 mg/dL indicates poor glucose control.",
		"Smoking is a major modifiable cardiovascular risk factor.",
		"Family history of heart disease increases personal risk.",
		"Regular readings help you and your doctor spot trends early.",
	},
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	utils.WriteJSON(w, models.ServiceInfo{
		Service: "go-vitals-keeper",
		Version: h.services.AppInfoService.GetAppVersion(ctx),
	}, http.StatusOK)
}

func (h *Handler) awareness(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, awarenessPayload, http.StatusOK)
}
