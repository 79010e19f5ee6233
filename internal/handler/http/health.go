package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-vitals-keeper/internal/logger"
	"github.com/MKhiriev/go-vitals-keeper/internal/service"
	"github.com/MKhiriev/go-vitals-keeper/internal/utils"
	"github.com/MKhiriev/go-vitals-keeper/models"
)

var yesNoOptions = []string{models.AnswerYes, models.AnswerNo}

func (h *Handler) healthForm(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.FormDescriptor{
		Action: "/health",
		Method: http.MethodPost,
		Fields: []models.FormField{
			{Name: "age", Type: "number", Required: true},
			{Name: "bp", Type: "number", Required: true},
			{Name: "sugar", Type: "number", Required: true},
			{Name: "smoking", Type: "select", Required: true, Options: yesNoOptions},
			{Name: "family_history", Type: "select", Required: true, Options: yesNoOptions},
		},
	}, http.StatusOK)
}

func (h *Handler) submitReading(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form data was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid form data"}, http.StatusBadRequest)
		return
	}

	record, parseErrors := readingFromForm(r)
	if len(parseErrors) > 0 {
		log.Error().Msg("non-numeric values in reading form")
		utils.WriteJSON(w, models.ErrorResponse{
			Error:  "validation failed",
			Fields: parseErrors,
		}, http.StatusBadRequest)
		return
	}
	record.UserID = userID

	savedRecord, err := h.services.HealthService.SubmitReading(ctx, record)
	if err != nil {
		var validationErrors service.ValidationErrors
		switch {
		case errors.As(err, &validationErrors):
			log.Err(err).Msg("invalid reading data provided")
			utils.WriteJSON(w, models.ErrorResponse{
				Error:  "validation failed",
				Fields: validationErrors,
			}, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid data provided"}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during reading submission")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("record_id", savedRecord.RecordID).Str("risk", savedRecord.Risk).Msg("reading saved")

	utils.WriteJSON(w, savedRecord, http.StatusCreated)
}

// readingFromForm converts the posted form values into a HealthRecord.
// Non-integer numeric fields produce one message per field; yes/no answers
// are passed through as-is and validated by the service layer.
func readingFromForm(r *http.Request) (models.HealthRecord, map[string]string) {
	parseErrors := map[string]string{}

	parseInt := func(field string) int {
		value, err := strconv.Atoi(r.PostFormValue(field))
		if err != nil {
			parseErrors[field] = "must be an integer"
		}
		return value
	}

	record := models.HealthRecord{
		Age:           parseInt("age"),
		BP:            parseInt("bp"),
		Sugar:         parseInt("sugar"),
		Smoking:       r.PostFormValue("smoking"),
		FamilyHistory: r.PostFormValue("family_history"),
	}

	return record, parseErrors
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	dashboard, err := h.services.HealthService.Dashboard(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("unexpected error occurred during dashboard listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, dashboard, http.StatusOK)
}
