// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vitals-keeper/internal/service"
	"github.com/MKhiriev/go-vitals-keeper/internal/validators"
	"github.com/MKhiriev/go-vitals-keeper/models"
)

// ─────────────────────────────────────────────
// healthForm
// ─────────────────────────────────────────────

func TestHealthForm(t *testing.T) {
	h := newTestHandler(t, nil, &mockHealthService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.healthForm(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"family_history"`)
	assert.Contains(t, rec.Body.String(), `"yes"`)
}

// ─────────────────────────────────────────────
// submitReading
// ─────────────────────────────────────────────

// TestSubmitReading_Success verifies that a valid reading is attributed to
// the session user and returned with its computed risk.
func TestSubmitReading_Success(t *testing.T) {
	health := &mockHealthService{
		submitReadingFn: func(_ context.Context, record models.HealthRecord) (models.HealthRecord, error) {
			assert.Equal(t, int64(7), record.UserID, "owner must come from the session, not the form")
			assert.Equal(t, 45, record.Age)

			record.RecordID = 11
			record.Risk = "Low"
			return record, nil
		},
	}

	h := newTestHandler(t, nil, health, nil)
	rec := httptest.NewRecorder()

	req := withUserID(formRequest(t, "/health", validReadingForm()), 7)
	h.submitReading(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Low"`)
}

// TestSubmitReading_NonNumericValues verifies that non-integer numeric fields
// are rejected with one message per field before the service is called.
func TestSubmitReading_NonNumericValues(t *testing.T) {
	h := newTestHandler(t, nil, &mockHealthService{}, nil)
	rec := httptest.NewRecorder()

	form := validReadingForm()
	form.Set("age", "forty-five")
	form.Set("bp", "")

	req := withUserID(formRequest(t, "/health", form), 7)
	h.submitReading(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"age"`)
	assert.Contains(t, rec.Body.String(), `"bp"`)
	assert.Contains(t, rec.Body.String(), "must be an integer")
}

// TestSubmitReading_ValidationErrors verifies that out-of-range values map to
// 400 Bad Request with field-specific messages.
func TestSubmitReading_ValidationErrors(t *testing.T) {
	health := &mockHealthService{
		submitReadingFn: func(_ context.Context, _ models.HealthRecord) (models.HealthRecord, error) {
			return models.HealthRecord{}, service.ValidationErrors{
				validators.FieldAge: "age must be between 1 and 120",
			}
		},
	}

	h := newTestHandler(t, nil, health, nil)
	rec := httptest.NewRecorder()

	form := validReadingForm()
	form.Set("age", "121")

	req := withUserID(formRequest(t, "/health", form), 7)
	h.submitReading(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "age must be between 1 and 120")
}

// TestSubmitReading_NoSession verifies that a request without a session
// context is sent to the login page.
func TestSubmitReading_NoSession(t *testing.T) {
	h := newTestHandler(t, nil, &mockHealthService{}, nil)
	rec := httptest.NewRecorder()

	h.submitReading(rec, formRequest(t, "/health", validReadingForm()))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

// TestSubmitReading_UnexpectedError verifies that storage failures map to
// 500 Internal Server Error.
func TestSubmitReading_UnexpectedError(t *testing.T) {
	health := &mockHealthService{
		submitReadingFn: func(_ context.Context, _ models.HealthRecord) (models.HealthRecord, error) {
			return models.HealthRecord{}, errors.New("db connection lost")
		},
	}

	h := newTestHandler(t, nil, health, nil)
	rec := httptest.NewRecorder()

	req := withUserID(formRequest(t, "/health", validReadingForm()), 7)
	h.submitReading(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db connection lost")
}

// ─────────────────────────────────────────────
// dashboard
// ─────────────────────────────────────────────

// TestDashboard_Success verifies that the session user's records and the
// high-risk flag are returned.
func TestDashboard_Success(t *testing.T) {
	health := &mockHealthService{
		dashboardFn: func(_ context.Context, userID int64) (models.Dashboard, error) {
			assert.Equal(t, int64(7), userID)
			return models.Dashboard{
				Records: []models.HealthRecord{
					{RecordID: 2, Risk: "High"},
					{RecordID: 1, Risk: "Low"},
				},
				HasHighRisk: true,
			}, nil
		},
	}

	h := newTestHandler(t, nil, health, nil)
	rec := httptest.NewRecorder()

	req := withUserID(httptest.NewRequest(http.MethodGet, "/dashboard", nil), 7)
	h.dashboard(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"has_high_risk":true`)
}

func TestDashboard_NoSession(t *testing.T) {
	h := newTestHandler(t, nil, &mockHealthService{}, nil)
	rec := httptest.NewRecorder()

	h.dashboard(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestDashboard_UnexpectedError(t *testing.T) {
	health := &mockHealthService{
		dashboardFn: func(_ context.Context, _ int64) (models.Dashboard, error) {
			return models.Dashboard{}, errors.New("db connection lost")
		},
	}

	h := newTestHandler(t, nil, health, nil)
	rec := httptest.NewRecorder()

	req := withUserID(httptest.NewRequest(http.MethodGet, "/dashboard", nil), 7)
	h.dashboard(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
