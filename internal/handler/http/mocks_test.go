// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/MKhiriev/go-vitals-keeper/internal/logger"
	"github.com/MKhiriev/go-vitals-keeper/internal/service"
	"github.com/MKhiriev/go-vitals-keeper/internal/utils"
	"github.com/MKhiriev/go-vitals-keeper/models"
)

// ─────────────────────────────────────────────
// Function-field service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	isAdminFn      func(ctx context.Context, userID int64) (bool, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	return m.isAdminFn(ctx, userID)
}

// mockHealthService implements service.HealthService for unit tests.
type mockHealthService struct {
	submitReadingFn func(ctx context.Context, record models.HealthRecord) (models.HealthRecord, error)
	dashboardFn     func(ctx context.Context, userID int64) (models.Dashboard, error)
}

func (m *mockHealthService) SubmitReading(ctx context.Context, record models.HealthRecord) (models.HealthRecord, error) {
	return m.submitReadingFn(ctx, record)
}

func (m *mockHealthService) Dashboard(ctx context.Context, userID int64) (models.Dashboard, error) {
	return m.dashboardFn(ctx, userID)
}

// mockAdminService implements service.AdminService for unit tests.
type mockAdminService struct {
	summaryFn func(ctx context.Context) (models.AdminSummary, error)
}

func (m *mockAdminService) Summary(ctx context.Context) (models.AdminSummary, error) {
	return m.summaryFn(ctx)
}

// mockAppInfoService implements service.AppInfoService for unit tests.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks; nil mocks are
// fine for handlers that never touch them.
func newTestHandler(t *testing.T, auth service.AuthService, health service.HealthService, admin service.AdminService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:    auth,
		HealthService:  health,
		AdminService:   admin,
		AppInfoService: &mockAppInfoService{version: "test"},
	}
	return NewHandler(svcs, logger.Nop())
}

// formRequest builds a POST request with a form-encoded body.
func formRequest(t *testing.T, target string, form url.Values) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// withUserID returns a copy of req whose context carries userID the way the
// auth middleware stores it.
func withUserID(req *http.Request, userID int64) *http.Request {
	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, userID)
	return req.WithContext(ctx)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// validReadingForm is a convenience fixture used across multiple tests.
func validReadingForm() url.Values {
	return url.Values{
		"age":            {"45"},
		"bp":             {"118"},
		"sugar":          {"95"},
		"smoking":        {"no"},
		"family_history": {"no"},
	}
}
