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
)

// TestAdminMiddleware_Admin verifies that an admin account passes through.
func TestAdminMiddleware_Admin(t *testing.T) {
	auth := &mockAuthService{
		isAdminFn: func(_ context.Context, userID int64) (bool, error) {
			assert.Equal(t, int64(1), userID)
			return true, nil
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	next := &nextRecorder{}
	req := withUserID(httptest.NewRequest(http.MethodGet, "/admin/summary", nil), 1)
	rec := httptest.NewRecorder()

	h.adminOnly(next.handler()).ServeHTTP(rec, req)

	require.True(t, next.called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestAdminMiddleware_Forbidden verifies that a regular account is rejected
// with 403 and never reaches the protected handler.
func TestAdminMiddleware_Forbidden(t *testing.T) {
	auth := &mockAuthService{
		isAdminFn: func(_ context.Context, _ int64) (bool, error) {
			return false, nil
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	next := &nextRecorder{}
	req := withUserID(httptest.NewRequest(http.MethodGet, "/admin/summary", nil), 2)
	rec := httptest.NewRecorder()

	h.adminOnly(next.handler()).ServeHTTP(rec, req)

	assert.False(t, next.called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin role required")
}

// TestAdminMiddleware_NoSession verifies that a missing session context is
// sent to the login page.
func TestAdminMiddleware_NoSession(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil, nil)

	next := &nextRecorder{}
	rec := httptest.NewRecorder()

	h.adminOnly(next.handler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/summary", nil))

	assert.False(t, next.called)
	assert.Equal(t, http.StatusFound, rec.Code)
}

// TestAdminMiddleware_LookupError verifies that a failed role lookup maps to
// 500 Internal Server Error.
func TestAdminMiddleware_LookupError(t *testing.T) {
	auth := &mockAuthService{
		isAdminFn: func(_ context.Context, _ int64) (bool, error) {
			return false, errors.New("db connection lost")
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	next := &nextRecorder{}
	req := withUserID(httptest.NewRequest(http.MethodGet, "/admin/summary", nil), 2)
	rec := httptest.NewRecorder()

	h.adminOnly(next.handler()).ServeHTTP(rec, req)

	assert.False(t, next.called)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
