// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrNoSessionToken is returned when the request carries neither a session
// cookie nor an "Authorization" header. Callers can match against it with
// [errors.Is].
var ErrNoSessionToken = errors.New("no session token provided")
