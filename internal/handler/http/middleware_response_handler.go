// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseWriter decorates [http.ResponseWriter] so that withLogging can
// report the status code and the number of body bytes written after the
// downstream handler has returned. The response itself is streamed through
// unbuffered.
//
// WriteHeader is forwarded to the underlying writer exactly once; repeated
// calls are ignored, matching the [http.ResponseWriter] contract.
type responseWriter struct {
	http.ResponseWriter

	// status is the code recorded on the first WriteHeader call (possibly
	// the implicit one triggered by Write). Zero until then.
	status int

	wroteHeader bool

	// size accumulates bytes successfully written across all Write calls.
	size int
}

// WriteHeader records statusCode and forwards it to the underlying writer.
// Subsequent calls are no-ops.
func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write forwards b to the underlying writer and adds the written byte count
// to size. A Write before any WriteHeader implicitly records
// [http.StatusOK], as the standard library does.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
