package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data, sets the "Content-Type: application/json"
// header, writes statusCode and then the body. It returns the number of
// body bytes written.
//
// If marshaling fails nothing of the payload is written: the response is
// a plain 500 and the wrapped error is returned. Marshaling happens before
// WriteHeader so a failure never produces a half-written success response.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
