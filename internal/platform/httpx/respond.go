// Package httpx provides helpers for the API's JSON response envelope.
package httpx

import (
	"encoding/json"
	"net/http"
)

// Envelope is the wire shape of every response. Success payload fields are
// merged in by the caller through the data map.
type Envelope map[string]any

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// OK sends a success envelope, merging the given fields with success:true.
func OK(w http.ResponseWriter, fields Envelope) {
	body := Envelope{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	JSON(w, http.StatusOK, body)
}

// Fail sends the standard error envelope {success:false, status, message}.
func Fail(w http.ResponseWriter, status int, message any) {
	JSON(w, status, Envelope{
		"success": false,
		"status":  status,
		"message": message,
	})
}
