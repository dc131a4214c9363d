// Package response standardizes the HTTP response envelope and the
// mapping from domain errors to status codes.
package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the shape of every API response body.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// JSON writes payload inside the success envelope.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	write(w, status, Envelope{Success: true, Data: data})
}

// Message writes a success envelope with no data payload.
func Message(w http.ResponseWriter, status int, message string) {
	write(w, status, Envelope{Success: true, Message: message})
}

// BadRequest writes a 400 error envelope for malformed input that
// never reached validation, such as an unparsable body.
func BadRequest(w http.ResponseWriter, message string) {
	write(w, http.StatusBadRequest, Envelope{Success: false, Message: message})
}

// Unauthorized writes a 401 error envelope.
func Unauthorized(w http.ResponseWriter, message string) {
	write(w, http.StatusUnauthorized, Envelope{Success: false, Message: message})
}

func write(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
