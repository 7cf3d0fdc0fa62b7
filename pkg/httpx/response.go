// Package httpx contains the HTTP plumbing shared by all handlers: JSON
// response writers, the middleware chain helper, and the authentication
// and role-gating middleware.
package httpx

import (
	"encoding/json"
	"net/http"
)

// Message is the uniform body for status and error responses.
type Message struct {
	Message string `json:"message"`
}

// WriteJSON writes a JSON response with the given status code. It sets the
// Content-Type header before writing.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteMessage writes a Message body with the given status code.
func WriteMessage(w http.ResponseWriter, code int, msg string) {
	WriteJSON(w, code, Message{Message: msg})
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// Required for responses carrying tokens.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
