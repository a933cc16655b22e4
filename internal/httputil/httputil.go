// Package httputil holds the small JSON helpers shared by all HTTP
// handlers.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/daybookhq/daybook/internal/ai"
	"github.com/daybookhq/daybook/internal/db"
)

// ParseJSON decodes a JSON request body into v.
func ParseJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	return json.NewDecoder(r.Body).Decode(v)
}

// PathVar returns a path variable from the request (chi.URLParam wrapper)
func PathVar(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

// QueryInt returns a query parameter as int with a default value
func QueryInt(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	if i, err := strconv.Atoi(val); err == nil {
		return i
	}
	return defaultVal
}

// QueryString returns a query parameter as string with a default value
func QueryString(r *http.Request, name string, defaultVal string) string {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	return val
}

// OkJSON writes a JSON response with 200 OK status
func OkJSON(w http.ResponseWriter, v any) {
	WriteJSON(w, http.StatusOK, v)
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// ErrorResponse is the standard error response format
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error writes an error response, mapping the core's error kinds to
// HTTP status codes.
func Error(w http.ResponseWriter, err error) {
	var validation *ai.ValidationError
	var upstream *ai.UpstreamError
	var transport *ai.TransportError
	switch {
	case errors.As(err, &validation):
		ErrorWithCode(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &upstream):
		ErrorWithCode(w, http.StatusBadGateway, err.Error())
	case errors.As(err, &transport):
		// Retryable by the client.
		ErrorWithCode(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, db.ErrNotSignedIn):
		ErrorWithCode(w, http.StatusUnauthorized, err.Error())
	default:
		ErrorWithCode(w, http.StatusInternalServerError, err.Error())
	}
}

// ErrorWithCode writes an error response with a specific status code
func ErrorWithCode(w http.ResponseWriter, code int, message string) {
	WriteJSON(w, code, ErrorResponse{Code: code, Message: message})
}

// NotFound writes a 404 not found response
func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "not found"
	}
	ErrorWithCode(w, http.StatusNotFound, message)
}
