package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"welcome-app/models"
)

const (
	contentTypeJSON = "application/json; charset=utf-8"
	contentTypeText = "text/plain; charset=utf-8"

	// AllowedMethods is what every route in this service answers to.
	AllowedMethods = "GET, HEAD, OPTIONS"
)

// WriteJSON marshals v and writes it with the given status code. The body is
// written without a trailing newline so payloads stay byte-exact.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	body, code := encodeJSON(code, v)
	writeBody(w, code, contentTypeJSON, body, true)
}

func WriteError(w http.ResponseWriter, code int, msg string) {
	WriteJSON(w, code, models.ErrorResponse{Error: msg})
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusNotFound, "not found")
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", AllowedMethods)
	WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// Options lists the methods a route answers to.
func Options(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", AllowedMethods)
	writeBody(w, http.StatusOK, contentTypeText, []byte(AllowedMethods), true)
}

// respondJSON is WriteJSON for routes that also answer HEAD.
func respondJSON(w http.ResponseWriter, r *http.Request, code int, v any) {
	body, code := encodeJSON(code, v)
	writeBody(w, code, contentTypeJSON, body, r.Method != http.MethodHead)
}

func respondText(w http.ResponseWriter, r *http.Request, code int, text string) {
	writeBody(w, code, contentTypeText, []byte(text), r.Method != http.MethodHead)
}

func encodeJSON(code int, v any) ([]byte, int) {
	body, err := json.Marshal(v)
	if err != nil {
		return []byte(`{"error":"internal server error"}`), http.StatusInternalServerError
	}
	return body, code
}

// writeBody sets Content-Length from body even when withBody is false, so a
// HEAD response describes the GET it stands in for.
func writeBody(w http.ResponseWriter, code int, contentType string, body []byte, withBody bool) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(code)
	if withBody {
		_, _ = w.Write(body)
	}
}
