package helpers

import "net/http"

// WriteHTML sets Content-Type to text/html, writes statusCode, and writes the
// rendered page body.
func WriteHTML(w http.ResponseWriter, statusCode int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}

// WritePlainError writes a bare text fallback for when page rendering itself
// fails; the visitor still gets an answer.
func WritePlainError(w http.ResponseWriter, statusCode int) {
	http.Error(w, http.StatusText(statusCode), statusCode)
}
