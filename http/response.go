package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/sagarc03/sitemapry"
)

// WriteText writes a plain-text response.
func WriteText(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = io.WriteString(w, message)
}

// WriteJSON writes a JSON response.
func WriteJSON(w http.ResponseWriter, code int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(data)
}

// HandleError writes the appropriate response for an error. Unexpected
// errors are downgraded to an opaque 500 so internal paths never leak.
func HandleError(w http.ResponseWriter, err error) {
	if errors.Is(err, sitemapry.ErrUnauthorized) {
		slog.Warn("request rejected", "err", err)
		WriteText(w, http.StatusForbidden, "Forbidden")
		return
	}

	slog.Error("request error", "err", err)

	switch {
	case errors.Is(err, sitemapry.ErrNotFound):
		WriteText(w, http.StatusNotFound, "Not Found")
	case errors.Is(err, sitemapry.ErrInvalidInput):
		WriteText(w, http.StatusBadRequest, "Invalid market")
	default:
		WriteText(w, http.StatusInternalServerError, "Internal server error")
	}
}
