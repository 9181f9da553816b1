// Package handler contains the HTTP layer: request parsing, response
// envelopes, and the single place where domain errors become status codes.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/maintainer-match/internal/apperror"
)

// writeJSON sends a JSON response with the given status. Headers must be set
// before WriteHeader, and WriteHeader before Encode — once the body starts,
// the status line is gone.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError translates a domain error into the flat {"error": message} body
// the frontend expects. The service layer returns apperror sentinels wrapped
// in context; errors.Is walks the chain. Anything unrecognized is a 500 with
// a generic message — raw error strings can leak SQL or file paths, so they
// go to the log, never the client.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, apperror.ErrUnauthenticated), errors.Is(err, apperror.ErrSessionExpired):
			status = http.StatusUnauthorized
		}
		writeJSON(w, status, map[string]string{"error": appErr.Message})
		return
	}

	logger.Error("request failed", slog.String("error", err.Error()))
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
}

// decodeJSON parses a request body, reporting malformed JSON as a 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return false
	}
	return true
}
