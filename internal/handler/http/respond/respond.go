// Package respond provides utilities for sending HTTP responses in JSON
// format, with error sanitization so internal details never reach clients.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent, so only log.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error response with the given status code and error
// message verbatim. Use SafeError unless the message is known to be safe.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// safeSubstrings marks error messages that are fine to show to clients:
// validation and not-found style messages carry no internal detail.
var safeSubstrings = []string{
	"required",
	"invalid",
	"not found",
	"unknown source",
	"must be",
	"cannot be",
}

// SafeError sanitizes error messages before returning them to clients.
// Validation-style errors pass through; anything else (and every 5xx) is
// replaced with a generic message and logged with the real error.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	msg := err.Error()
	isSafe := false
	lowerMsg := strings.ToLower(msg)
	for _, safe := range safeSubstrings {
		if strings.Contains(lowerMsg, safe) {
			isSafe = true
			break
		}
	}
	if code >= 500 {
		isSafe = false
	}

	if isSafe {
		JSON(w, code, map[string]string{"error": msg})
		return
	}

	slog.Default().Error("request failed",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.Any("error", err))
	JSON(w, code, map[string]string{"error": "internal server error"})
}
