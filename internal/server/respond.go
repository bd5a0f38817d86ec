package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/optivex/lumexa-go/internal/llm"
	"github.com/optivex/lumexa-go/internal/service"
)

// errorResponse is the JSON body for every failed request.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// writeError maps the service error taxonomy onto HTTP status codes:
// validation 400, rate limiting 429, configuration and upstream failures 500.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrEmptyPrompt), errors.Is(err, service.ErrEmptyQuery):
		status = http.StatusBadRequest
	case errors.Is(err, llm.ErrRateLimited):
		status = http.StatusTooManyRequests
	}

	writeJSON(w, logger, status, errorResponse{Success: false, Error: err.Error()})
}
