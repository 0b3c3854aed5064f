package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"droscher.com/AuthenticEats/pkg/repository"
)

// envelope is the response shape shared by every endpoint.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeData(writer http.ResponseWriter, status int, data any) {
	writeJSON(writer, status, envelope{Success: true, Data: data})
}

func writeError(logger *zap.Logger, writer http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, repository.ErrRestaurantNotFound), errors.Is(err, repository.ErrReviewNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, ErrUpstream):
		status = http.StatusBadGateway
	}

	if status == http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
	}

	writeJSON(writer, status, envelope{Success: false, Error: err.Error()})
}

func writeJSON(writer http.ResponseWriter, status int, body envelope) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)

	_ = json.NewEncoder(writer).Encode(body)
}
