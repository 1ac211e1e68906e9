package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Milkwastaken07/DEHA-Rental/internal/domain"
	"github.com/Milkwastaken07/DEHA-Rental/internal/logger"
)

// Every response follows the envelope {data|properties, message?, error?}.

type dataEnvelope struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message,omitempty"`
}

type propertiesEnvelope struct {
	Properties interface{} `json:"properties"`
}

type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(body)
}

func respondData(w http.ResponseWriter, code int, data interface{}, message string) {
	respondJSON(w, code, dataEnvelope{Data: data, Message: message})
}

func respondProperties(w http.ResponseWriter, code int, properties interface{}) {
	respondJSON(w, code, propertiesEnvelope{Properties: properties})
}

// respondError translates the domain error taxonomy to HTTP status codes.
// Unexpected errors are logged with the operation name and returned as a
// generic 500 so internals never leak to the caller.
func respondError(w http.ResponseWriter, op string, err error) {
	var code int
	msg := err.Error()
	switch {
	case errors.Is(err, domain.ErrInvalid):
		code = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		code = http.StatusConflict
	default:
		code = http.StatusInternalServerError
		logger.Error("Request failed", "op", op, "error", err)
		msg = "internal server error"
	}
	if code != http.StatusInternalServerError {
		logger.Debug("Request rejected", "op", op, "status", code, "error", err)
	}
	respondJSON(w, code, errorEnvelope{Error: msg, Message: msg})
}
