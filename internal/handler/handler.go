package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"oss-kar/internal/model"

	"github.com/rs/zerolog"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// writeServiceError maps a service error to a response. Validation errors
// become 400 with their message, store failures 500 with details.
func writeServiceError(w http.ResponseWriter, err error, message string, logger zerolog.Logger) {
	var de *model.DomainError
	if errors.As(err, &de) && de.Code == model.ErrCodeValidation {
		writeError(w, http.StatusBadRequest, de.Message, logger)
		return
	}

	var pe *model.PersistenceError
	if errors.As(err, &pe) {
		logger.Error().Err(err).Str("op", pe.Op).Int("status", http.StatusInternalServerError).Msg("handler error")
		writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{Error: message, Details: pe.Error()})
		return
	}

	logger.Error().Err(err).Msg("unexpected service error")
	writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{Error: message})
}

// allowMethod writes 405 and returns false when r does not use method.
func allowMethod(w http.ResponseWriter, r *http.Request, method string, logger zerolog.Logger) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, http.StatusMethodNotAllowed, "method not allowed", logger)
	return false
}

// decodeJSON reads a JSON request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}
