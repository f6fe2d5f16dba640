package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"shopfront/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the stable code and human-readable message.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError maps an error to an HTTP response. Domain errors keep
// their stable code; anything else reads as an internal error.
func writeError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		status := statusFor(domainErr.Code)
		logger.Debug().Str("code", domainErr.Code).Int("status", status).Msg("request rejected")
		writeJSON(w, status, ErrorResponse{Error: ErrorBody{
			Code:    domainErr.Code,
			Message: domainErr.Message,
		}})
		return
	}

	logger.Error().Err(err).Msg("handler error")
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: ErrorBody{
		Code:    model.ErrCodeInternalError,
		Message: "Internal server error",
	}})
}

// writeBadRequest writes a 400 with the given code and message.
func writeBadRequest(w http.ResponseWriter, code, message string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrorBody{
		Code:    code,
		Message: message,
	}})
}

// statusFor maps a domain error code to an HTTP status.
func statusFor(code string) int {
	switch code {
	case model.ErrCodeNotFound, model.ErrCodeProductNotFound:
		return http.StatusNotFound
	case model.ErrCodeDuplicateEmail:
		return http.StatusConflict
	case model.ErrCodeBadCredentials, model.ErrCodeUnauthorised:
		return http.StatusUnauthorized
	case model.ErrCodeForbidden:
		return http.StatusForbidden
	case model.ErrCodeInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// pathID parses the {id} chi URL parameter as a UUID.
func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// decodeJSON decodes the request body into v.
func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// pagination parses the limit and offset query parameters, falling
// back to defaults on absent or malformed values.
func pagination(r *http.Request) (limit, offset int) {
	limit = queryInt(r, "limit", 10)
	offset = queryInt(r, "offset", 0)
	return limit, offset
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
