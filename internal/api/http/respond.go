package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"courtmaster-backend/internal/domain"
	"courtmaster-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}

// respondDomainError maps the core's error taxonomy onto HTTP status codes:
// availability conflicts are 409 with the reason verbatim, unknown catalog
// references are 404, malformed requests are 422.
func respondDomainError(w http.ResponseWriter, err error) {
	var availErr *domain.AvailabilityError
	if errors.As(err, &availErr) {
		respondError(w, http.StatusConflict, availErr.Reason)
		return
	}
	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		respondError(w, http.StatusNotFound, notFound.Error())
		return
	}
	var invalid *domain.ValidationError
	if errors.As(err, &invalid) {
		respondError(w, http.StatusUnprocessableEntity, invalid.Msg)
		return
	}
	logger.Error("Unhandled error in request", "error", err)
	respondError(w, http.StatusInternalServerError, "internal error")
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}
