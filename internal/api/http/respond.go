package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"learnhub-backend/internal/domain"
	"learnhub-backend/internal/logger"
	"learnhub-backend/internal/security"
)

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

// writeError maps service errors onto the HTTP status taxonomy:
// 400 invalid input/state, 401/403 authorization, 404 not found,
// 500 anything unexpected.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken):
		writeMessage(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		writeMessage(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrActiveRequestExists),
		errors.Is(err, domain.ErrCooldownActive),
		errors.Is(err, domain.ErrIneligibleRole),
		errors.Is(err, domain.ErrProtectedRole),
		errors.Is(err, domain.ErrInvalidReason),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrUserBlocked),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrEmailTaken):
		writeMessage(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("Unhandled error", "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
