package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"sportclash/internal/models"
	"sportclash/internal/service"
)

func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondWithError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Printf("%s: %v", logMsg, err)
	}

	respondWithJSON(w, status, map[string]string{"error": userMsg})
}

// respondWithDomainError maps the domain error taxonomy to HTTP statuses:
// validation 400, not found 404, closed session 409.
func respondWithDomainError(w http.ResponseWriter, err error) {
	switch {
	case models.IsValidation(err):
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
	case models.IsNotFound(err):
		respondWithError(w, http.StatusNotFound, err.Error(), "", nil)
	case errors.Is(err, models.ErrSessionClosed):
		respondWithError(w, http.StatusConflict, err.Error(), "", nil)
	case errors.Is(err, service.ErrEmailTaken):
		respondWithError(w, http.StatusConflict, err.Error(), "", nil)
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidToken):
		respondWithError(w, http.StatusUnauthorized, err.Error(), "", nil)
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "request failed", err)
	}
}
