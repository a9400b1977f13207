package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"mudanzasBack/internal/models"
	"mudanzasBack/internal/services"
)

type UnlockHandler struct {
	Service *services.UnlockService
}

// Unlock reveals the contact details of a request to a company. The
// body must carry confirm=true, the UI shows the credit cost first.
func (h *UnlockHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	var input models.UnlockRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	unlock, err := h.Service.Unlock(r.Context(), currentUserID(r), input)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUnlockConfirmation):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, models.ErrRequestNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			log.Printf("unlock failed: %v", err)
			http.Error(w, "Could not unlock request", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(unlock)
}

func (h *UnlockHandler) CheckUnlock(w http.ResponseWriter, r *http.Request) {
	requestID, ok := pathInt(r, "id")
	if !ok {
		http.Error(w, "Invalid request ID", http.StatusBadRequest)
		return
	}

	unlocked, err := h.Service.IsUnlocked(r.Context(), currentUserID(r), requestID)
	if err != nil {
		http.Error(w, "Could not check unlock", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"unlocked": unlocked})
}

func (h *UnlockHandler) ListUnlocks(w http.ResponseWriter, r *http.Request) {
	unlocks, err := h.Service.ListUnlocks(r.Context(), currentUserID(r))
	if err != nil {
		http.Error(w, "Could not fetch unlocks", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(unlocks)
}
