package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"mudanzasBack/internal/models"
	"mudanzasBack/internal/services"
)

type AdminHandler struct {
	Service *services.AdminService
}

// ApproveRequest marks a request as reviewed, optionally overriding
// the automatic credit cost.
func (h *AdminHandler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		http.Error(w, "Invalid request ID", http.StatusBadRequest)
		return
	}

	var input struct {
		AdminCreditCost *int `json:"admin_credit_cost"`
	}
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&input)
	}

	req, err := h.Service.ApproveRequest(r.Context(), services.ApproveRequestInput{
		RequestID:       id,
		AdminCreditCost: input.AdminCreditCost,
	})
	if err != nil {
		if errors.Is(err, models.ErrRequestNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Printf("approve request failed: %v", err)
		http.Error(w, "Could not approve request", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(req)
}

func (h *AdminHandler) CreateFraudFlag(w http.ResponseWriter, r *http.Request) {
	var flag models.FraudFlag
	if err := json.NewDecoder(r.Body).Decode(&flag); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	created, err := h.Service.CreateFraudFlag(r.Context(), flag)
	if err != nil {
		log.Printf("create fraud flag failed: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *AdminHandler) GetFraudFlags(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	severity := r.URL.Query().Get("severity")

	flags, err := h.Service.GetFraudFlags(r.Context(), status, severity)
	if err != nil {
		http.Error(w, "Could not fetch fraud flags", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(flags)
}

func (h *AdminHandler) TransitionFraudFlag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		http.Error(w, "Invalid flag ID", http.StatusBadRequest)
		return
	}

	var t models.FlagTransition
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	t.ID = id

	flag, err := h.Service.TransitionFraudFlag(r.Context(), t, currentUserID(r))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrFlagNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, models.ErrReviewClosed):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "Could not update fraud flag", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(flag)
}

func (h *AdminHandler) GetVerifications(w http.ResponseWriter, r *http.Request) {
	verifications, err := h.Service.GetVerifications(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		http.Error(w, "Could not fetch verifications", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(verifications)
}

func (h *AdminHandler) TransitionVerification(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		http.Error(w, "Invalid verification ID", http.StatusBadRequest)
		return
	}

	var t models.VerificationTransition
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	t.ID = id

	verification, err := h.Service.TransitionVerification(r.Context(), t, currentUserID(r))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrVerificationNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, models.ErrReviewClosed):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			log.Printf("transition verification failed: %v", err)
			http.Error(w, "Could not update verification", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(verification)
}

func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.GetStats(r.Context())
	if err != nil {
		log.Printf("stats query failed: %v", err)
		http.Error(w, "Could not fetch stats", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
