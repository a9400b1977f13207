package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"mudanzasBack/internal/models"
	"mudanzasBack/internal/services"
)

type OfferHandler struct {
	Service *services.OfferService
}

func (h *OfferHandler) SubmitOffer(w http.ResponseWriter, r *http.Request) {
	requestID, ok := pathInt(r, "id")
	if !ok {
		http.Error(w, "Invalid request ID", http.StatusBadRequest)
		return
	}

	var offer models.Offer
	if err := json.NewDecoder(r.Body).Decode(&offer); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	offer.RequestID = requestID
	offer.CompanyID = currentUserID(r)

	created, err := h.Service.SubmitOffer(r.Context(), offer)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrAlreadyOffered):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, models.ErrRequestNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, models.ErrCompanyNotFound):
			http.Error(w, err.Error(), http.StatusForbidden)
		default:
			log.Printf("submit offer failed: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *OfferHandler) EditOffer(w http.ResponseWriter, r *http.Request) {
	offerID, ok := pathInt(r, "id")
	if !ok {
		http.Error(w, "Invalid offer ID", http.StatusBadRequest)
		return
	}

	var upd models.OfferUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.Service.EditOffer(r.Context(), offerID, currentUserID(r), upd)
	if err != nil {
		writeOfferError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

func (h *OfferHandler) WithdrawOffer(w http.ResponseWriter, r *http.Request) {
	offerID, ok := pathInt(r, "id")
	if !ok {
		http.Error(w, "Invalid offer ID", http.StatusBadRequest)
		return
	}

	var input struct {
		Confirm bool `json:"confirm"`
	}
	_ = json.NewDecoder(r.Body).Decode(&input)

	if err := h.Service.WithdrawOffer(r.Context(), offerID, currentUserID(r), input.Confirm); err != nil {
		if errors.Is(err, models.ErrWithdrawConfirmation) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		writeOfferError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListOffers returns the offers on a request. Companies only ever see
// their own offer, customers see all offers on requests they own.
func (h *OfferHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	requestID, ok := pathInt(r, "id")
	if !ok {
		http.Error(w, "Invalid request ID", http.StatusBadRequest)
		return
	}

	mineOnly := currentRole(r) == models.RoleCompany || r.URL.Query().Get("mine") == "1"
	offers, err := h.Service.ListOffers(r.Context(), requestID, currentUserID(r), currentRole(r), mineOnly)
	if err != nil {
		writeOfferError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(offers)
}

func (h *OfferHandler) ListMyOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.Service.ListCompanyOffers(r.Context(), currentUserID(r))
	if err != nil {
		log.Printf("list company offers failed: %v", err)
		http.Error(w, "Could not fetch offers", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(offers)
}

func (h *OfferHandler) AcceptOffer(w http.ResponseWriter, r *http.Request) {
	offerID, ok := pathInt(r, "id")
	if !ok {
		http.Error(w, "Invalid offer ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.AcceptOffer(r.Context(), offerID, currentUserID(r)); err != nil {
		writeOfferError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *OfferHandler) DeclineOffer(w http.ResponseWriter, r *http.Request) {
	offerID, ok := pathInt(r, "id")
	if !ok {
		http.Error(w, "Invalid offer ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeclineOffer(r.Context(), offerID, currentUserID(r)); err != nil {
		writeOfferError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeOfferError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrOfferNotFound), errors.Is(err, models.ErrRequestNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, models.ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, models.ErrOfferNotPending):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Printf("offer operation failed: %v", err)
		http.Error(w, "Could not process offer", http.StatusInternalServerError)
	}
}
