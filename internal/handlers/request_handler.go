package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"mudanzasBack/internal/models"
	"mudanzasBack/internal/services"
)

type RequestHandler struct {
	Service *services.RequestService
}

func (h *RequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req models.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	req.CustomerID = currentUserID(r)

	created, err := h.Service.CreateRequest(r.Context(), req)
	if err != nil {
		log.Printf("create request failed: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// GetFeed serves the paginated request feed for companies. Cursor and
// limit come from query parameters, sort=oldest flips the order.
func (h *RequestHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	afterID, _ := strconv.Atoi(r.URL.Query().Get("after"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	ascending := r.URL.Query().Get("sort") == "asc"

	page, err := h.Service.GetFeed(r.Context(), afterID, limit, ascending)
	if err != nil {
		log.Printf("feed query failed: %v", err)
		http.Error(w, "Could not fetch requests", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(page)
}

// GetOpenRequests is the non-paginated fallback listing used by older
// clients.
func (h *RequestHandler) GetOpenRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Service.GetOpenRequests(r.Context())
	if err != nil {
		log.Printf("open requests query failed: %v", err)
		http.Error(w, "Could not fetch requests", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(requests)
}

func (h *RequestHandler) GetRequestByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		http.Error(w, "Invalid request ID", http.StatusBadRequest)
		return
	}

	req, err := h.Service.GetRequestForViewer(r.Context(), id, currentUserID(r), currentRole(r))
	if err != nil {
		if errors.Is(err, models.ErrRequestNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "Could not fetch request", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(req)
}

func (h *RequestHandler) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		http.Error(w, "Invalid request ID", http.StatusBadRequest)
		return
	}

	var req models.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	req.ID = id

	updated, err := h.Service.UpdateRequest(r.Context(), req, currentUserID(r), currentRole(r))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRequestNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, models.ErrForbidden):
			http.Error(w, err.Error(), http.StatusForbidden)
		default:
			log.Printf("update request failed: %v", err)
			http.Error(w, "Could not update request", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

func (h *RequestHandler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		http.Error(w, "Invalid request ID", http.StatusBadRequest)
		return
	}

	err := h.Service.DeleteRequest(r.Context(), id, currentUserID(r), currentRole(r))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRequestNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, models.ErrForbidden):
			http.Error(w, err.Error(), http.StatusForbidden)
		default:
			http.Error(w, "Could not delete request", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
