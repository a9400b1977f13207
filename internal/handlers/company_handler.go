package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"

	"mudanzasBack/internal/models"
	"mudanzasBack/internal/services"
	"mudanzasBack/utils"
)

type CompanyHandler struct {
	Service *services.CompanyService
	Storage *utils.S3Storage
}

func (h *CompanyHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var company models.Company
	if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	company.UserID = currentUserID(r)

	created, err := h.Service.CreateCompany(r.Context(), company)
	if err != nil {
		log.Printf("create company failed: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *CompanyHandler) GetCompanyByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		http.Error(w, "Invalid company ID", http.StatusBadRequest)
		return
	}

	company, err := h.Service.GetCompanyByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrCompanyNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "Could not fetch company", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(company)
}

func (h *CompanyHandler) GetMyCompany(w http.ResponseWriter, r *http.Request) {
	company, err := h.Service.GetCompanyByUserID(r.Context(), currentUserID(r))
	if err != nil {
		if errors.Is(err, models.ErrCompanyNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "Could not fetch company", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(company)
}

func (h *CompanyHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		http.Error(w, "Invalid company ID", http.StatusBadRequest)
		return
	}

	var company models.Company
	if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	company.ID = id

	updated, err := h.Service.UpdateCompany(r.Context(), company, currentUserID(r), currentRole(r))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrCompanyNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, models.ErrForbidden):
			http.Error(w, err.Error(), http.StatusForbidden)
		default:
			log.Printf("update company failed: %v", err)
			http.Error(w, "Could not update company", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

// AdvanceOnboarding moves the caller's company one step forward in the
// onboarding flow.
func (h *CompanyHandler) AdvanceOnboarding(w http.ResponseWriter, r *http.Request) {
	company, err := h.Service.AdvanceOnboarding(r.Context(), currentUserID(r))
	if err != nil {
		if errors.Is(err, models.ErrCompanyNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "Could not advance onboarding", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(company)
}

func (h *CompanyHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	data, header, err := readUpload(r, "logo", maxCompanyLogoSize, imageContentTypes)
	if err != nil {
		http.Error(w, err.Error(), uploadStatus(err))
		return
	}

	userID := currentUserID(r)
	fileName := fmt.Sprintf("company_%d%s", userID, filepath.Ext(header.Filename))
	url, err := h.Storage.UploadFile(data, fileName, "logos", header.Header.Get("Content-Type"))
	if err != nil {
		log.Printf("logo upload failed: %v", err)
		http.Error(w, "Could not upload logo", http.StatusInternalServerError)
		return
	}

	company, err := h.Service.SetLogo(r.Context(), userID, url)
	if err != nil {
		if errors.Is(err, models.ErrCompanyNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "Could not update company", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(company)
}

// SubmitVerification uploads an identity document and opens a pending
// verification for admin review.
func (h *CompanyHandler) SubmitVerification(w http.ResponseWriter, r *http.Request) {
	data, header, err := readUpload(r, "document", maxChatAttachmentSize, documentContentTypes)
	if err != nil {
		http.Error(w, err.Error(), uploadStatus(err))
		return
	}

	userID := currentUserID(r)
	fileName := fmt.Sprintf("verification_%d%s", userID, filepath.Ext(header.Filename))
	url, err := h.Storage.UploadFile(data, fileName, "verifications", header.Header.Get("Content-Type"))
	if err != nil {
		log.Printf("verification upload failed: %v", err)
		http.Error(w, "Could not upload document", http.StatusInternalServerError)
		return
	}

	verification, err := h.Service.SubmitVerification(r.Context(), userID, url)
	if err != nil {
		if errors.Is(err, models.ErrCompanyNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Printf("submit verification failed: %v", err)
		http.Error(w, "Could not submit verification", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(verification)
}
