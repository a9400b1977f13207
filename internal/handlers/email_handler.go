package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"mudanzasBack/internal/services"
)

type EmailHandler struct {
	Sender services.EmailSender
}

func (h *EmailHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	var input struct {
		To      []string `json:"to"`
		Subject string   `json:"subject"`
		Body    string   `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(input.To) == 0 || input.Subject == "" {
		http.Error(w, "Recipient and subject are required", http.StatusBadRequest)
		return
	}

	if err := h.Sender.Send(r.Context(), input.To, input.Subject, input.Body); err != nil {
		log.Printf("send email failed: %v", err)
		http.Error(w, "Could not send email", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
