package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"mudanzasBack/internal/models"
	"mudanzasBack/internal/services"
	"mudanzasBack/utils"
)

type MessageHandler struct {
	Service *services.MessageService
	Storage *utils.S3Storage
}

// SendMessage accepts either a JSON body with the message text or a
// multipart form carrying a file attachment plus an optional text field.
func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	chatID, ok := pathInt(r, "id")
	if !ok {
		http.Error(w, "Invalid chat ID", http.StatusBadRequest)
		return
	}

	message := models.Message{
		ChatID:   chatID,
		SenderID: currentUserID(r),
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		data, header, err := readUpload(r, "file", maxChatAttachmentSize, attachmentContentTypes)
		if err != nil {
			http.Error(w, err.Error(), uploadStatus(err))
			return
		}

		fileName := fmt.Sprintf("chat_%d_%d%s", chatID, time.Now().UnixNano(), filepath.Ext(header.Filename))
		contentType := header.Header.Get("Content-Type")
		url, err := h.Storage.UploadFile(data, fileName, "chat", contentType)
		if err != nil {
			log.Printf("attachment upload failed: %v", err)
			http.Error(w, "Could not upload attachment", http.StatusInternalServerError)
			return
		}

		message.Text = r.FormValue("text")
		message.Attachment = &models.Attachment{
			URL:  url,
			Type: contentType,
			Name: header.Filename,
		}
	} else {
		var input struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		message.Text = input.Text
	}

	created, err := h.Service.SendMessage(r.Context(), message)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrChatNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, models.ErrForbidden):
			http.Error(w, err.Error(), http.StatusForbidden)
		default:
			log.Printf("send message failed: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *MessageHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	chatID, ok := pathInt(r, "id")
	if !ok {
		http.Error(w, "Invalid chat ID", http.StatusBadRequest)
		return
	}

	messages, err := h.Service.GetMessagesForChat(r.Context(), chatID, currentUserID(r), currentRole(r))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrChatNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, models.ErrForbidden):
			http.Error(w, err.Error(), http.StatusForbidden)
		default:
			http.Error(w, "Could not fetch messages", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messages)
}
