package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"mudanzasBack/internal/models"
	"mudanzasBack/internal/services"
)

type ChatHandler struct {
	Service *services.ChatService
}

func (h *ChatHandler) GetChatByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		http.Error(w, "Invalid chat ID", http.StatusBadRequest)
		return
	}

	chat, err := h.Service.GetChatByID(r.Context(), id, currentUserID(r), currentRole(r))
	if err != nil {
		writeChatError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(chat)
}

func (h *ChatHandler) GetMyChats(w http.ResponseWriter, r *http.Request) {
	chats, err := h.Service.GetChatsByUserID(r.Context(), currentUserID(r))
	if err != nil {
		log.Printf("list chats failed: %v", err)
		http.Error(w, "Could not fetch chats", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(chats)
}

func (h *ChatHandler) SetTyping(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		http.Error(w, "Invalid chat ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.SetTyping(r.Context(), id, currentUserID(r)); err != nil {
		writeChatError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ChatHandler) ClearTyping(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		http.Error(w, "Invalid chat ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.ClearTyping(r.Context(), id, currentUserID(r)); err != nil {
		writeChatError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetTyping reports whether the other side of the chat is typing.
func (h *ChatHandler) GetTyping(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		http.Error(w, "Invalid chat ID", http.StatusBadRequest)
		return
	}

	typing, err := h.Service.PeerTyping(r.Context(), id, currentUserID(r))
	if err != nil {
		writeChatError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"typing": typing})
}

func writeChatError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrChatNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, models.ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	default:
		log.Printf("chat operation failed: %v", err)
		http.Error(w, "Could not process chat request", http.StatusInternalServerError)
	}
}
