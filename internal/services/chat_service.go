package services

import (
	"context"

	"mudanzasBack/internal/models"
	"mudanzasBack/internal/repositories"
)

type ChatService struct {
	ChatRepo *repositories.ChatRepository
	Presence *PresenceService
}

func (s *ChatService) GetChatByID(ctx context.Context, chatID, callerID int, callerRole string) (models.Chat, error) {
	chat, err := s.ChatRepo.GetChatByID(ctx, chatID)
	if err != nil {
		return models.Chat{}, err
	}
	if callerRole != models.RoleAdmin {
		if _, err := memberRole(chat, callerID); err != nil {
			return models.Chat{}, err
		}
	}
	return chat, nil
}

func (s *ChatService) GetChatsByUserID(ctx context.Context, userID int) ([]models.Chat, error) {
	return s.ChatRepo.GetChatsByUserID(ctx, userID)
}

// SetTyping records the caller's heartbeat for its side of the thread.
func (s *ChatService) SetTyping(ctx context.Context, chatID, callerID int) error {
	chat, err := s.ChatRepo.GetChatByID(ctx, chatID)
	if err != nil {
		return err
	}
	role, err := memberRole(chat, callerID)
	if err != nil {
		return err
	}
	return s.Presence.SetTyping(ctx, chatID, role)
}

func (s *ChatService) ClearTyping(ctx context.Context, chatID, callerID int) error {
	chat, err := s.ChatRepo.GetChatByID(ctx, chatID)
	if err != nil {
		return err
	}
	role, err := memberRole(chat, callerID)
	if err != nil {
		return err
	}
	return s.Presence.ClearTyping(ctx, chatID, role)
}

// PeerTyping reports whether the other side of the thread is typing.
func (s *ChatService) PeerTyping(ctx context.Context, chatID, callerID int) (bool, error) {
	chat, err := s.ChatRepo.GetChatByID(ctx, chatID)
	if err != nil {
		return false, err
	}
	role, err := memberRole(chat, callerID)
	if err != nil {
		return false, err
	}

	peer := models.RoleCustomer
	if role == models.RoleCustomer {
		peer = models.RoleCompany
	}
	return s.Presence.IsTyping(ctx, chatID, peer)
}
