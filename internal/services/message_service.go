package services

import (
	"context"
	"errors"
	"strings"

	"mudanzasBack/internal/models"
	"mudanzasBack/internal/repositories"
)

// chatHistoryLimit bounds a thread read to the most recent messages.
const chatHistoryLimit = 50

type MessageService struct {
	MessageRepo *repositories.MessageRepository
	ChatRepo    *repositories.ChatRepository
	Notifier    *NotificationService
	Events      EventPublisher
}

// memberRole resolves the sender's side of the thread, rejecting outsiders.
func memberRole(chat models.Chat, userID int) (string, error) {
	switch userID {
	case chat.CustomerID:
		return models.RoleCustomer, nil
	case chat.CompanyID:
		return models.RoleCompany, nil
	}
	return "", models.ErrForbidden
}

// SendMessage appends to a thread. The attachment, if any, must already be
// uploaded: a failed upload never reaches this point, so no message row is
// created for it.
func (s *MessageService) SendMessage(ctx context.Context, message models.Message) (models.Message, error) {
	if strings.TrimSpace(message.Text) == "" && message.Attachment == nil {
		return models.Message{}, errors.New("message text or attachment is required")
	}

	chat, err := s.ChatRepo.GetChatByID(ctx, message.ChatID)
	if err != nil {
		return models.Message{}, err
	}
	role, err := memberRole(chat, message.SenderID)
	if err != nil {
		return models.Message{}, err
	}
	message.SenderRole = role

	created, err := s.MessageRepo.CreateMessage(ctx, message)
	if err != nil {
		return models.Message{}, err
	}

	publish(s.Events, "message.created", models.ChatTopic(chat.ID), created)
	if s.Notifier != nil {
		receiverID := chat.CustomerID
		if created.SenderID == chat.CustomerID {
			receiverID = chat.CompanyID
		}
		s.Notifier.NotifyNewMessage(ctx, receiverID, created)
	}
	return created, nil
}

// GetMessagesForChat returns the last messages of a thread in ascending
// order, visible only to its two members (or an admin).
func (s *MessageService) GetMessagesForChat(ctx context.Context, chatID, callerID int, callerRole string) ([]models.Message, error) {
	chat, err := s.ChatRepo.GetChatByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if callerRole != models.RoleAdmin {
		if _, err := memberRole(chat, callerID); err != nil {
			return nil, err
		}
	}
	return s.MessageRepo.GetMessagesForChat(ctx, chatID, chatHistoryLimit)
}
