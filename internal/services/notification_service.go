package services

import (
	"context"
	"fmt"
	"log"

	"firebase.google.com/go/messaging"

	"mudanzasBack/internal/models"
	"mudanzasBack/internal/repositories"
)

// NotificationService delivers FCM pushes for new offers and chat messages.
// Delivery is best effort: failures are logged and never propagate.
type NotificationService struct {
	Client    *messaging.Client
	TokenRepo *repositories.DeviceTokenRepository
}

func (s *NotificationService) NotifyNewOffer(ctx context.Context, customerID int, offer models.Offer) {
	title := "Nueva oferta"
	body := fmt.Sprintf("%s ha ofertado %v € por tu mudanza", offer.CompanyName, offer.Price)
	s.send(ctx, customerID, title, body, map[string]string{
		"link":       "offer",
		"request_id": fmt.Sprint(offer.RequestID),
		"offer_id":   fmt.Sprint(offer.ID),
	})
}

func (s *NotificationService) NotifyNewMessage(ctx context.Context, receiverID int, message models.Message) {
	title := "Nuevo mensaje"
	body := message.Text
	if body == "" && message.Attachment != nil {
		body = message.Attachment.Name
	}
	s.send(ctx, receiverID, title, body, map[string]string{
		"link":    "chat",
		"chat_id": fmt.Sprint(message.ChatID),
	})
}

func (s *NotificationService) send(ctx context.Context, userID int, title, body string, data map[string]string) {
	if s == nil || s.Client == nil {
		return
	}

	token, err := s.TokenRepo.GetTokenByUserID(ctx, userID)
	if err != nil || token == "" {
		return
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority": "10",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Alert: &messaging.ApsAlert{
						Title: title,
						Body:  body,
					},
					Sound: "default",
				},
			},
		},
	}

	if _, err := s.Client.Send(ctx, msg); err != nil {
		log.Printf("push to user %d failed: %v", userID, err)
	}
}
