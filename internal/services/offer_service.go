package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"mudanzasBack/internal/models"
	"mudanzasBack/internal/repositories"
)

type OfferService struct {
	OfferRepo   *repositories.OfferRepository
	RequestRepo *repositories.RequestRepository
	CompanyRepo *repositories.CompanyRepository
	ChatRepo    *repositories.ChatRepository
	MessageRepo *repositories.MessageRepository
	Notifier    *NotificationService
	Events      EventPublisher
}

// SubmitOffer validates and stores a bid, opens the chat thread for the
// request/offer pair and drops the greeting message into it.
func (s *OfferService) SubmitOffer(ctx context.Context, offer models.Offer) (models.Offer, error) {
	if offer.Price <= 0 {
		return models.Offer{}, errors.New("price must be a positive number")
	}
	if strings.TrimSpace(offer.Message) == "" {
		return models.Offer{}, errors.New("message is required")
	}

	company, err := s.CompanyRepo.GetCompanyByUserID(ctx, offer.CompanyID)
	if err != nil {
		return models.Offer{}, err
	}
	offer.CompanyName = company.Name

	req, err := s.RequestRepo.GetRequestByID(ctx, offer.RequestID)
	if err != nil {
		return models.Offer{}, err
	}
	if !models.IsFeedVisible(req) {
		return models.Offer{}, models.ErrRequestNotFound
	}

	offer, err = s.OfferRepo.CreateOffer(ctx, offer)
	if err != nil {
		return models.Offer{}, err
	}

	chatID, err := s.ChatRepo.GetOrCreateChat(ctx, models.Chat{
		RequestID:  offer.RequestID,
		OfferID:    offer.ID,
		CustomerID: req.CustomerID,
		CompanyID:  offer.CompanyID,
	})
	if err != nil {
		return offer, err
	}
	offer.ChatID = chatID

	text := fmt.Sprintf("¡Hola! Le ofrecemos un precio de %v €. %s", offer.Price, offer.Message)
	if _, err = s.MessageRepo.CreateMessage(ctx, models.Message{
		ChatID:     chatID,
		SenderID:   offer.CompanyID,
		SenderRole: models.RoleCompany,
		Text:       text,
	}); err != nil {
		return offer, err
	}

	publish(s.Events, "offer.created", models.TopicFeed, map[string]int{"request_id": offer.RequestID})
	if s.Notifier != nil {
		s.Notifier.NotifyNewOffer(ctx, req.CustomerID, offer)
	}
	return offer, nil
}

// canModifyOffer gates edit and withdrawal: only the owning company, only
// while pending.
func canModifyOffer(offer models.Offer, companyID int) error {
	if offer.CompanyID != companyID {
		return models.ErrForbidden
	}
	if models.NormalizeOfferStatus(offer.Status) != models.OfferStatusPending {
		return models.ErrOfferNotPending
	}
	return nil
}

func (s *OfferService) EditOffer(ctx context.Context, offerID, companyID int, upd models.OfferUpdate) (models.Offer, error) {
	if upd.Price <= 0 {
		return models.Offer{}, errors.New("price must be a positive number")
	}
	if strings.TrimSpace(upd.Message) == "" {
		return models.Offer{}, errors.New("message is required")
	}

	offer, err := s.OfferRepo.GetByID(ctx, offerID)
	if err != nil {
		return models.Offer{}, err
	}
	if err := canModifyOffer(offer, companyID); err != nil {
		return models.Offer{}, err
	}
	return s.OfferRepo.UpdateOffer(ctx, offerID, upd)
}

// WithdrawOffer hard-deletes a pending offer of the calling company. The
// caller must confirm explicitly, a bare delete is refused.
func (s *OfferService) WithdrawOffer(ctx context.Context, offerID, companyID int, confirm bool) error {
	if !confirm {
		return models.ErrWithdrawConfirmation
	}

	offer, err := s.OfferRepo.GetByID(ctx, offerID)
	if err != nil {
		return err
	}
	if err := canModifyOffer(offer, companyID); err != nil {
		return err
	}
	return s.OfferRepo.DeleteOffer(ctx, offerID)
}

// ListOffers returns a request's offers. Companies only ever see their own
// rows; the owning customer and admins see all of them.
func (s *OfferService) ListOffers(ctx context.Context, requestID, callerID int, callerRole string, mineOnly bool) ([]models.Offer, error) {
	companyFilter := 0
	if callerRole == models.RoleCompany || mineOnly {
		companyFilter = callerID
	}
	if callerRole == models.RoleCustomer {
		req, err := s.RequestRepo.GetRequestByID(ctx, requestID)
		if err != nil {
			return nil, err
		}
		if req.CustomerID != callerID {
			return nil, models.ErrForbidden
		}
		companyFilter = 0
	}
	return s.OfferRepo.GetByRequestID(ctx, requestID, companyFilter)
}

// ListCompanyOffers returns all offers of one company enriched with their
// parent requests. A failed request lookup leaves the offer without the
// optional fields instead of failing the whole list.
func (s *OfferService) ListCompanyOffers(ctx context.Context, companyID int) ([]models.Offer, error) {
	offers, err := s.OfferRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	for i := range offers {
		req, err := s.RequestRepo.GetRequestByID(ctx, offers[i].RequestID)
		if err != nil {
			log.Printf("offer %d: request enrichment failed: %v", offers[i].ID, err)
			continue
		}
		req.MaskContact()
		offers[i].Request = &req
	}
	return offers, nil
}

// AcceptOffer lets the request's customer take a pending bid; the request's
// other pending bids are declined in the same transaction.
func (s *OfferService) AcceptOffer(ctx context.Context, offerID, customerID int) error {
	offer, err := s.OfferRepo.GetByID(ctx, offerID)
	if err != nil {
		return err
	}
	req, err := s.RequestRepo.GetRequestByID(ctx, offer.RequestID)
	if err != nil {
		return err
	}
	if req.CustomerID != customerID {
		return models.ErrForbidden
	}

	if err := s.OfferRepo.Accept(ctx, offer.RequestID, offerID); err != nil {
		return err
	}
	publish(s.Events, "request.removed", models.TopicFeed, map[string]int{"id": offer.RequestID})
	return nil
}

func (s *OfferService) DeclineOffer(ctx context.Context, offerID, customerID int) error {
	offer, err := s.OfferRepo.GetByID(ctx, offerID)
	if err != nil {
		return err
	}
	req, err := s.RequestRepo.GetRequestByID(ctx, offer.RequestID)
	if err != nil {
		return err
	}
	if req.CustomerID != customerID {
		return models.ErrForbidden
	}
	return s.OfferRepo.Decline(ctx, offerID)
}
