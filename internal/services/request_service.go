package services

import (
	"context"
	"errors"
	"strings"

	"mudanzasBack/internal/models"
	"mudanzasBack/internal/repositories"
)

const (
	feedDefaultLimit = 20
	feedMaxLimit     = 50
)

type RequestService struct {
	RequestRepo *repositories.RequestRepository
	UnlockRepo  *repositories.UnlockRepository
	Events      EventPublisher
}

func (s *RequestService) CreateRequest(ctx context.Context, req models.Request) (models.Request, error) {
	if strings.TrimSpace(req.FromCity) == "" || strings.TrimSpace(req.ToCity) == "" {
		return models.Request{}, errors.New("origin and destination cities are required")
	}
	req.Status = models.NormalizeRequestStatus(req.Status)
	req.AutoCreditCost = CalculateCreditCost(req.FromCity, req.ToCity, req.MoveSize)

	created, err := s.RequestRepo.CreateRequest(ctx, req)
	if err != nil {
		return models.Request{}, err
	}

	if models.IsFeedVisible(created) {
		feed := created
		feed.MaskContact()
		publish(s.Events, "request.created", models.TopicFeed, feed)
	}
	return created, nil
}

// clampFeedLimit forces a client-supplied page size into the allowed range.
func clampFeedLimit(limit int) int {
	if limit <= 0 {
		return feedDefaultLimit
	}
	if limit > feedMaxLimit {
		return feedMaxLimit
	}
	return limit
}

// GetFeed serves one keyset page of open requests with masked contacts.
func (s *RequestService) GetFeed(ctx context.Context, afterID, limit int, ascending bool) (models.RequestFeedPage, error) {
	page, err := s.RequestRepo.GetFeed(ctx, afterID, clampFeedLimit(limit), ascending)
	if err != nil {
		return models.RequestFeedPage{}, err
	}
	for i := range page.Requests {
		page.Requests[i].MaskContact()
	}
	return page, nil
}

// GetOpenRequests is the degraded-mode one-shot read: same filter as the
// feed, no pagination.
func (s *RequestService) GetOpenRequests(ctx context.Context) ([]models.Request, error) {
	requests, err := s.RequestRepo.GetOpenRequests(ctx, feedMaxLimit)
	if err != nil {
		return nil, err
	}
	for i := range requests {
		requests[i].MaskContact()
	}
	return requests, nil
}

// GetRequestForViewer loads a request and masks the contact fields unless
// the viewer is the owner, an admin, or a company that unlocked the pair.
func (s *RequestService) GetRequestForViewer(ctx context.Context, requestID, viewerID int, viewerRole string) (models.Request, error) {
	req, err := s.RequestRepo.GetRequestByID(ctx, requestID)
	if err != nil {
		return models.Request{}, err
	}

	switch {
	case viewerRole == models.RoleAdmin:
		return req, nil
	case viewerID == req.CustomerID:
		return req, nil
	}

	unlocked, err := s.UnlockRepo.IsUnlocked(ctx, viewerID, requestID)
	if err != nil {
		return models.Request{}, err
	}
	req.ContactUnlocked = unlocked
	if !unlocked {
		req.MaskContact()
	}
	return req, nil
}

func (s *RequestService) UpdateRequest(ctx context.Context, req models.Request, callerID int, callerRole string) (models.Request, error) {
	existing, err := s.RequestRepo.GetRequestByID(ctx, req.ID)
	if err != nil {
		return models.Request{}, err
	}
	if callerRole != models.RoleAdmin && existing.CustomerID != callerID {
		return models.Request{}, models.ErrForbidden
	}

	req.Status = models.NormalizeRequestStatus(req.Status)
	updated, err := s.RequestRepo.UpdateRequest(ctx, req)
	if err != nil {
		return models.Request{}, err
	}

	feed := updated
	feed.MaskContact()
	if models.IsFeedVisible(updated) {
		publish(s.Events, "request.updated", models.TopicFeed, feed)
	} else {
		publish(s.Events, "request.removed", models.TopicFeed, feed)
	}
	return updated, nil
}

func (s *RequestService) DeleteRequest(ctx context.Context, requestID, callerID int, callerRole string) error {
	existing, err := s.RequestRepo.GetRequestByID(ctx, requestID)
	if err != nil {
		return err
	}
	if callerRole != models.RoleAdmin && existing.CustomerID != callerID {
		return models.ErrForbidden
	}

	if err := s.RequestRepo.DeleteRequest(ctx, requestID); err != nil {
		return err
	}
	publish(s.Events, "request.removed", models.TopicFeed, map[string]int{"id": requestID})
	return nil
}
