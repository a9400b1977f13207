package services

import (
	"context"

	"mudanzasBack/internal/models"
	"mudanzasBack/internal/repositories"
)

type UnlockService struct {
	UnlockRepo  *repositories.UnlockRepository
	RequestRepo *repositories.RequestRepository
}

// Unlock creates the one-way unlock record for a (company, request) pair.
// The confirm flag mirrors the blocking dialog in the client: without it the
// unlock is rejected before any write. Idempotent for an already-unlocked
// pair.
func (s *UnlockService) Unlock(ctx context.Context, companyID int, req models.UnlockRequest) (models.Unlock, error) {
	if !req.Confirm {
		return models.Unlock{}, models.ErrUnlockConfirmation
	}

	request, err := s.RequestRepo.GetRequestByID(ctx, req.RequestID)
	if err != nil {
		return models.Unlock{}, err
	}
	cost, _ := request.CreditCost()

	return s.UnlockRepo.CreateUnlock(ctx, models.Unlock{
		CompanyID: companyID,
		RequestID: req.RequestID,
		Cost:      cost,
	})
}

func (s *UnlockService) IsUnlocked(ctx context.Context, companyID, requestID int) (bool, error) {
	return s.UnlockRepo.IsUnlocked(ctx, companyID, requestID)
}

func (s *UnlockService) ListUnlocks(ctx context.Context, companyID int) ([]models.Unlock, error) {
	return s.UnlockRepo.GetByCompanyID(ctx, companyID)
}
