package services

import (
	"context"

	"mudanzasBack/internal/models"
	"mudanzasBack/internal/repositories"
)

// AdminService backs the review workflows: request approval, fraud flags,
// verification queue and the stats panel. Every mutation records the
// reviewing admin.
type AdminService struct {
	RequestRepo      *repositories.RequestRepository
	FlagRepo         *repositories.FraudFlagRepository
	VerificationRepo *repositories.VerificationRepository
	StatsRepo        *repositories.StatsRepository
}

type ApproveRequestInput struct {
	RequestID       int  `json:"request_id"`
	AdminCreditCost *int `json:"admin_credit_cost,omitempty"`
}

// ApproveRequest approves a request, optionally overriding the calculated
// credit cost. The automatic cost stays stored alongside the override.
func (s *AdminService) ApproveRequest(ctx context.Context, input ApproveRequestInput) (models.Request, error) {
	if err := s.RequestRepo.ApproveRequest(ctx, input.RequestID, input.AdminCreditCost); err != nil {
		return models.Request{}, err
	}
	return s.RequestRepo.GetRequestByID(ctx, input.RequestID)
}

func (s *AdminService) CreateFraudFlag(ctx context.Context, flag models.FraudFlag) (models.FraudFlag, error) {
	if flag.Severity == "" {
		flag.Severity = "medium"
	}
	return s.FlagRepo.CreateFlag(ctx, flag)
}

func (s *AdminService) GetFraudFlags(ctx context.Context, status, severity string) ([]models.FraudFlag, error) {
	return s.FlagRepo.GetFlags(ctx, status, severity)
}

// TransitionFraudFlag resolves a pending flag. Confirmed and dismissed are
// absorbing: a second transition fails with ErrReviewClosed.
func (s *AdminService) TransitionFraudFlag(ctx context.Context, t models.FlagTransition, reviewerID int) (models.FraudFlag, error) {
	switch t.Status {
	case models.FlagStatusConfirmed, models.FlagStatusDismissed:
	default:
		return models.FraudFlag{}, models.ErrReviewClosed
	}
	if err := s.FlagRepo.Transition(ctx, t.ID, t.Status, t.Notes, reviewerID); err != nil {
		return models.FraudFlag{}, err
	}
	return s.FlagRepo.GetByID(ctx, t.ID)
}

func (s *AdminService) GetVerifications(ctx context.Context, status string) ([]models.Verification, error) {
	return s.VerificationRepo.GetVerifications(ctx, status)
}

func (s *AdminService) TransitionVerification(ctx context.Context, t models.VerificationTransition, reviewerID int) (models.Verification, error) {
	switch t.Status {
	case models.VerificationStatusApproved, models.VerificationStatusRejected:
	default:
		return models.Verification{}, models.ErrReviewClosed
	}
	if err := s.VerificationRepo.Transition(ctx, t.ID, t.Status, t.Notes, reviewerID); err != nil {
		return models.Verification{}, err
	}
	return s.VerificationRepo.GetByID(ctx, t.ID)
}

func (s *AdminService) GetStats(ctx context.Context) (models.AdminStats, error) {
	return s.StatsRepo.GetAdminStats(ctx)
}
