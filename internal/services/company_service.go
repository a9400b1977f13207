package services

import (
	"context"
	"errors"
	"strings"

	"mudanzasBack/internal/models"
	"mudanzasBack/internal/repositories"
)

type CompanyService struct {
	CompanyRepo      *repositories.CompanyRepository
	VerificationRepo *repositories.VerificationRepository
}

func (s *CompanyService) CreateCompany(ctx context.Context, c models.Company) (models.Company, error) {
	if strings.TrimSpace(c.Name) == "" {
		return models.Company{}, errors.New("company name is required")
	}
	return s.CompanyRepo.CreateCompany(ctx, c)
}

func (s *CompanyService) GetCompanyByID(ctx context.Context, id int) (models.Company, error) {
	return s.CompanyRepo.GetCompanyByID(ctx, id)
}

func (s *CompanyService) GetCompanyByUserID(ctx context.Context, userID int) (models.Company, error) {
	return s.CompanyRepo.GetCompanyByUserID(ctx, userID)
}

func (s *CompanyService) UpdateCompany(ctx context.Context, c models.Company, callerID int, callerRole string) (models.Company, error) {
	existing, err := s.CompanyRepo.GetCompanyByID(ctx, c.ID)
	if err != nil {
		return models.Company{}, err
	}
	if callerRole != models.RoleAdmin && existing.UserID != callerID {
		return models.Company{}, models.ErrForbidden
	}

	// Verification state and rating never come from the profile form.
	c.UserID = existing.UserID
	c.Verified = existing.Verified
	c.ReviewRating = existing.ReviewRating
	c.ReviewsCount = existing.ReviewsCount
	return s.CompanyRepo.UpdateCompany(ctx, c)
}

// AdvanceOnboarding bumps the wizard one step for the caller's company.
func (s *CompanyService) AdvanceOnboarding(ctx context.Context, userID int) (models.Company, error) {
	company, err := s.CompanyRepo.GetCompanyByUserID(ctx, userID)
	if err != nil {
		return models.Company{}, err
	}
	company.AdvanceOnboarding()
	return s.CompanyRepo.UpdateCompany(ctx, company)
}

// SetLogo stores the already-uploaded logo path on the profile.
func (s *CompanyService) SetLogo(ctx context.Context, userID int, logoPath string) (models.Company, error) {
	company, err := s.CompanyRepo.GetCompanyByUserID(ctx, userID)
	if err != nil {
		return models.Company{}, err
	}
	company.LogoPath = &logoPath
	return s.CompanyRepo.UpdateCompany(ctx, company)
}

// SubmitVerification queues a company document for admin review.
func (s *CompanyService) SubmitVerification(ctx context.Context, userID int, documentPath string) (models.Verification, error) {
	company, err := s.CompanyRepo.GetCompanyByUserID(ctx, userID)
	if err != nil {
		return models.Verification{}, err
	}
	return s.VerificationRepo.CreateVerification(ctx, models.Verification{
		CompanyID:    company.ID,
		DocumentPath: documentPath,
	})
}
