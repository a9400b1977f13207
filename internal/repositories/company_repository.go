package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mudanzasBack/internal/models"
)

type CompanyRepository struct {
	DB *sql.DB
}

func (r *CompanyRepository) CreateCompany(ctx context.Context, c models.Company) (models.Company, error) {
	areas, err := json.Marshal(c.ServiceAreas)
	if err != nil {
		return models.Company{}, err
	}

	query := `
		INSERT INTO companies (user_id, name, cif, phone, description, service_areas, verified, onboarding_step, onboarding_completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, false, 0, false, ?)
	`
	now := time.Now()
	result, err := r.DB.ExecContext(ctx, query,
		c.UserID, c.Name, c.CIF, c.Phone, c.Description, areas, now,
	)
	if err != nil {
		return models.Company{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Company{}, err
	}
	c.ID = int(id)
	c.CreatedAt = now
	return c, nil
}

func (r *CompanyRepository) GetCompanyByID(ctx context.Context, id int) (models.Company, error) {
	return r.getCompany(ctx, `WHERE c.id = ?`, id)
}

func (r *CompanyRepository) GetCompanyByUserID(ctx context.Context, userID int) (models.Company, error) {
	return r.getCompany(ctx, `WHERE c.user_id = ?`, userID)
}

func (r *CompanyRepository) getCompany(ctx context.Context, where string, arg interface{}) (models.Company, error) {
	query := fmt.Sprintf(`
		SELECT c.id, c.user_id, c.name, c.cif, c.phone, c.description, c.logo_path,
		       c.service_areas, c.review_rating, c.reviews_count, c.verified,
		       c.onboarding_step, c.onboarding_completed, c.created_at, c.updated_at
		FROM companies c
		%s
	`, where)

	var c models.Company
	var areas []byte
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&c.ID, &c.UserID, &c.Name, &c.CIF, &c.Phone, &c.Description, &c.LogoPath,
		&areas, &c.ReviewRating, &c.ReviewsCount, &c.Verified,
		&c.OnboardingStep, &c.OnboardingCompleted, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Company{}, models.ErrCompanyNotFound
	}
	if err != nil {
		return models.Company{}, err
	}
	if len(areas) > 0 {
		if err := json.Unmarshal(areas, &c.ServiceAreas); err != nil {
			return models.Company{}, fmt.Errorf("decode service areas: %w", err)
		}
	}
	return c, nil
}

func (r *CompanyRepository) UpdateCompany(ctx context.Context, c models.Company) (models.Company, error) {
	areas, err := json.Marshal(c.ServiceAreas)
	if err != nil {
		return models.Company{}, err
	}

	query := `
		UPDATE companies
		SET name = ?, cif = ?, phone = ?, description = ?, logo_path = ?, service_areas = ?,
		    onboarding_step = ?, onboarding_completed = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := r.DB.ExecContext(ctx, query,
		c.Name, c.CIF, c.Phone, c.Description, c.LogoPath, areas,
		c.OnboardingStep, c.OnboardingCompleted, time.Now(), c.ID,
	)
	if err != nil {
		return models.Company{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Company{}, err
	}
	if rowsAffected == 0 {
		return models.Company{}, models.ErrCompanyNotFound
	}
	return r.GetCompanyByID(ctx, c.ID)
}

func (r *CompanyRepository) SetVerified(ctx context.Context, tx *sql.Tx, companyID int, verified bool) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE companies SET verified = ?, updated_at = ? WHERE id = ?`,
		verified, time.Now(), companyID,
	)
	return err
}
