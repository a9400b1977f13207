package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"mudanzasBack/internal/models"
)

type UnlockRepository struct {
	DB *sql.DB
}

// CreateUnlock records the one-way unlock. Re-unlocking the same pair is a
// no-op returning the existing record.
func (r *UnlockRepository) CreateUnlock(ctx context.Context, unlock models.Unlock) (models.Unlock, error) {
	existing, err := r.GetUnlock(ctx, unlock.CompanyID, unlock.RequestID)
	if err != nil {
		return models.Unlock{}, err
	}
	if existing.ID != 0 {
		return existing, nil
	}

	query := `INSERT INTO unlocks (company_id, request_id, cost, created_at) VALUES (?, ?, ?, ?)`
	now := time.Now()
	result, err := r.DB.ExecContext(ctx, query, unlock.CompanyID, unlock.RequestID, unlock.Cost, now)
	if err != nil {
		if isDuplicateEntry(err) {
			return r.GetUnlock(ctx, unlock.CompanyID, unlock.RequestID)
		}
		return models.Unlock{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Unlock{}, err
	}
	unlock.ID = int(id)
	unlock.CreatedAt = now
	return unlock, nil
}

func (r *UnlockRepository) GetUnlock(ctx context.Context, companyID, requestID int) (models.Unlock, error) {
	query := `SELECT id, company_id, request_id, cost, created_at FROM unlocks WHERE company_id = ? AND request_id = ?`

	var unlock models.Unlock
	err := r.DB.QueryRowContext(ctx, query, companyID, requestID).Scan(
		&unlock.ID, &unlock.CompanyID, &unlock.RequestID, &unlock.Cost, &unlock.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Unlock{}, nil
	}
	if err != nil {
		return models.Unlock{}, err
	}
	return unlock, nil
}

// IsUnlocked reports whether an unlock record exists for the pair.
func (r *UnlockRepository) IsUnlocked(ctx context.Context, companyID, requestID int) (bool, error) {
	unlock, err := r.GetUnlock(ctx, companyID, requestID)
	if err != nil {
		return false, err
	}
	return unlock.ID != 0, nil
}

func (r *UnlockRepository) GetByCompanyID(ctx context.Context, companyID int) ([]models.Unlock, error) {
	query := `SELECT id, company_id, request_id, cost, created_at FROM unlocks WHERE company_id = ? ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var unlocks []models.Unlock
	for rows.Next() {
		var unlock models.Unlock
		if err := rows.Scan(&unlock.ID, &unlock.CompanyID, &unlock.RequestID, &unlock.Cost, &unlock.CreatedAt); err != nil {
			return nil, err
		}
		unlocks = append(unlocks, unlock)
	}
	return unlocks, rows.Err()
}
