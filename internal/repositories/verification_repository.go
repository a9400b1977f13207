package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"mudanzasBack/internal/models"
)

type VerificationRepository struct {
	DB          *sql.DB
	CompanyRepo *CompanyRepository
}

func (r *VerificationRepository) CreateVerification(ctx context.Context, v models.Verification) (models.Verification, error) {
	query := `
		INSERT INTO verifications (company_id, document_path, status, created_at)
		VALUES (?, ?, 'pending', ?)
	`
	now := time.Now()
	result, err := r.DB.ExecContext(ctx, query, v.CompanyID, v.DocumentPath, now)
	if err != nil {
		return models.Verification{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Verification{}, err
	}
	v.ID = int(id)
	v.Status = models.VerificationStatusPending
	v.CreatedAt = now
	return v, nil
}

func (r *VerificationRepository) GetByID(ctx context.Context, id int) (models.Verification, error) {
	query := `
		SELECT id, company_id, document_path, status, reviewed_by, reviewed_at, notes, created_at
		FROM verifications WHERE id = ?
	`
	var v models.Verification
	var notes sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&v.ID, &v.CompanyID, &v.DocumentPath, &v.Status,
		&v.ReviewedBy, &v.ReviewedAt, &notes, &v.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Verification{}, models.ErrVerificationNotFound
	}
	if err != nil {
		return models.Verification{}, err
	}
	v.Notes = notes.String
	return v, nil
}

func (r *VerificationRepository) GetVerifications(ctx context.Context, status string) ([]models.Verification, error) {
	query := `
		SELECT id, company_id, document_path, status, reviewed_by, reviewed_at, notes, created_at
		FROM verifications
	`
	var params []interface{}
	if status != "" {
		query += ` WHERE status = ?`
		params = append(params, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var verifications []models.Verification
	for rows.Next() {
		var v models.Verification
		var notes sql.NullString
		err := rows.Scan(
			&v.ID, &v.CompanyID, &v.DocumentPath, &v.Status,
			&v.ReviewedBy, &v.ReviewedAt, &notes, &v.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		v.Notes = notes.String
		verifications = append(verifications, v)
	}
	return verifications, rows.Err()
}

// Transition resolves a pending verification. Approval flips the company's
// verified flag inside the same transaction.
func (r *VerificationRepository) Transition(ctx context.Context, id int, status, notes string, reviewerID int) error {
	v, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE verifications
		SET status = ?, notes = ?, reviewed_by = ?, reviewed_at = ?
		WHERE id = ? AND status = 'pending'
	`, status, notes, reviewerID, time.Now(), id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrReviewClosed
	}

	if status == models.VerificationStatusApproved {
		if err := r.CompanyRepo.SetVerified(ctx, tx, v.CompanyID, true); err != nil {
			return err
		}
	}
	return tx.Commit()
}
