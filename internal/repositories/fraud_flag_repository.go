package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"mudanzasBack/internal/models"
)

type FraudFlagRepository struct {
	DB *sql.DB
}

func (r *FraudFlagRepository) CreateFlag(ctx context.Context, flag models.FraudFlag) (models.FraudFlag, error) {
	query := `
		INSERT INTO fraud_flags (request_id, reason, severity, status, created_at)
		VALUES (?, ?, ?, 'pending', ?)
	`
	now := time.Now()
	result, err := r.DB.ExecContext(ctx, query, flag.RequestID, flag.Reason, flag.Severity, now)
	if err != nil {
		return models.FraudFlag{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.FraudFlag{}, err
	}
	flag.ID = int(id)
	flag.Status = models.FlagStatusPending
	flag.CreatedAt = now
	return flag, nil
}

func (r *FraudFlagRepository) GetByID(ctx context.Context, id int) (models.FraudFlag, error) {
	query := `
		SELECT id, request_id, reason, severity, status, reviewed_by, reviewed_at, notes, created_at
		FROM fraud_flags WHERE id = ?
	`
	var flag models.FraudFlag
	var notes sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&flag.ID, &flag.RequestID, &flag.Reason, &flag.Severity, &flag.Status,
		&flag.ReviewedBy, &flag.ReviewedAt, &notes, &flag.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.FraudFlag{}, models.ErrFlagNotFound
	}
	if err != nil {
		return models.FraudFlag{}, err
	}
	flag.Notes = notes.String
	return flag, nil
}

// GetFlags lists flags filtered by status and/or severity; empty filters
// match everything.
func (r *FraudFlagRepository) GetFlags(ctx context.Context, status, severity string) ([]models.FraudFlag, error) {
	query := `
		SELECT id, request_id, reason, severity, status, reviewed_by, reviewed_at, notes, created_at
		FROM fraud_flags
		WHERE 1=1
	`
	var params []interface{}
	if status != "" {
		query += ` AND status = ?`
		params = append(params, status)
	}
	if severity != "" {
		query += ` AND severity = ?`
		params = append(params, severity)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var flags []models.FraudFlag
	for rows.Next() {
		var flag models.FraudFlag
		var notes sql.NullString
		err := rows.Scan(
			&flag.ID, &flag.RequestID, &flag.Reason, &flag.Severity, &flag.Status,
			&flag.ReviewedBy, &flag.ReviewedAt, &notes, &flag.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		flag.Notes = notes.String
		flags = append(flags, flag)
	}
	return flags, rows.Err()
}

// Transition moves a pending flag to a terminal status, recording the
// reviewer. Terminal states are absorbing: the WHERE clause refuses any row
// that already left pending.
func (r *FraudFlagRepository) Transition(ctx context.Context, id int, status, notes string, reviewerID int) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE fraud_flags
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
	return nil
}
