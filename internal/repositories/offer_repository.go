package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"mudanzasBack/internal/models"
)

type OfferRepository struct {
	DB *sql.DB
}

// CreateOffer inserts a pending offer. A company gets at most one offer per
// request: the count pre-check catches the common case, the UNIQUE key on
// (request_id, company_id) closes the race between concurrent submissions.
func (r *OfferRepository) CreateOffer(ctx context.Context, offer models.Offer) (models.Offer, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM offers WHERE request_id = ? AND company_id = ?`,
		offer.RequestID, offer.CompanyID,
	).Scan(&count); err != nil {
		return models.Offer{}, err
	}
	if count > 0 {
		return models.Offer{}, models.ErrAlreadyOffered
	}

	query := `
		INSERT INTO offers (request_id, company_id, company_name, price, message, proposed_date, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, 'pending', ?)
	`
	now := time.Now()
	result, err := r.DB.ExecContext(ctx, query,
		offer.RequestID, offer.CompanyID, offer.CompanyName,
		offer.Price, offer.Message, offer.ProposedDate, now,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return models.Offer{}, models.ErrAlreadyOffered
		}
		return models.Offer{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Offer{}, err
	}
	offer.ID = int(id)
	offer.Status = models.OfferStatusPending
	offer.CreatedAt = now
	return offer, nil
}

func (r *OfferRepository) GetByID(ctx context.Context, id int) (models.Offer, error) {
	query := `
		SELECT id, request_id, company_id, company_name, price, message, proposed_date, status, created_at, updated_at
		FROM offers WHERE id = ?
	`
	var offer models.Offer
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&offer.ID, &offer.RequestID, &offer.CompanyID, &offer.CompanyName,
		&offer.Price, &offer.Message, &offer.ProposedDate, &offer.Status,
		&offer.CreatedAt, &offer.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Offer{}, models.ErrOfferNotFound
	}
	if err != nil {
		return models.Offer{}, err
	}
	offer.Status = models.NormalizeOfferStatus(offer.Status)
	return offer, nil
}

// GetByRequestID lists a request's offers newest first. companyID > 0
// restricts the list to that company's own offers.
func (r *OfferRepository) GetByRequestID(ctx context.Context, requestID, companyID int) ([]models.Offer, error) {
	query := `
		SELECT id, request_id, company_id, company_name, price, message, proposed_date, status, created_at, updated_at
		FROM offers
		WHERE request_id = ?
	`
	params := []interface{}{requestID}
	if companyID > 0 {
		query += ` AND company_id = ?`
		params = append(params, companyID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []models.Offer
	for rows.Next() {
		var offer models.Offer
		err := rows.Scan(
			&offer.ID, &offer.RequestID, &offer.CompanyID, &offer.CompanyName,
			&offer.Price, &offer.Message, &offer.ProposedDate, &offer.Status,
			&offer.CreatedAt, &offer.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		offer.Status = models.NormalizeOfferStatus(offer.Status)
		offers = append(offers, offer)
	}
	return offers, rows.Err()
}

func (r *OfferRepository) GetByCompanyID(ctx context.Context, companyID int) ([]models.Offer, error) {
	query := `
		SELECT id, request_id, company_id, company_name, price, message, proposed_date, status, created_at, updated_at
		FROM offers
		WHERE company_id = ?
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []models.Offer
	for rows.Next() {
		var offer models.Offer
		err := rows.Scan(
			&offer.ID, &offer.RequestID, &offer.CompanyID, &offer.CompanyName,
			&offer.Price, &offer.Message, &offer.ProposedDate, &offer.Status,
			&offer.CreatedAt, &offer.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		offer.Status = models.NormalizeOfferStatus(offer.Status)
		offers = append(offers, offer)
	}
	return offers, rows.Err()
}

func (r *OfferRepository) UpdateOffer(ctx context.Context, id int, upd models.OfferUpdate) (models.Offer, error) {
	query := `
		UPDATE offers
		SET price = ?, message = ?, proposed_date = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := r.DB.ExecContext(ctx, query, upd.Price, upd.Message, upd.ProposedDate, time.Now(), id)
	if err != nil {
		return models.Offer{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Offer{}, err
	}
	if rowsAffected == 0 {
		return models.Offer{}, models.ErrOfferNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *OfferRepository) DeleteOffer(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM offers WHERE id = ?`, id)
	return err
}

// Accept marks one pending offer accepted and declines the request's other
// pending offers in the same transaction, closing the request.
func (r *OfferRepository) Accept(ctx context.Context, requestID, offerID int) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	result, err := tx.ExecContext(ctx,
		`UPDATE offers SET status = 'accepted', updated_at = ? WHERE id = ? AND request_id = ? AND status = 'pending'`,
		now, offerID, requestID,
	)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrOfferNotPending
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE offers SET status = 'declined', updated_at = ? WHERE request_id = ? AND id <> ? AND status = 'pending'`,
		now, requestID, offerID,
	)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `UPDATE requests SET status = 'closed', updated_at = ? WHERE id = ?`, now, requestID)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (r *OfferRepository) Decline(ctx context.Context, offerID int) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE offers SET status = 'declined', updated_at = ? WHERE id = ? AND status = 'pending'`,
		time.Now(), offerID,
	)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrOfferNotPending
	}
	return nil
}
