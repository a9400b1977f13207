package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"mudanzasBack/internal/models"
)

type RequestRepository struct {
	DB *sql.DB
}

func (r *RequestRepository) CreateRequest(ctx context.Context, req models.Request) (models.Request, error) {
	query := `
		INSERT INTO requests
			(customer_id, from_city, to_city, move_date, move_size, details, status,
			 admin_approved, auto_credit_cost, archived, lead_source, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, false, ?, false, ?, ?)
	`
	now := time.Now()
	result, err := r.DB.ExecContext(ctx, query,
		req.CustomerID, req.FromCity, req.ToCity, req.MoveDate, req.MoveSize,
		req.Details, req.Status, req.AutoCreditCost, req.LeadSource, now,
	)
	if err != nil {
		return models.Request{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Request{}, err
	}
	req.ID = int(id)
	req.CreatedAt = now
	return req, nil
}

func (r *RequestRepository) GetRequestByID(ctx context.Context, id int) (models.Request, error) {
	query := `
		SELECT r.id, r.customer_id, u.name, u.phone, u.email,
		       r.from_city, r.to_city, r.move_date, r.move_size, r.details, r.status,
		       r.admin_approved, r.auto_credit_cost, r.admin_credit_cost, r.archived,
		       r.lead_source, r.created_at, r.updated_at
		FROM requests r
		JOIN users u ON r.customer_id = u.id
		WHERE r.id = ?
	`

	var req models.Request
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&req.ID, &req.CustomerID, &req.Customer.Name, &req.Customer.Phone, &req.Customer.Email,
		&req.FromCity, &req.ToCity, &req.MoveDate, &req.MoveSize, &req.Details, &req.Status,
		&req.AdminApproved, &req.AutoCreditCost, &req.AdminCreditCost, &req.Archived,
		&req.LeadSource, &req.CreatedAt, &req.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Request{}, models.ErrRequestNotFound
	}
	if err != nil {
		return models.Request{}, err
	}
	return req, nil
}

// GetFeed returns one keyset page of feed-visible requests. The cursor is the
// last seen request id; 0 means the first page. One extra row is fetched to
// detect whether more pages remain.
func (r *RequestRepository) GetFeed(ctx context.Context, afterID, limit int, ascending bool) (models.RequestFeedPage, error) {
	direction := "DESC"
	comparison := "<"
	if ascending {
		direction = "ASC"
		comparison = ">"
	}

	var (
		params     []interface{}
		cursorCond string
	)
	if afterID > 0 {
		var cursorCreatedAt time.Time
		err := r.DB.QueryRowContext(ctx, `SELECT created_at FROM requests WHERE id = ?`, afterID).Scan(&cursorCreatedAt)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			// The cursor row was deleted since the last page. Fall back to
			// id order so the next page still resolves.
			cursorCond = fmt.Sprintf(`AND r.id %s ?`, comparison)
			params = append(params, afterID)
		case err != nil:
			return models.RequestFeedPage{}, err
		default:
			cursorCond = fmt.Sprintf(`AND (r.created_at, r.id) %s (?, ?)`, comparison)
			params = append(params, cursorCreatedAt, afterID)
		}
	}
	params = append(params, limit+1)

	query := fmt.Sprintf(`
		SELECT r.id, r.customer_id, u.name, r.from_city, r.to_city, r.move_date, r.move_size,
		       r.details, r.status, r.admin_approved, r.auto_credit_cost, r.admin_credit_cost,
		       r.archived, r.created_at, r.updated_at,
		       (SELECT COUNT(*) FROM offers o WHERE o.request_id = r.id) AS offers_count
		FROM requests r
		JOIN users u ON r.customer_id = u.id
		WHERE (r.status = 'active' OR r.status = '') AND r.archived = false
		%s
		ORDER BY r.created_at %s, r.id %s
		LIMIT ?
	`, cursorCond, direction, direction)

	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return models.RequestFeedPage{}, err
	}
	defer rows.Close()

	var requests []models.Request
	for rows.Next() {
		var req models.Request
		err := rows.Scan(
			&req.ID, &req.CustomerID, &req.Customer.Name, &req.FromCity, &req.ToCity,
			&req.MoveDate, &req.MoveSize, &req.Details, &req.Status, &req.AdminApproved,
			&req.AutoCreditCost, &req.AdminCreditCost, &req.Archived,
			&req.CreatedAt, &req.UpdatedAt, &req.OffersCount,
		)
		if err != nil {
			return models.RequestFeedPage{}, err
		}
		requests = append(requests, req)
	}
	if err = rows.Err(); err != nil {
		return models.RequestFeedPage{}, err
	}
	return trimFeedPage(requests, limit), nil
}

// trimFeedPage drops the extra overfetched row and derives the next cursor
// from the last row kept.
func trimFeedPage(requests []models.Request, limit int) models.RequestFeedPage {
	page := models.RequestFeedPage{Requests: requests}
	if len(requests) > limit {
		page.Requests = requests[:limit]
		page.HasMore = true
		page.NextCursor = page.Requests[limit-1].ID
	}
	return page
}

// GetOpenRequests is the elevated one-shot query used by clients whose feed
// subscription was denied. Same filter as the feed, no cursor.
func (r *RequestRepository) GetOpenRequests(ctx context.Context, limit int) ([]models.Request, error) {
	query := `
		SELECT r.id, r.customer_id, u.name, r.from_city, r.to_city, r.move_date, r.move_size,
		       r.details, r.status, r.admin_approved, r.auto_credit_cost, r.admin_credit_cost,
		       r.archived, r.created_at, r.updated_at
		FROM requests r
		JOIN users u ON r.customer_id = u.id
		WHERE (r.status = 'active' OR r.status = '') AND r.archived = false
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT ?
	`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []models.Request
	for rows.Next() {
		var req models.Request
		err := rows.Scan(
			&req.ID, &req.CustomerID, &req.Customer.Name, &req.FromCity, &req.ToCity,
			&req.MoveDate, &req.MoveSize, &req.Details, &req.Status, &req.AdminApproved,
			&req.AutoCreditCost, &req.AdminCreditCost, &req.Archived,
			&req.CreatedAt, &req.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *RequestRepository) UpdateRequest(ctx context.Context, req models.Request) (models.Request, error) {
	query := `
		UPDATE requests
		SET from_city = ?, to_city = ?, move_date = ?, move_size = ?, details = ?,
		    status = ?, archived = ?, updated_at = ?
		WHERE id = ?
	`
	updatedAt := time.Now()
	result, err := r.DB.ExecContext(ctx, query,
		req.FromCity, req.ToCity, req.MoveDate, req.MoveSize, req.Details,
		req.Status, req.Archived, updatedAt, req.ID,
	)
	if err != nil {
		return models.Request{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Request{}, err
	}
	if rowsAffected == 0 {
		return models.Request{}, models.ErrRequestNotFound
	}
	return r.GetRequestByID(ctx, req.ID)
}

func (r *RequestRepository) DeleteRequest(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM requests WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrRequestNotFound
	}
	return nil
}

// ApproveRequest marks a request approved, optionally recording a manual
// credit cost. The auto-calculated cost column is left untouched so the cost
// origin stays traceable, and a nil override keeps whatever manual cost a
// previous approval stored.
func (r *RequestRepository) ApproveRequest(ctx context.Context, id int, adminCreditCost *int) error {
	query := `UPDATE requests SET admin_approved = true, admin_credit_cost = COALESCE(?, admin_credit_cost), updated_at = ? WHERE id = ?`
	result, err := r.DB.ExecContext(ctx, query, adminCreditCost, time.Now(), id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrRequestNotFound
	}
	return nil
}

// ArchiveStale archives active requests whose move date passed the cutoff.
func (r *RequestRepository) ArchiveStale(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE requests
		SET archived = true, updated_at = ?
		WHERE archived = false AND move_date IS NOT NULL AND move_date < ?
	`, time.Now(), cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
