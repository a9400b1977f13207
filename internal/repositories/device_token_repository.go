package repositories

import (
	"context"
	"database/sql"
	"errors"

	"mudanzasBack/internal/models"
)

type DeviceTokenRepository struct {
	DB *sql.DB
}

func (r *DeviceTokenRepository) SaveToken(ctx context.Context, t models.DeviceToken) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO device_tokens (user_id, token)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE token = VALUES(token)
	`, t.UserID, t.Token)
	return err
}

func (r *DeviceTokenRepository) GetTokenByUserID(ctx context.Context, userID int) (string, error) {
	var token string
	err := r.DB.QueryRowContext(ctx, `SELECT token FROM device_tokens WHERE user_id = ?`, userID).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return token, err
}

func (r *DeviceTokenRepository) DeleteToken(ctx context.Context, userID int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM device_tokens WHERE user_id = ?`, userID)
	return err
}
