package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"mudanzasBack/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `
		INSERT INTO users (name, phone, email, password, city, role, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	now := time.Now()
	result, err := r.DB.ExecContext(ctx, query,
		user.Name, user.Phone, user.Email, user.Password, user.City, user.Role, now,
	)
	if err != nil {
		return models.User{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	user.ID = int(id)
	user.CreatedAt = now
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	query := `SELECT id, name, phone, email, password, city, role, avatar_path, created_at, updated_at FROM users WHERE id = ?`

	var user models.User
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Phone, &user.Email, &user.Password,
		&user.City, &user.Role, &user.AvatarPath, &user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetUserByPhone(ctx context.Context, phone string) (models.User, error) {
	query := `SELECT id, name, phone, email, password, city, role, created_at FROM users WHERE phone = ?`

	var user models.User
	err := r.DB.QueryRowContext(ctx, query, phone).Scan(
		&user.ID, &user.Name, &user.Phone, &user.Email, &user.Password,
		&user.City, &user.Role, &user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, nil
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	query := `SELECT id, name, phone, email, password, city, role, created_at FROM users WHERE email = ?`

	var user models.User
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Phone, &user.Email, &user.Password,
		&user.City, &user.Role, &user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, nil
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `
		UPDATE users
		SET name = ?, phone = ?, email = ?, city = ?, avatar_path = ?, updated_at = ?
		WHERE id = ?
	`
	updatedAt := time.Now()
	result, err := r.DB.ExecContext(ctx, query,
		user.Name, user.Phone, user.Email, user.City, user.AvatarPath, updatedAt, user.ID,
	)
	if err != nil {
		return models.User{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.User{}, err
	}
	if rowsAffected == 0 {
		return models.User{}, models.ErrUserNotFound
	}
	return r.GetUserByID(ctx, user.ID)
}

// UpdateAvatarPath stores the uploaded avatar location without touching the
// rest of the profile row.
func (r *UserRepository) UpdateAvatarPath(ctx context.Context, userID int, path string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE users SET avatar_path = ?, updated_at = ? WHERE id = ?`,
		path, time.Now(), userID,
	)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) SetSession(ctx context.Context, userID int, session models.Session) error {
	query := `
		UPDATE users
		SET refresh_token = ?, expires_at = ?
		WHERE id = ?
	`
	result, err := r.DB.ExecContext(ctx, query, session.RefreshToken, session.ExpiresAt, userID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return errors.New("no rows updated")
	}
	return nil
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	query := `SELECT id, role, refresh_token, expires_at FROM users WHERE refresh_token = ?`

	var session models.Session
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(
		&session.UserID, &session.Role, &session.RefreshToken, &session.ExpiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, nil
	}
	if err != nil {
		return models.Session{}, err
	}
	return session, nil
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, userID int, hash string) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE users SET password = ?, updated_at = ? WHERE id = ?`, hash, time.Now(), userID)
	return err
}

func (r *UserRepository) UserLogOut(ctx context.Context, userID int) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE users SET refresh_token = NULL, expires_at = NULL WHERE id = ?`, userID)
	return err
}
