package repositories

import (
	"context"
	"database/sql"
	"errors"

	"mudanzasBack/internal/models"
)

type ChatRepository struct {
	Db *sql.DB
}

// GetOrCreateChat returns the thread bound to a request/offer pair, creating
// it on first use. Concurrent creation races are resolved by re-reading.
func (r *ChatRepository) GetOrCreateChat(ctx context.Context, chat models.Chat) (int, error) {
	var chatID int
	err := r.Db.QueryRowContext(ctx,
		`SELECT id FROM chats WHERE request_id = ? AND offer_id = ? LIMIT 1`,
		chat.RequestID, chat.OfferID,
	).Scan(&chatID)
	if err == nil {
		return chatID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	res, err := r.Db.ExecContext(ctx,
		`INSERT INTO chats (request_id, offer_id, customer_id, company_id) VALUES (?, ?, ?, ?)`,
		chat.RequestID, chat.OfferID, chat.CustomerID, chat.CompanyID,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return r.GetOrCreateChat(ctx, chat)
		}
		return 0, err
	}
	newID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(newID), nil
}

func (r *ChatRepository) GetChatByID(ctx context.Context, id int) (models.Chat, error) {
	query := `SELECT id, request_id, offer_id, customer_id, company_id, created_at FROM chats WHERE id = ?`

	var chat models.Chat
	err := r.Db.QueryRowContext(ctx, query, id).Scan(
		&chat.ID, &chat.RequestID, &chat.OfferID, &chat.CustomerID, &chat.CompanyID, &chat.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Chat{}, models.ErrChatNotFound
	}
	if err != nil {
		return models.Chat{}, err
	}
	return chat, nil
}

// GetChatsByUserID lists a user's threads newest-activity first, each with
// its latest message attached.
func (r *ChatRepository) GetChatsByUserID(ctx context.Context, userID int) ([]models.Chat, error) {
	query := `
		WITH last_messages AS (
			SELECT m.chat_id, m.text, m.created_at
			FROM messages m
			JOIN (
				SELECT chat_id, MAX(created_at) AS max_created
				FROM messages
				GROUP BY chat_id
			) t ON t.chat_id = m.chat_id AND t.max_created = m.created_at
		)
		SELECT c.id, c.request_id, c.offer_id, c.customer_id, c.company_id, c.created_at,
		       COALESCE(lm.text, '') AS last_message,
		       COALESCE(lm.created_at, c.created_at) AS last_message_at
		FROM chats c
		LEFT JOIN last_messages lm ON lm.chat_id = c.id
		WHERE c.customer_id = ? OR c.company_id = ?
		ORDER BY last_message_at DESC
	`

	rows, err := r.Db.QueryContext(ctx, query, userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chats []models.Chat
	for rows.Next() {
		var chat models.Chat
		var lastMessageAt sql.NullTime
		err := rows.Scan(
			&chat.ID, &chat.RequestID, &chat.OfferID, &chat.CustomerID, &chat.CompanyID,
			&chat.CreatedAt, &chat.LastMessage, &lastMessageAt,
		)
		if err != nil {
			return nil, err
		}
		if lastMessageAt.Valid {
			t := lastMessageAt.Time
			chat.LastMessageAt = &t
		}
		chats = append(chats, chat)
	}
	return chats, rows.Err()
}
