package repositories

import (
	"context"
	"database/sql"
	"time"

	"mudanzasBack/internal/models"
)

type MessageRepository struct {
	Db *sql.DB
}

func (r *MessageRepository) CreateMessage(ctx context.Context, message models.Message) (models.Message, error) {
	var attachmentURL, attachmentType, attachmentName sql.NullString
	if message.Attachment != nil {
		attachmentURL = sql.NullString{String: message.Attachment.URL, Valid: true}
		attachmentType = sql.NullString{String: message.Attachment.Type, Valid: true}
		attachmentName = sql.NullString{String: message.Attachment.Name, Valid: true}
	}

	query := `
		INSERT INTO messages (chat_id, sender_id, sender_role, text, attachment_url, attachment_type, attachment_name, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	now := time.Now()
	result, err := r.Db.ExecContext(ctx, query,
		message.ChatID, message.SenderID, message.SenderRole, message.Text,
		attachmentURL, attachmentType, attachmentName, now,
	)
	if err != nil {
		return models.Message{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Message{}, err
	}
	message.ID = int(id)
	message.CreatedAt = now
	return message, nil
}

// GetMessagesForChat returns the most recent `limit` messages of a chat in
// ascending creation order.
func (r *MessageRepository) GetMessagesForChat(ctx context.Context, chatID, limit int) ([]models.Message, error) {
	query := `
		SELECT id, chat_id, sender_id, sender_role, text, attachment_url, attachment_type, attachment_name, created_at
		FROM (
			SELECT * FROM messages WHERE chat_id = ? ORDER BY created_at DESC, id DESC LIMIT ?
		) recent
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.Db.QueryContext(ctx, query, chatID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var message models.Message
		var attachmentURL, attachmentType, attachmentName sql.NullString
		err := rows.Scan(
			&message.ID, &message.ChatID, &message.SenderID, &message.SenderRole, &message.Text,
			&attachmentURL, &attachmentType, &attachmentName, &message.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if attachmentURL.Valid {
			message.Attachment = &models.Attachment{
				URL:  attachmentURL.String,
				Type: attachmentType.String,
				Name: attachmentName.String,
			}
		}
		messages = append(messages, message)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}
