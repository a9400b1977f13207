package models

import "time"

type Message struct {
	ID         int         `json:"id"`
	ChatID     int         `json:"chat_id"`
	SenderID   int         `json:"sender_id"`
	SenderRole string      `json:"sender_role"`
	Text       string      `json:"text"`
	Attachment *Attachment `json:"attachment,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

type Attachment struct {
	URL  string `json:"url"`
	Type string `json:"type"`
	Name string `json:"name"`
}
