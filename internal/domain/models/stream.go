package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Stream records a resumable-stream session identifier for a chat.
// Rows are created per streaming session and deleted en masse with the
// chat; no stream transport lives in this layer.
type Stream struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chatId"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewStream builds a stream row with createdAt = now.
func NewStream(id, chatID string) *Stream {
	return &Stream{
		ID:        id,
		ChatID:    chatID,
		CreatedAt: time.Now().UTC(),
	}
}

// Validate enforces required fields; stream ids are UUIDs minted by the
// chat route.
func (s Stream) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.ID, validation.Required, is.UUID),
		validation.Field(&s.ChatID, validation.Required),
	)
}
