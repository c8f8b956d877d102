package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"parley/internal/config"
)

// Visibility controls who can view a chat.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// Chat represents a chat session owned by a user.
// IDs are opaque strings generated by the front end; id is globally unique.
type Chat struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	UserID     string     `json:"userId"`
	Visibility Visibility `json:"visibility"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// NewChat builds a chat with defaults applied (private visibility,
// createdAt = now when unset).
func NewChat(id, userID, title string, visibility Visibility) *Chat {
	if visibility == "" {
		visibility = VisibilityPrivate
	}
	return &Chat{
		ID:         id,
		Title:      title,
		UserID:     userID,
		Visibility: visibility,
		CreatedAt:  time.Now().UTC(),
	}
}

// Validate enforces required fields and visibility enum membership.
func (c Chat) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ID, validation.Required),
		validation.Field(&c.Title, validation.Required,
			validation.Length(1, config.MaxChatTitleLength)),
		validation.Field(&c.UserID, validation.Required),
		validation.Field(&c.Visibility, validation.Required,
			validation.In(VisibilityPublic, VisibilityPrivate)),
	)
}

// ChatPage is one page of a user's chat history, newest first.
type ChatPage struct {
	Chats   []Chat `json:"chats"`
	HasMore bool   `json:"hasMore"`
}
