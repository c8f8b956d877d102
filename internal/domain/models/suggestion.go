package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Suggestion is a proposed edit against a specific document version,
// addressed by (documentId, documentCreatedAt).
type Suggestion struct {
	ID                string    `json:"id"`
	DocumentID        string    `json:"documentId"`
	DocumentCreatedAt time.Time `json:"documentCreatedAt"`
	OriginalText      string    `json:"originalText"`
	SuggestedText     string    `json:"suggestedText"`
	Description       string    `json:"description,omitempty"`
	IsResolved        bool      `json:"isResolved"`
	UserID            string    `json:"userId"`
	CreatedAt         time.Time `json:"createdAt"`
}

func (s Suggestion) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.ID, validation.Required),
		validation.Field(&s.DocumentID, validation.Required),
		validation.Field(&s.DocumentCreatedAt, validation.Required),
		validation.Field(&s.OriginalText, validation.Required),
		validation.Field(&s.SuggestedText, validation.Required),
		validation.Field(&s.UserID, validation.Required),
	)
}
