package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Vote is a user's up/down rating of a message. Votes are keyed by the
// (chatId, messageId) pair: exactly one row per message per chat, updated
// in place when the user re-votes.
type Vote struct {
	ChatID    string `json:"chatId"`
	MessageID string `json:"messageId"`
	IsUpvoted bool   `json:"isUpvoted"`
}

func (v Vote) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.ChatID, validation.Required),
		validation.Field(&v.MessageID, validation.Required),
	)
}
