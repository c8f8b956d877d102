package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"parley/internal/config"
)

// DocumentKind is the artifact type of a document.
type DocumentKind string

const (
	DocumentKindText  DocumentKind = "text"
	DocumentKindCode  DocumentKind = "code"
	DocumentKindImage DocumentKind = "image"
	DocumentKindSheet DocumentKind = "sheet"
)

// Document is one version of a logical document. Versions share the
// document's id and are distinguished by createdAt; (id, createdAt) is
// unique while id alone is not. Rows are append-only.
type Document struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content,omitempty"`
	Kind      DocumentKind `json:"kind"`
	UserID    string       `json:"userId"`
	CreatedAt time.Time    `json:"createdAt"`
}

// NewDocument builds a document version with defaults applied (text kind,
// createdAt = now).
func NewDocument(id, title, content, userID string, kind DocumentKind) *Document {
	if kind == "" {
		kind = DocumentKindText
	}
	return &Document{
		ID:        id,
		Title:     title,
		Content:   content,
		Kind:      kind,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
}

// Validate enforces required fields and kind enum membership. Content is
// optional (image documents store a reference elsewhere).
func (d Document) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.ID, validation.Required),
		validation.Field(&d.Title, validation.Required,
			validation.Length(1, config.MaxDocumentTitleLength)),
		validation.Field(&d.UserID, validation.Required),
		validation.Field(&d.Kind, validation.Required,
			validation.In(DocumentKindText, DocumentKindCode, DocumentKindImage, DocumentKindSheet)),
	)
}
