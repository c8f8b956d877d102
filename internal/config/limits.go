package config

const (
	// MaxChatTitleLength is the maximum length for chat titles.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255) and provide
	// reasonable UX (titles should be short and descriptive).
	MaxChatTitleLength = 255

	// MaxDocumentTitleLength is the maximum length for document titles.
	// Same limit as chat titles for consistency.
	MaxDocumentTitleLength = 255

	// MaxRequestBodyBytes caps JSON request bodies.
	MaxRequestBodyBytes = 1 << 20
)
