// Package blob defines the file-storage collaborator used by the upload
// route. The server only brokers uploads; where the bytes actually live
// is the store's concern.
package blob

import (
	"context"
	"io"
)

// Object describes a stored blob.
type Object struct {
	URL         string `json:"url"`
	Pathname    string `json:"pathname"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// Store persists uploaded files and hands back a public reference.
type Store interface {
	Put(ctx context.Context, filename, contentType string, body io.Reader) (*Object, error)
}
