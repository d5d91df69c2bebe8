package service

import (
	"context"
	"io"
)

// ImageUpload carries one uploaded image from the delivery layer to the
// store. Content is read at most once.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// ImageStore persists uploaded product images and returns the public URL
// they will be served from.
type ImageStore interface {
	// Save validates and writes the upload, returning its public URL.
	Save(ctx context.Context, upload *ImageUpload) (string, error)
}
