// Package upload stores product images on the local filesystem.
package upload

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"abuadfarms/config"
	domainerrors "abuadfarms/internal/domain/errors"
	"abuadfarms/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// allowedExtensions maps accepted file extensions to the canonical form
// written to disk.
var allowedExtensions = map[string]string{
	".jpg":  ".jpg",
	".jpeg": ".jpg",
	".png":  ".png",
	".webp": ".webp",
}

var allowedContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

// localStore writes uploads under a single directory and serves them back
// as /uploads/<name> URLs.
type localStore struct {
	dir     string
	baseURL string
	maxSize int64
}

// NewLocalStore is the constructor for localStore. It creates the upload
// directory if it does not exist yet.
func NewLocalStore(cfg *config.Config) (service.ImageStore, error) {
	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create upload directory")
	}

	return &localStore{
		dir:     cfg.Upload.Dir,
		baseURL: strings.TrimSuffix(cfg.Upload.BaseURL, "/"),
		maxSize: cfg.Upload.MaxSizeBytes,
	}, nil
}

// Save validates and writes the upload, returning its public URL.
func (s *localStore) Save(_ context.Context, upload *service.ImageUpload) (string, error) {
	if upload == nil || upload.Content == nil {
		return "", domainerrors.ErrUploadMissingFile
	}
	if upload.Size > s.maxSize {
		return "", domainerrors.ErrUploadTooLarge.WithDetails(
			fmt.Sprintf("file is %d bytes, limit is %d", upload.Size, s.maxSize))
	}

	ext, err := s.resolveExtension(upload)
	if err != nil {
		return "", err
	}

	// Unique name so concurrent uploads of the same file never collide;
	// the original filename is discarded entirely.
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.New().String(), ext)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", errors.Wrap(err, "failed to create upload file")
	}
	defer dst.Close()

	// LimitReader guards against clients lying about the declared size.
	written, err := io.Copy(dst, io.LimitReader(upload.Content, s.maxSize+1))
	if err != nil {
		return "", errors.Wrap(err, "failed to write upload file")
	}
	if written > s.maxSize {
		_ = os.Remove(filepath.Join(s.dir, name))

		return "", domainerrors.ErrUploadTooLarge
	}

	return s.baseURL + path.Join("/uploads", name), nil
}

func (s *localStore) resolveExtension(upload *service.ImageUpload) (string, error) {
	ext, ok := allowedExtensions[strings.ToLower(filepath.Ext(upload.Filename))]
	if !ok {
		return "", domainerrors.ErrUploadBadType.WithDetails("unsupported extension " + filepath.Ext(upload.Filename))
	}

	if upload.ContentType != "" {
		mediaType := strings.TrimSpace(strings.Split(upload.ContentType, ";")[0])
		if _, ok := allowedContentTypes[strings.ToLower(mediaType)]; !ok {
			return "", domainerrors.ErrUploadBadType.WithDetails("unsupported content type " + mediaType)
		}
	}

	return ext, nil
}
