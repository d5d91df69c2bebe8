package upload

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"abuadfarms/config"
	domainerrors "abuadfarms/internal/domain/errors"
	"abuadfarms/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (service.ImageStore, string) {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Upload = &config.UploadConfig{Dir: dir, MaxSizeBytes: 1024}

	store, err := NewLocalStore(cfg)
	require.NoError(t, err)

	return store, dir
}

func TestLocalStore_SaveAndServeURL(t *testing.T) {
	store, dir := newTestStore(t)

	url, err := store.Save(context.Background(), &service.ImageUpload{
		Filename:    "Yam Photo.JPG",
		ContentType: "image/jpeg",
		Size:        11,
		Content:     strings.NewReader("fake-jpeg-1"),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	// The original filename never reaches the disk.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].Name(), "Yam")

	content, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, "fake-jpeg-1", string(content))
}

func TestLocalStore_RejectsBadType(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Save(context.Background(), &service.ImageUpload{
		Filename:    "malware.exe",
		ContentType: "application/octet-stream",
		Size:        4,
		Content:     strings.NewReader("boom"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrUploadBadType)

	// Image extension but mismatched content type is rejected too.
	_, err = store.Save(context.Background(), &service.ImageUpload{
		Filename:    "sneaky.png",
		ContentType: "text/html",
		Size:        4,
		Content:     strings.NewReader("boom"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrUploadBadType)
}

func TestLocalStore_RejectsOversize(t *testing.T) {
	store, dir := newTestStore(t)

	_, err := store.Save(context.Background(), &service.ImageUpload{
		Filename:    "big.png",
		ContentType: "image/png",
		Size:        4096,
		Content:     strings.NewReader(strings.Repeat("x", 4096)),
	})
	assert.ErrorIs(t, err, domainerrors.ErrUploadTooLarge)

	// A lying declared size is still caught while writing.
	_, err = store.Save(context.Background(), &service.ImageUpload{
		Filename:    "liar.png",
		ContentType: "image/png",
		Size:        10,
		Content:     strings.NewReader(strings.Repeat("x", 4096)),
	})
	assert.ErrorIs(t, err, domainerrors.ErrUploadTooLarge)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalStore_MissingFile(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Save(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrUploadMissingFile)
}
