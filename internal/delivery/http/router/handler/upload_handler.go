package handler

import (
	"log/slog"
	"net/http"

	"abuadfarms/internal/delivery/http/response"
	domainerrors "abuadfarms/internal/domain/errors"
	"abuadfarms/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UploadHandler holds dependencies for the product image upload handler.
type UploadHandler struct {
	store  service.ImageStore
	logger *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(store service.ImageStore, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		store:  store,
		logger: logger,
	}
}

// Upload handles the admin product image upload. The file arrives as the
// multipart field "image".
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return errors.WithStack(domainerrors.ErrUploadMissingFile)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	url, err := h.store.Save(c.Request().Context(), &service.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Content:     src,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("Product image uploaded", slog.String("url", url))

	return response.Success(c, http.StatusCreated, echo.Map{"url": url}, "Image uploaded")
}
