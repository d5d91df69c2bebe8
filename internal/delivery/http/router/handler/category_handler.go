package handler

import (
	"log/slog"
	"net/http"

	"abuadfarms/internal/delivery/http/response"
	"abuadfarms/internal/domain/entity"
	"abuadfarms/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CategoryHandler holds dependencies for category handlers.
type CategoryHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the category aggregation request. The default response is the
// label list with the "Others" bucket always present and first; with
// counts=true|1 each category carries its product count instead.
func (h *CategoryHandler) List(c echo.Context) error {
	counts, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	if wantCounts := c.QueryParam("counts"); wantCounts == "true" || wantCounts == "1" {
		return response.Success(c, http.StatusOK, counts, "")
	}

	labels := make([]string, 0, len(counts)+1)
	hasOthers := false
	for _, count := range counts {
		if count.Category == entity.CategoryOthers {
			hasOthers = true
		}
		labels = append(labels, count.Category)
	}
	// The storefront always offers the uncategorized bucket, even before any
	// product lands in it.
	if !hasOthers {
		labels = append([]string{entity.CategoryOthers}, labels...)
	}

	return response.Success(c, http.StatusOK, labels, "")
}

// Rename handles the admin bulk category re-label request.
func (h *CategoryHandler) Rename(c echo.Context) error {
	var input usecase.RenameCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RenameCategory(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{"updated": output.Updated}, "Category renamed")
}

// Delete handles the admin category dissolution request.
func (h *CategoryHandler) Delete(c echo.Context) error {
	var input usecase.DeleteCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.DeleteCategory(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{"updated": output.Updated}, "Category deleted")
}
