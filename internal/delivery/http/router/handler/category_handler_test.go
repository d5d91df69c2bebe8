package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"abuadfarms/internal/domain/entity"
	"abuadfarms/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubCatalogUsecase serves canned category aggregates; only ListCategories
// is exercised here.
type stubCatalogUsecase struct {
	usecase.CatalogUsecase

	counts []*entity.CategoryCount
}

func (s *stubCatalogUsecase) ListCategories(_ context.Context) ([]*entity.CategoryCount, error) {
	return s.counts, nil
}

func listCategories(t *testing.T, counts []*entity.CategoryCount, target string) json.RawMessage {
	t.Helper()

	handler := NewCategoryHandler(&stubCatalogUsecase{counts: counts}, discardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.List(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope.Data
}

func TestCategoryHandler_List_DefaultsToLabels(t *testing.T) {
	data := listCategories(t, []*entity.CategoryCount{
		{Category: entity.CategoryOthers, Count: 2},
		{Category: "Tubers", Count: 3},
		{Category: "Vegetables", Count: 1},
	}, "/api/categories")

	var labels []string
	require.NoError(t, json.Unmarshal(data, &labels))
	assert.Equal(t, []string{"Others", "Tubers", "Vegetables"}, labels)
}

func TestCategoryHandler_List_AlwaysIncludesOthersFirst(t *testing.T) {
	// No uncategorized products exist, so the aggregation has no Others
	// bucket; the label list still leads with it.
	data := listCategories(t, []*entity.CategoryCount{
		{Category: "Tubers", Count: 3},
		{Category: "Vegetables", Count: 1},
	}, "/api/categories")

	var labels []string
	require.NoError(t, json.Unmarshal(data, &labels))
	assert.Equal(t, []string{"Others", "Tubers", "Vegetables"}, labels)
}

func TestCategoryHandler_List_CountsForm(t *testing.T) {
	for _, target := range []string{"/api/categories?counts=true", "/api/categories?counts=1"} {
		data := listCategories(t, []*entity.CategoryCount{
			{Category: entity.CategoryOthers, Count: 2},
			{Category: "Tubers", Count: 3},
		}, target)

		var counts []entity.CategoryCount
		require.NoError(t, json.Unmarshal(data, &counts))
		require.Len(t, counts, 2)
		assert.Equal(t, entity.CategoryOthers, counts[0].Category)
		assert.Equal(t, 2, counts[0].Count)
		assert.Equal(t, "Tubers", counts[1].Category)
	}
}

func TestCategoryHandler_List_ExplicitCountsFalse(t *testing.T) {
	data := listCategories(t, []*entity.CategoryCount{
		{Category: entity.CategoryOthers, Count: 2},
	}, "/api/categories?counts=false")

	var labels []string
	require.NoError(t, json.Unmarshal(data, &labels))
	assert.Equal(t, []string{"Others"}, labels)
}
