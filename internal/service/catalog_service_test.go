package service

import (
	"context"
	"errors"
	"testing"

	"oss-kar/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("Groups options by category", func(t *testing.T) {
		repo := new(MockOptionRepository)
		repo.On("ListAll", ctx).Return([]model.Option{
			{ID: 3, Category: model.CategoryEngine, Name: "1.5 TSI", Price: decimal.NewFromInt(1500)},
			{ID: 1, Category: model.CategoryEngine, Name: "2.0 TDI", Price: decimal.NewFromInt(3000)},
			{ID: 4, Category: model.CategoryExtras, Name: "Heated Seats", Price: decimal.NewFromInt(450)},
			{ID: 2, Category: model.CategoryPaint, Name: "Racing Red", Price: decimal.NewFromInt(500)},
		}, nil)

		svc := NewCatalogService(repo, zerolog.Nop())

		catalog, err := svc.ListOptions(ctx)
		require.NoError(t, err)
		require.Len(t, catalog.Engine, 2)
		assert.Equal(t, int64(3), catalog.Engine[0].ID)
		assert.Len(t, catalog.Extras, 1)
		assert.Len(t, catalog.Paint, 1)
		assert.NotNil(t, catalog.Wheels)
		assert.Empty(t, catalog.Wheels)
		repo.AssertExpectations(t)
	})

	t.Run("Store failure is a persistence error", func(t *testing.T) {
		repo := new(MockOptionRepository)
		repo.On("ListAll", ctx).Return(nil, errors.New("connection refused"))

		svc := NewCatalogService(repo, zerolog.Nop())

		catalog, err := svc.ListOptions(ctx)
		require.Error(t, err)
		assert.Nil(t, catalog)

		var pe *model.PersistenceError
		assert.True(t, errors.As(err, &pe))
	})
}
