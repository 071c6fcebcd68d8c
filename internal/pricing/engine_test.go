package pricing

import (
	"testing"

	"oss-kar/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Quote_Empty(t *testing.T) {
	e := NewEngine(DefaultBasePrice)

	q := e.Quote(nil)

	assert.Equal(t, "25000.00", model.FormatPrice(q.TotalPrice))
	assert.True(t, q.Breakdown.BasePrice.Equal(decimal.NewFromInt(25000)))
	assert.Nil(t, q.Breakdown.Engine)
	assert.Nil(t, q.Breakdown.Paint)
	assert.Nil(t, q.Breakdown.Wheels)
	assert.Nil(t, q.Breakdown.Extras)
}

func TestEngine_Quote_EnginePaint(t *testing.T) {
	e := NewEngine(DefaultBasePrice)

	q := e.Quote([]model.Option{
		{ID: 1, Category: model.CategoryEngine, Name: "V8", Price: decimal.RequireFromString("3000.00")},
		{ID: 2, Category: model.CategoryPaint, Name: "Red", Price: decimal.RequireFromString("500.00")},
	})

	assert.Equal(t, "28500.00", model.FormatPrice(q.TotalPrice))
	require.NotNil(t, q.Breakdown.Engine)
	require.NotNil(t, q.Breakdown.Paint)
	assert.Equal(t, "3000", q.Breakdown.Engine.String())
	assert.Equal(t, "500", q.Breakdown.Paint.String())
	assert.Nil(t, q.Breakdown.Extras)
}

func TestEngine_Quote_NoFloatDrift(t *testing.T) {
	e := NewEngine(decimal.Zero)

	options := make([]model.Option, 0, 10)
	for i := int64(1); i <= 10; i++ {
		options = append(options, model.Option{
			ID:       i,
			Category: model.CategoryExtras,
			Price:    decimal.RequireFromString("0.10"),
		})
	}

	q := e.Quote(options)

	assert.Equal(t, "1.00", model.FormatPrice(q.TotalPrice))
	require.NotNil(t, q.Breakdown.Extras)
	assert.True(t, q.Breakdown.Extras.Equal(decimal.NewFromInt(1)))
}

func TestEngine_Quote_TotalIsBasePlusSum(t *testing.T) {
	e := NewEngine(DefaultBasePrice)

	options := []model.Option{
		{ID: 1, Category: model.CategoryEngine, Price: decimal.RequireFromString("4999.99")},
		{ID: 7, Category: model.CategoryWheels, Price: decimal.RequireFromString("1200.50")},
		{ID: 9, Category: model.CategoryExtras, Price: decimal.RequireFromString("300.25")},
		{ID: 10, Category: model.CategoryExtras, Price: decimal.RequireFromString("99.26")},
		{ID: 10, Category: model.CategoryExtras, Price: decimal.RequireFromString("99.26")},
	}

	q := e.Quote(options)

	assert.Equal(t, "31600.00", model.FormatPrice(q.TotalPrice))
	require.NotNil(t, q.Breakdown.Extras)
	assert.Equal(t, "399.51", q.Breakdown.Extras.String())
}
