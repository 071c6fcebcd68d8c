package service

import (
	"context"
	"testing"

	"oss-kar/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLinkService_Generate(t *testing.T) {
	ctx := context.Background()
	quotes := new(MockQuoteService)
	svc := NewLinkService(quotes, "https://kar.example.com/", zerolog.Nop())

	tests := []struct {
		name        string
		sel         model.Selection
		expectedURL string
		expectedErr error
	}{
		{
			name:        "Engine and extras",
			sel:         model.Selection{EngineID: model.ID(1), ExtrasIDs: []int64{4, 5}},
			expectedURL: "/config?engine=1&extras=4-5",
		},
		{
			name:        "Empty selection",
			sel:         model.Selection{},
			expectedURL: "/config",
		},
		{
			name:        "Duplicate extras collapse",
			sel:         model.Selection{PaintID: model.ID(2), ExtrasIDs: []int64{5, 5, 4}},
			expectedURL: "/config?color=2&extras=5-4",
		},
		{
			name:        "Too many extras",
			sel:         model.Selection{ExtrasIDs: []int64{1, 2, 3, 4, 5, 6}},
			expectedErr: model.ErrTooManyExtras,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link, err := svc.Generate(ctx, tt.sel)
			if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr, err)
				assert.Nil(t, link)
				return
			}

			require.NoError(t, err)
			assert.True(t, link.Success)
			assert.Equal(t, tt.expectedURL, link.ConfigURL)
			assert.Equal(t, "https://kar.example.com"+tt.expectedURL, link.FullURL)
		})
	}

	quotes.AssertNotCalled(t, "Calculate", mock.Anything, mock.Anything)
}

func TestLinkService_Resolve(t *testing.T) {
	ctx := context.Background()

	expected := model.Selection{EngineID: model.ID(1), PaintID: model.ID(2), ExtrasIDs: []int64{4}}
	quote := &model.Quote{
		TotalPrice: decimal.NewFromInt(28950),
		Breakdown:  model.Breakdown{BasePrice: decimal.NewFromInt(25000)},
	}

	quotes := new(MockQuoteService)
	quotes.On("Calculate", ctx, expected).Return(quote, nil)

	svc := NewLinkService(quotes, "http://localhost:3001", zerolog.Nop())

	resolved, err := svc.Resolve(ctx, "http://localhost:3001/config?engine=1&color=2&extras=4-4-x")
	require.NoError(t, err)
	assert.Equal(t, expected, resolved.Selection)
	assert.Equal(t, "/config?engine=1&color=2&extras=4", resolved.ConfigURL)
	assert.True(t, resolved.TotalPrice.Equal(decimal.NewFromInt(28950)))
	quotes.AssertExpectations(t)
}
