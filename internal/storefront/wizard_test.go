package storefront

import (
	"context"
	"errors"
	"testing"

	"oss-kar/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderPlacer is a mock implementation of OrderPlacer.
type MockOrderPlacer struct {
	mock.Mock
}

func (m *MockOrderPlacer) PlaceOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderResponse), args.Error(1)
}

func newTestWizard(t *testing.T) (*Wizard, *MockOrderPlacer) {
	t.Helper()

	session := NewSession(testCatalog())
	require.NoError(t, session.SetEngine(1))
	_, err := session.ToggleExtra(4)
	require.NoError(t, err)

	placer := new(MockOrderPlacer)
	return NewWizard(placer, session), placer
}

func TestWizard_HappyPath(t *testing.T) {
	ctx := context.Background()
	w, placer := newTestWizard(t)

	expectedReq := &model.OrderRequest{
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		ConfigData: model.Selection{
			EngineID:  model.ID(1),
			ExtrasIDs: []int64{4},
		},
	}
	placer.On("PlaceOrder", ctx, expectedReq).Return(&model.OrderResponse{Success: true, OrderID: 42}, nil)

	assert.Equal(t, StepEmail, w.Step())
	require.NoError(t, w.SubmitEmail(" ada@example.com "))
	assert.Equal(t, StepDetails, w.Step())
	require.NoError(t, w.SubmitDetails("Ada", "Lovelace"))
	assert.Equal(t, StepConfirm, w.Step())

	resp, err := w.Confirm(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.OrderID)
	assert.Equal(t, StepDone, w.Step())
	assert.Equal(t, resp, w.Result())
	placer.AssertExpectations(t)
}

func TestWizard_StepsAreLinear(t *testing.T) {
	w, _ := newTestWizard(t)

	assert.ErrorIs(t, w.SubmitDetails("Ada", "Lovelace"), ErrWrongStep)
	_, err := w.Confirm(context.Background())
	assert.ErrorIs(t, err, ErrWrongStep)
	assert.ErrorIs(t, w.Show(StepConfirm), ErrWrongStep)

	assert.ErrorIs(t, w.SubmitEmail("  "), ErrMissingEmail)
	assert.Equal(t, StepEmail, w.Step())

	require.NoError(t, w.SubmitEmail("ada@example.com"))
	assert.ErrorIs(t, w.SubmitEmail("other@example.com"), ErrWrongStep)
	assert.ErrorIs(t, w.SubmitDetails("Ada", ""), ErrMissingName)
	assert.Equal(t, StepDetails, w.Step())
}

func TestWizard_ShowKeepsData(t *testing.T) {
	w, _ := newTestWizard(t)

	require.NoError(t, w.SubmitEmail("ada@example.com"))
	require.NoError(t, w.SubmitDetails("Ada", "Lovelace"))

	require.NoError(t, w.Show(StepEmail))
	assert.Equal(t, StepEmail, w.Step())
	assert.Equal(t, "ada@example.com", w.Email())

	require.NoError(t, w.Show(StepDetails))
	first, last := w.Name()
	assert.Equal(t, "Ada", first)
	assert.Equal(t, "Lovelace", last)

	require.NoError(t, w.Show(StepConfirm))
	assert.ErrorIs(t, w.Show(StepDone), ErrWrongStep)
}

func TestWizard_FailureStaysOnConfirm(t *testing.T) {
	ctx := context.Background()
	w, placer := newTestWizard(t)

	require.NoError(t, w.SubmitEmail("ada@example.com"))
	require.NoError(t, w.SubmitDetails("Ada", "Lovelace"))

	apiErr := &APIError{Status: 500, Message: "failed to place order"}
	placer.On("PlaceOrder", ctx, mock.Anything).Return(nil, apiErr).Once()
	placer.On("PlaceOrder", ctx, mock.Anything).Return(&model.OrderResponse{Success: true, OrderID: 1}, nil).Once()

	_, err := w.Confirm(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apiErr))
	assert.Equal(t, StepConfirm, w.Step())
	assert.Equal(t, "ada@example.com", w.Email())
	assert.Nil(t, w.Result())

	resp, err := w.Confirm(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.OrderID)
	assert.Equal(t, StepDone, w.Step())
	assert.ErrorIs(t, w.Show(StepEmail), ErrWrongStep)
}

func TestStep_String(t *testing.T) {
	assert.Equal(t, "email", StepEmail.String())
	assert.Equal(t, "done", StepDone.String())
	assert.Equal(t, "step(9)", Step(9).String())
}
