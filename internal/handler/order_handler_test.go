package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"oss-kar/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderHandler_Create(t *testing.T) {
	configID := uuid.New()
	testResponse := &model.OrderResponse{
		Success:    true,
		OrderID:    42,
		ConfigID:   configID,
		CustomerID: 7,
		Quote: model.Quote{
			TotalPrice: decimal.NewFromInt(28500),
			Breakdown:  model.Breakdown{BasePrice: decimal.NewFromInt(25000)},
		},
		Message: "Order placed successfully",
	}

	validBody := `{"email":"ada@example.com","firstName":"Ada","lastName":"Lovelace","configData":{"engineId":1,"paintId":2}}`

	tests := []struct {
		name           string
		method         string
		requestBody    string
		mockReturn     *model.OrderResponse
		mockError      error
		expectedStatus int
		expectedError  string
		expectService  bool
	}{
		{
			name:           "Success",
			method:         http.MethodPost,
			requestBody:    validBody,
			mockReturn:     testResponse,
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name:           "Missing last name",
			method:         http.MethodPost,
			requestBody:    `{"email":"ada@example.com","firstName":"Ada","configData":{}}`,
			mockError:      model.ErrMissingCustomerFields,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "email, firstName and lastName are required",
			expectService:  true,
		},
		{
			name:           "Persistence failure",
			method:         http.MethodPost,
			requestBody:    validBody,
			mockError:      model.NewPersistenceError("save order", errors.New("disk full")),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "failed to place order",
			expectService:  true,
		},
		{
			name:           "Unexpected failure",
			method:         http.MethodPost,
			requestBody:    validBody,
			mockError:      errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "failed to place order",
			expectService:  true,
		},
		{
			name:           "Invalid JSON",
			method:         http.MethodPost,
			requestBody:    "invalid json",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request body",
		},
		{
			name:           "Method not allowed",
			method:         http.MethodGet,
			expectedStatus: http.StatusMethodNotAllowed,
			expectedError:  "method not allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			handler := NewOrderHandler(mockService, zerolog.Nop())

			if tt.expectService {
				mockService.On("PlaceOrder", mock.Anything, mock.AnythingOfType("*model.OrderRequest")).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(tt.method, "/api/order", bytes.NewBufferString(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
			} else {
				assert.Equal(t, true, body["success"])
				assert.Equal(t, float64(42), body["orderId"])
				assert.Equal(t, configID.String(), body["configId"])
				assert.Equal(t, "28500.00", body["totalPrice"])
				assert.Equal(t, "Order placed successfully", body["message"])
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestOrderHandler_Create_PassesRequest(t *testing.T) {
	mockService := new(MockOrderService)
	handler := NewOrderHandler(mockService, zerolog.Nop())

	expected := &model.OrderRequest{
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		ConfigData: model.Selection{
			EngineID:  model.ID(1),
			ExtrasIDs: []int64{4, 5},
		},
	}
	mockService.On("PlaceOrder", mock.Anything, expected).Return(&model.OrderResponse{Success: true}, nil)

	body := `{"email":"ada@example.com","firstName":"Ada","lastName":"Lovelace","configData":{"engineId":1,"extrasIds":[4,5]},"totalPrice":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/order", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	handler.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestOrderHandler_GetByID(t *testing.T) {
	details := &model.OrderDetails{
		Order:    model.Order{ID: 42, TotalPrice: decimal.NewFromInt(28500)},
		Customer: model.Customer{ID: 7, Email: "ada@example.com"},
	}

	tests := []struct {
		name           string
		method         string
		id             string
		mockReturn     *model.OrderDetails
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			method:         http.MethodGet,
			id:             "42",
			mockReturn:     details,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Order not found",
			method:         http.MethodGet,
			id:             "43",
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Service error",
			method:         http.MethodGet,
			id:             "44",
			mockError:      model.NewPersistenceError("get order", errors.New("timeout")),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
		{
			name:           "Invalid ID format",
			method:         http.MethodGet,
			id:             "abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Non-positive ID",
			method:         http.MethodGet,
			id:             "0",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing ID",
			method:         http.MethodGet,
			id:             "",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodDelete,
			id:             "42",
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			handler := NewOrderHandler(mockService, zerolog.Nop())

			if tt.expectService {
				mockService.On("GetByID", mock.Anything, mock.AnythingOfType("int64")).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(tt.method, "/api/orders/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()

			handler.GetByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}
