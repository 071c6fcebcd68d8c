package service

import (
	"context"
	"strings"
	"time"

	"oss-kar/internal/events"
	"oss-kar/internal/model"
	"oss-kar/internal/repository"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	quotes    QuoteService
	publisher events.Publisher
	logger    zerolog.Logger
	now       func() time.Time
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	quotes QuoteService,
	publisher events.Publisher,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		quotes:    quotes,
		publisher: publisher,
		logger:    logger.With().Str("service", "order").Logger(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// PlaceOrder prices the selection and stores customer, configuration and
// order in one transaction. The order.placed event is published after commit.
func (s *orderService) PlaceOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error) {
	customer, sel, err := s.validateOrderRequest(req)
	if err != nil {
		return nil, err
	}

	// Client supplied totals are never trusted.
	quote, err := s.quotes.Calculate(ctx, sel)
	if err != nil {
		return nil, err
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, model.NewPersistenceError("begin transaction", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if _, err = s.orderRepo.UpsertCustomer(ctx, tx, customer); err != nil {
		return nil, model.NewPersistenceError("save customer", err)
	}

	now := s.now()
	cfg := model.NewConfiguration(sel, now)
	if err = s.orderRepo.CreateConfiguration(ctx, tx, cfg); err != nil {
		return nil, model.NewPersistenceError("save configuration", err)
	}

	order := &model.Order{
		ConfigID:   cfg.ID,
		CustomerID: customer.ID,
		TotalPrice: quote.TotalPrice,
		CreatedAt:  now,
	}
	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		return nil, model.NewPersistenceError("save order", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("config_id", cfg.ID.String()).Msg("failed to commit transaction")
		return nil, model.NewPersistenceError("commit order", err)
	}

	s.logger.Info().
		Int64("order_id", order.ID).
		Int64("customer_id", customer.ID).
		Str("config_id", cfg.ID.String()).
		Str("total_price", model.FormatPrice(order.TotalPrice)).
		Msg("order placed successfully")

	s.publishPlaced(ctx, order, customer, sel)

	return &model.OrderResponse{
		Success:    true,
		OrderID:    order.ID,
		ConfigID:   cfg.ID,
		CustomerID: customer.ID,
		Quote:      *quote,
		Message:    "Order placed successfully",
	}, nil
}

// GetByID retrieves a stored order. It returns nil when the order does not exist.
func (s *orderService) GetByID(ctx context.Context, id int64) (*model.OrderDetails, error) {
	details, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("order_id", id).Msg("failed to get order")
		return nil, model.NewPersistenceError("get order", err)
	}

	if details == nil {
		s.logger.Debug().Int64("order_id", id).Msg("order not found")
		return nil, nil
	}

	return details, nil
}

// publishPlaced announces a committed order. Failures are only logged.
func (s *orderService) publishPlaced(ctx context.Context, order *model.Order, customer *model.Customer, sel model.Selection) {
	event := model.OrderPlacedEvent{
		OrderID:    order.ID,
		ConfigID:   order.ConfigID,
		CustomerID: customer.ID,
		Email:      customer.Email,
		TotalPrice: model.FormatPrice(order.TotalPrice),
		Selection:  sel,
		PlacedAt:   order.CreatedAt,
	}

	if err := s.publisher.PublishOrderPlaced(ctx, event); err != nil {
		s.logger.Warn().
			Err(err).
			Int64("order_id", order.ID).
			Msg("failed to publish order event")
	}
}

// validateOrderRequest trims the customer fields and checks the selection.
func (s *orderService) validateOrderRequest(req *model.OrderRequest) (*model.Customer, model.Selection, error) {
	if req == nil {
		return nil, model.Selection{}, model.ErrMissingCustomerFields
	}

	customer := &model.Customer{
		Email:     strings.TrimSpace(req.Email),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
	}
	if customer.Email == "" || customer.FirstName == "" || customer.LastName == "" {
		s.logger.Warn().
			Bool("has_email", customer.Email != "").
			Bool("has_first_name", customer.FirstName != "").
			Bool("has_last_name", customer.LastName != "").
			Msg("order request missing customer fields")
		return nil, model.Selection{}, model.ErrMissingCustomerFields
	}

	sel := req.ConfigData.Normalize()
	if err := sel.Validate(); err != nil {
		return nil, model.Selection{}, err
	}

	return customer, sel, nil
}
