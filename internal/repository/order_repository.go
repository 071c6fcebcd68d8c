package repository

import (
	"context"
	"errors"
	"fmt"

	"oss-kar/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *orderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// UpsertCustomer resolves the customer by exact email, creating it when missing.
//
// The no-op update on conflict makes RETURNING yield the existing row, and the
// unique email index serializes concurrent first orders for the same address.
func (r *orderRepository) UpsertCustomer(ctx context.Context, tx pgx.Tx, customer *model.Customer) (bool, error) {
	query := `
		INSERT INTO customers (first_name, last_name, email)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id, first_name, last_name, created_at, (xmax = 0) AS inserted
	`

	var inserted bool
	err := tx.QueryRow(ctx, query, customer.FirstName, customer.LastName, customer.Email).Scan(
		&customer.ID,
		&customer.FirstName,
		&customer.LastName,
		&customer.CreatedAt,
		&inserted,
	)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to upsert customer")
		return false, fmt.Errorf("failed to upsert customer: %w", err)
	}

	r.logger.Debug().
		Int64("customer_id", customer.ID).
		Bool("created", inserted).
		Msg("customer resolved")

	return inserted, nil
}

// CreateConfiguration inserts a configuration within the provided transaction.
func (r *orderRepository) CreateConfiguration(ctx context.Context, tx pgx.Tx, cfg *model.Configuration) error {
	query := `
		INSERT INTO configurations (id, engine_id, paint_id, wheels_id, extras_ids, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	extras := cfg.ExtrasIDs
	if extras == nil {
		extras = []int64{}
	}

	_, err := tx.Exec(ctx, query, cfg.ID, cfg.EngineID, cfg.PaintID, cfg.WheelsID, extras, cfg.CreatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("config_id", cfg.ID.String()).
			Msg("failed to create configuration")
		return fmt.Errorf("failed to create configuration: %w", err)
	}

	r.logger.Debug().
		Str("config_id", cfg.ID.String()).
		Msg("configuration created successfully")

	return nil
}

// CreateOrder inserts an order within the provided transaction and sets its ID.
func (r *orderRepository) CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	query := `
		INSERT INTO orders (config_id, customer_id, total_price, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := tx.QueryRow(ctx, query, order.ConfigID, order.CustomerID, order.TotalPrice, order.CreatedAt).Scan(&order.ID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("config_id", order.ConfigID.String()).
			Int64("customer_id", order.CustomerID).
			Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Int64("order_id", order.ID).
		Msg("order created successfully")

	return nil
}

// GetByID retrieves an order with its configuration and customer.
func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.OrderDetails, error) {
	query := `
		SELECT o.id, o.config_id, o.customer_id, o.total_price, o.created_at,
		       c.engine_id, c.paint_id, c.wheels_id, c.extras_ids, c.created_at,
		       cu.first_name, cu.last_name, cu.email, cu.created_at
		FROM orders o
		JOIN configurations c ON c.id = o.config_id
		JOIN customers cu ON cu.id = o.customer_id
		WHERE o.id = $1
	`

	var d model.OrderDetails
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&d.Order.ID,
		&d.Order.ConfigID,
		&d.Order.CustomerID,
		&d.Order.TotalPrice,
		&d.Order.CreatedAt,
		&d.Configuration.EngineID,
		&d.Configuration.PaintID,
		&d.Configuration.WheelsID,
		&d.Configuration.ExtrasIDs,
		&d.Configuration.CreatedAt,
		&d.Customer.FirstName,
		&d.Customer.LastName,
		&d.Customer.Email,
		&d.Customer.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("order_id", id).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("order_id", id).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	d.Configuration.ID = d.Order.ConfigID
	d.Customer.ID = d.Order.CustomerID

	return &d, nil
}
