package repository

import (
	"context"

	"oss-kar/internal/model"

	"github.com/jackc/pgx/v5"
)

// OptionRepository defines the interface for catalog data access operations.
type OptionRepository interface {
	// ListAll retrieves every option ordered by category, then ascending price.
	ListAll(ctx context.Context) ([]model.Option, error)

	// GetByIDs retrieves the options matching ids. Unknown ids are skipped.
	GetByIDs(ctx context.Context, ids []int64) ([]model.Option, error)

	// Upsert inserts options or overwrites existing rows with the same id.
	Upsert(ctx context.Context, options []model.Option) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// UpsertCustomer resolves the customer by exact email, creating it when missing.
	// Existing customers keep their stored names. It sets customer.ID and reports
	// whether a new row was created.
	UpsertCustomer(ctx context.Context, tx pgx.Tx, customer *model.Customer) (bool, error)

	// CreateConfiguration inserts a configuration within the provided transaction.
	CreateConfiguration(ctx context.Context, tx pgx.Tx, cfg *model.Configuration) error

	// CreateOrder inserts an order within the provided transaction and sets its ID.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// GetByID retrieves an order with its configuration and customer.
	// It returns nil without error when the order does not exist.
	GetByID(ctx context.Context, id int64) (*model.OrderDetails, error)
}
