package service

import (
	"context"

	"oss-kar/internal/model"
)

// CatalogService defines read access to the option catalog.
type CatalogService interface {
	// ListOptions retrieves every option grouped by category.
	ListOptions(ctx context.Context) (*model.Catalog, error)
}

// QuoteService defines price calculation for selections.
type QuoteService interface {
	// Calculate prices a selection. Ids missing from the catalog are ignored.
	Calculate(ctx context.Context, sel model.Selection) (*model.Quote, error)
}

// LinkService defines shareable configuration link operations.
type LinkService interface {
	// Generate builds the shareable link for a selection.
	Generate(ctx context.Context, sel model.Selection) (*model.ShareLink, error)

	// Resolve decodes a shareable link and prices the selection it carries.
	Resolve(ctx context.Context, raw string) (*model.ResolvedLink, error)
}

// OrderService defines operations for order management.
type OrderService interface {
	// PlaceOrder prices the selection and stores customer, configuration and
	// order in one transaction.
	PlaceOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error)

	// GetByID retrieves a stored order. It returns nil when the order does not exist.
	GetByID(ctx context.Context, id int64) (*model.OrderDetails, error)
}
