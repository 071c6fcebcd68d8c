// Package pricing sums catalog prices on top of a base price.
package pricing

import (
	"oss-kar/internal/model"

	"github.com/shopspring/decimal"
)

// DefaultBasePrice is the price of the car without any options.
var DefaultBasePrice = decimal.NewFromInt(25000)

// Engine computes quotes from resolved catalog rows.
type Engine struct {
	basePrice decimal.Decimal
}

// NewEngine creates an engine with the given base price.
func NewEngine(basePrice decimal.Decimal) *Engine {
	return &Engine{basePrice: basePrice}
}

// BasePrice returns the configured base price.
func (e *Engine) BasePrice() decimal.Decimal {
	return e.basePrice
}

// Quote adds each distinct option's price to the base price. Each option id
// contributes at most once.
func (e *Engine) Quote(options []model.Option) model.Quote {
	total := e.basePrice
	breakdown := model.Breakdown{BasePrice: e.basePrice}

	seen := make(map[int64]struct{}, len(options))
	for _, o := range options {
		if _, ok := seen[o.ID]; ok {
			continue
		}
		seen[o.ID] = struct{}{}

		total = total.Add(o.Price)
		breakdown.Add(o.Category, o.Price)
	}

	return model.Quote{
		TotalPrice: total.Round(2),
		Breakdown:  breakdown,
	}
}
