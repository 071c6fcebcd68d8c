package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Category groups purchasable options.
type Category string

const (
	CategoryEngine Category = "engine"
	CategoryPaint  Category = "paint"
	CategoryWheels Category = "wheels"
	CategoryExtras Category = "extras"
)

// Categories lists all categories in catalog order.
var Categories = []Category{CategoryEngine, CategoryPaint, CategoryWheels, CategoryExtras}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryEngine, CategoryPaint, CategoryWheels, CategoryExtras:
		return true
	}
	return false
}

// Option is a single purchasable catalog item.
type Option struct {
	ID       int64           `json:"id" db:"id"`
	Category Category        `json:"category" db:"category"`
	Name     string          `json:"name" db:"name"`
	Price    decimal.Decimal `json:"price" db:"price"`
}

// MarshalJSON renders the price as a JSON number.
func (o Option) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID       int64       `json:"id"`
		Category Category    `json:"category"`
		Name     string      `json:"name"`
		Price    json.Number `json:"price"`
	}{
		ID:       o.ID,
		Category: o.Category,
		Name:     o.Name,
		Price:    json.Number(o.Price.String()),
	})
}

// Catalog is the option list grouped by category.
type Catalog struct {
	Engine []Option `json:"engine"`
	Paint  []Option `json:"paint"`
	Wheels []Option `json:"wheels"`
	Extras []Option `json:"extras"`
}

// NewCatalog groups options by category, keeping their relative order.
// Options with an unknown category are skipped.
func NewCatalog(options []Option) *Catalog {
	c := &Catalog{
		Engine: []Option{},
		Paint:  []Option{},
		Wheels: []Option{},
		Extras: []Option{},
	}
	for _, o := range options {
		switch o.Category {
		case CategoryEngine:
			c.Engine = append(c.Engine, o)
		case CategoryPaint:
			c.Paint = append(c.Paint, o)
		case CategoryWheels:
			c.Wheels = append(c.Wheels, o)
		case CategoryExtras:
			c.Extras = append(c.Extras, o)
		}
	}
	return c
}

// Find returns the option with the given id, if present.
func (c *Catalog) Find(id int64) (Option, bool) {
	for _, group := range [][]Option{c.Engine, c.Paint, c.Wheels, c.Extras} {
		for _, o := range group {
			if o.ID == id {
				return o, true
			}
		}
	}
	return Option{}, false
}
