package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Breakdown is the per-category price contribution of a quote.
// Category fields are nil when nothing of that category was priced.
type Breakdown struct {
	BasePrice decimal.Decimal  `json:"basePrice"`
	Engine    *decimal.Decimal `json:"engine,omitempty"`
	Paint     *decimal.Decimal `json:"paint,omitempty"`
	Wheels    *decimal.Decimal `json:"wheels,omitempty"`
	Extras    *decimal.Decimal `json:"extras,omitempty"`
}

// Add accumulates price under the category's key.
func (b *Breakdown) Add(category Category, price decimal.Decimal) {
	var slot **decimal.Decimal
	switch category {
	case CategoryEngine:
		slot = &b.Engine
	case CategoryPaint:
		slot = &b.Paint
	case CategoryWheels:
		slot = &b.Wheels
	case CategoryExtras:
		slot = &b.Extras
	default:
		return
	}
	sum := price
	if *slot != nil {
		sum = (*slot).Add(price)
	}
	*slot = &sum
}

// MarshalJSON renders every amount as a JSON number.
func (b Breakdown) MarshalJSON() ([]byte, error) {
	num := func(d *decimal.Decimal) *json.Number {
		if d == nil {
			return nil
		}
		n := json.Number(d.String())
		return &n
	}
	return json.Marshal(struct {
		BasePrice json.Number  `json:"basePrice"`
		Engine    *json.Number `json:"engine,omitempty"`
		Paint     *json.Number `json:"paint,omitempty"`
		Wheels    *json.Number `json:"wheels,omitempty"`
		Extras    *json.Number `json:"extras,omitempty"`
	}{
		BasePrice: json.Number(b.BasePrice.String()),
		Engine:    num(b.Engine),
		Paint:     num(b.Paint),
		Wheels:    num(b.Wheels),
		Extras:    num(b.Extras),
	})
}

// Quote is a computed price for a selection.
type Quote struct {
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Breakdown  Breakdown       `json:"breakdown"`
}

// MarshalJSON renders the total with two fractional digits.
func (q Quote) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		TotalPrice string    `json:"totalPrice"`
		Breakdown  Breakdown `json:"breakdown"`
	}{
		TotalPrice: FormatPrice(q.TotalPrice),
		Breakdown:  q.Breakdown,
	})
}

// FormatPrice renders an amount with exactly two fractional digits.
func FormatPrice(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// ShareLink is a generated configuration link.
type ShareLink struct {
	Success   bool   `json:"success"`
	ConfigURL string `json:"configUrl"`
	FullURL   string `json:"fullUrl"`
}

// ResolvedLink is a decoded configuration link together with its price.
type ResolvedLink struct {
	Selection Selection `json:"selection"`
	ConfigURL string    `json:"configUrl"`
	Quote
}

// MarshalJSON flattens the quote next to the selection.
func (r ResolvedLink) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Selection  Selection `json:"selection"`
		ConfigURL  string    `json:"configUrl"`
		TotalPrice string    `json:"totalPrice"`
		Breakdown  Breakdown `json:"breakdown"`
	}{
		Selection:  r.Selection,
		ConfigURL:  r.ConfigURL,
		TotalPrice: FormatPrice(r.TotalPrice),
		Breakdown:  r.Breakdown,
	})
}
