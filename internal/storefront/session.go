package storefront

import (
	"errors"
	"fmt"
	"strings"

	"oss-kar/internal/model"
	"oss-kar/internal/shareurl"

	"github.com/shopspring/decimal"
)

var (
	// ErrTooManyExtras is returned when a sixth extra is toggled on.
	ErrTooManyExtras = errors.New("at most 5 extras can be selected")

	// ErrUnknownOption is returned for ids that are not in the session catalog
	// under the expected category.
	ErrUnknownOption = errors.New("unknown option")
)

// Session holds the shopper's current selection against a loaded catalog.
type Session struct {
	catalog *model.Catalog
	sel     model.Selection
}

// NewSession starts an empty selection over catalog.
func NewSession(catalog *model.Catalog) *Session {
	return &Session{
		catalog: catalog,
		sel:     model.Selection{ExtrasIDs: []int64{}},
	}
}

// Catalog returns the catalog the session was started with.
func (s *Session) Catalog() *model.Catalog {
	return s.catalog
}

// Selection returns a copy of the current selection.
func (s *Session) Selection() model.Selection {
	return s.sel.Normalize()
}

// SetEngine selects a single engine.
func (s *Session) SetEngine(id int64) error {
	return s.choose(model.CategoryEngine, id, &s.sel.EngineID)
}

// SetPaint selects a single paint.
func (s *Session) SetPaint(id int64) error {
	return s.choose(model.CategoryPaint, id, &s.sel.PaintID)
}

// SetWheels selects a single wheel set.
func (s *Session) SetWheels(id int64) error {
	return s.choose(model.CategoryWheels, id, &s.sel.WheelsID)
}

// Clear deselects everything in category.
func (s *Session) Clear(category model.Category) {
	switch category {
	case model.CategoryEngine:
		s.sel.EngineID = nil
	case model.CategoryPaint:
		s.sel.PaintID = nil
	case model.CategoryWheels:
		s.sel.WheelsID = nil
	case model.CategoryExtras:
		s.sel.ExtrasIDs = []int64{}
	}
}

// ToggleExtra flips an extra and reports whether it is now selected.
// Turning on a sixth extra fails with ErrTooManyExtras and changes nothing.
func (s *Session) ToggleExtra(id int64) (bool, error) {
	for i, existing := range s.sel.ExtrasIDs {
		if existing == id {
			s.sel.ExtrasIDs = append(s.sel.ExtrasIDs[:i:i], s.sel.ExtrasIDs[i+1:]...)
			return false, nil
		}
	}

	if !s.has(model.CategoryExtras, id) {
		return false, fmt.Errorf("%w: extra %d", ErrUnknownOption, id)
	}
	if len(s.sel.ExtrasIDs) >= model.MaxExtras {
		return false, ErrTooManyExtras
	}

	s.sel.ExtrasIDs = append(s.sel.ExtrasIDs, id)
	return true, nil
}

// Link returns the shareable path for the current selection.
func (s *Session) Link() string {
	return shareurl.Encode(s.Selection())
}

// LoadLink replaces the selection with the one encoded in raw. Ids missing
// from the catalog, and extras past the cap, are dropped and returned.
func (s *Session) LoadLink(raw string) []int64 {
	decoded := shareurl.Decode(raw).Normalize()

	var dropped []int64
	keep := func(category model.Category, id *int64) *int64 {
		if id == nil {
			return nil
		}
		if !s.has(category, *id) {
			dropped = append(dropped, *id)
			return nil
		}
		return id
	}

	next := model.Selection{
		EngineID:  keep(model.CategoryEngine, decoded.EngineID),
		PaintID:   keep(model.CategoryPaint, decoded.PaintID),
		WheelsID:  keep(model.CategoryWheels, decoded.WheelsID),
		ExtrasIDs: []int64{},
	}
	for _, id := range decoded.ExtrasIDs {
		if !s.has(model.CategoryExtras, id) || len(next.ExtrasIDs) >= model.MaxExtras {
			dropped = append(dropped, id)
			continue
		}
		next.ExtrasIDs = append(next.ExtrasIDs, id)
	}

	s.sel = next
	return dropped
}

func (s *Session) choose(category model.Category, id int64, slot **int64) error {
	if !s.has(category, id) {
		return fmt.Errorf("%w: %s %d", ErrUnknownOption, category, id)
	}
	*slot = model.ID(id)
	return nil
}

func (s *Session) has(category model.Category, id int64) bool {
	if s.catalog == nil {
		return false
	}
	o, ok := s.catalog.Find(id)
	return ok && o.Category == category
}

// FormatPrice renders an amount in whole euros with dot grouping, e.g. "25.000 €".
func FormatPrice(d decimal.Decimal) string {
	digits := d.Round(0).Abs().String()

	var b strings.Builder
	if d.Round(0).IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteString(" €")
	return b.String()
}
