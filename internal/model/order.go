package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer is a buyer identified by email.
type Customer struct {
	ID        int64     `json:"id" db:"id"`
	FirstName string    `json:"firstName" db:"first_name"`
	LastName  string    `json:"lastName" db:"last_name"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Configuration is the persisted selection attached to an order.
type Configuration struct {
	ID        uuid.UUID `json:"id" db:"id"`
	EngineID  *int64    `json:"engineId" db:"engine_id"`
	PaintID   *int64    `json:"paintId" db:"paint_id"`
	WheelsID  *int64    `json:"wheelsId" db:"wheels_id"`
	ExtrasIDs []int64   `json:"extrasIds" db:"extras_ids"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// NewConfiguration materializes a selection under a fresh random id.
func NewConfiguration(sel Selection, now time.Time) *Configuration {
	sel = sel.Normalize()
	return &Configuration{
		ID:        uuid.New(),
		EngineID:  sel.EngineID,
		PaintID:   sel.PaintID,
		WheelsID:  sel.WheelsID,
		ExtrasIDs: sel.ExtrasIDs,
		CreatedAt: now,
	}
}

// Selection returns the selection stored in the configuration.
func (c *Configuration) Selection() Selection {
	extras := c.ExtrasIDs
	if extras == nil {
		extras = []int64{}
	}
	return Selection{
		EngineID:  c.EngineID,
		PaintID:   c.PaintID,
		WheelsID:  c.WheelsID,
		ExtrasIDs: extras,
	}
}

// Order is a placed order.
type Order struct {
	ID         int64           `json:"id" db:"id"`
	ConfigID   uuid.UUID       `json:"configId" db:"config_id"`
	CustomerID int64           `json:"customerId" db:"customer_id"`
	TotalPrice decimal.Decimal `json:"totalPrice" db:"total_price"`
	CreatedAt  time.Time       `json:"createdAt" db:"created_at"`
}

// OrderRequest represents the request payload for placing an order.
type OrderRequest struct {
	Email      string    `json:"email"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	ConfigData Selection `json:"configData"`
}

// OrderResponse is returned after a successful order.
type OrderResponse struct {
	Success    bool      `json:"success"`
	OrderID    int64     `json:"orderId"`
	ConfigID   uuid.UUID `json:"configId"`
	CustomerID int64     `json:"customerId"`
	Quote
	Message string `json:"message"`
}

// MarshalJSON flattens the quote into the response.
func (r OrderResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Success    bool      `json:"success"`
		OrderID    int64     `json:"orderId"`
		ConfigID   uuid.UUID `json:"configId"`
		CustomerID int64     `json:"customerId"`
		TotalPrice string    `json:"totalPrice"`
		Breakdown  Breakdown `json:"breakdown"`
		Message    string    `json:"message"`
	}{
		Success:    r.Success,
		OrderID:    r.OrderID,
		ConfigID:   r.ConfigID,
		CustomerID: r.CustomerID,
		TotalPrice: FormatPrice(r.TotalPrice),
		Breakdown:  r.Breakdown,
		Message:    r.Message,
	})
}

// OrderDetails is a stored order with its configuration and customer.
type OrderDetails struct {
	Order         Order         `json:"order"`
	Configuration Configuration `json:"configuration"`
	Customer      Customer      `json:"customer"`
}

// OrderPlacedEvent is published after an order is committed.
type OrderPlacedEvent struct {
	OrderID    int64     `json:"orderId"`
	ConfigID   uuid.UUID `json:"configId"`
	CustomerID int64     `json:"customerId"`
	Email      string    `json:"email"`
	TotalPrice string    `json:"totalPrice"`
	Selection  Selection `json:"selection"`
	PlacedAt   time.Time `json:"placedAt"`
}
