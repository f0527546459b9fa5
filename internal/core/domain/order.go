package domain

import (
	"errors"
	"time"
)

var ErrOrderNotFound = errors.New("order not found")

// Order is a purchase record managed through the orders screens.
// PlacedBy holds the id of the account that owns the order; accounts with
// orders cannot be deleted.
type Order struct {
	ID          string    `json:"id"`
	OrderNumber string    `json:"order_number"`
	ProductName string    `json:"product_name"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	PlacedBy    string    `json:"placed_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
