package transport

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	AmountLeft  int             `json:"amount_left"`
}

type CreateOrderRequest struct {
	Status   string       `json:"status"`
	Products map[uint]int `json:"products"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the materialized order view: the persisted items are
// projected back into the product id -> amount mapping the caller sent.
type OrderResponse struct {
	ID        uint         `json:"id"`
	CreatedAt time.Time    `json:"created_at"`
	Status    string       `json:"status"`
	Products  map[uint]int `json:"products"`
}
