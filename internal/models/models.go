package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"                                 json:"id"`
	Name        string          `gorm:"size:255;not null;uniqueIndex:unique_name"                json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null;check:check_price,price > 0"  json:"price"`
	AmountLeft  int             `gorm:"not null;check:check_amount,amount_left >= 0"             json:"amount_left"`

	Items []OrderItem `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

type Order struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"not null"                 json:"created_at"`
	Status    string    `gorm:"size:55;not null"         json:"status"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
}

type OrderItem struct {
	ID              uint `gorm:"primaryKey;autoIncrement"                                json:"id"`
	OrderID         uint `gorm:"not null;uniqueIndex:unique_order_product"               json:"order_id"`
	ProductID       uint `gorm:"not null;uniqueIndex:unique_order_product"               json:"product_id"`
	AmountOfProduct int  `gorm:"not null;check:check_item_amount,amount_of_product > 0"  json:"amount_of_product"`
}
