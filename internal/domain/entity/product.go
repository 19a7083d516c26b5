package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
type Product struct {
	ID        string
	Name      string
	Category  string
	Price     decimal.Decimal
	Stock     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductPatch actualización parcial de producto.
type ProductPatch struct {
	Name     *string
	Category *string
	Price    *decimal.Decimal
	Stock    *int
}
