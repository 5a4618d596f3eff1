package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// CategoryID debe resolver a una Category existente al momento de crear.
// VendorID es el usuario (admin o vendor) que creó el producto; la política de
// propiedad restringe mutaciones al vendor dueño o a cualquier admin.
type Product struct {
	ID         string
	Name       string
	Price      decimal.Decimal // precio de venta
	CategoryID string
	InStock    bool // default true
	VendorID   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
