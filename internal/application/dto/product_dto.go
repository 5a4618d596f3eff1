package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name     string          `json:"name" validate:"required,max=200"`
	Price    decimal.Decimal `json:"price" validate:"required"`
	Category string          `json:"category" validate:"required"`
	InStock  *bool           `json:"inStock"` // nil -> true
}

// UpdateProductRequest entrada para actualizar; solo los campos presentes se aplican.
type UpdateProductRequest struct {
	Name     *string          `json:"name"`
	Price    *decimal.Decimal `json:"price"`
	Category *string          `json:"category"`
	InStock  *bool            `json:"inStock"`
}

// ProductResponse salida de un producto. Category viene resuelta en listados.
type ProductResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Price      decimal.Decimal   `json:"price"`
	Category   *CategoryResponse `json:"category,omitempty"`
	CategoryID string            `json:"categoryId"`
	InStock    bool              `json:"inStock"`
	Vendor     string            `json:"vendor"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}
