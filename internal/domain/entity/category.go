package entity

import "time"

// Category representa una categoría de productos. Product la referencia, no la posee.
type Category struct {
	ID          string
	Name        string
	Description string // opcional
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
