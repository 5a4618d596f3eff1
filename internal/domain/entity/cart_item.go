package entity

import "time"

// CartItem representa un ítem pendiente en el carrito.
// UserID queda persistido para poder escopar el carrito por usuario en el
// futuro; hoy los endpoints operan sobre la colección completa.
type CartItem struct {
	ID        string
	ProductID string
	UserID    string
	Quantity  int // default 1, mínimo 1
	CreatedAt time.Time
	UpdatedAt time.Time
}
