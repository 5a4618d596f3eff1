package repository

import "github.com/jhoicas/store-api/internal/domain/entity"

// CartItemWithProduct ítem del carrito con su producto resuelto para listados.
type CartItemWithProduct struct {
	Item    entity.CartItem
	Product *entity.Product // nil si el producto fue eliminado
}

// CartRepository define el puerto de persistencia para CartItem (DIP).
type CartRepository interface {
	Create(item *entity.CartItem) error
	ListWithProduct() ([]CartItemWithProduct, error)
	Delete(id string) (bool, error)
	DeleteAll() error
}
