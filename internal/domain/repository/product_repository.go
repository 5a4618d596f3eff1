package repository

import "github.com/jhoicas/store-api/internal/domain/entity"

// ProductWithCategory producto con su categoría resuelta para listados.
type ProductWithCategory struct {
	Product  entity.Product
	Category *entity.Category // nil si la categoría fue eliminada
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListWithCategory() ([]ProductWithCategory, error)
	Delete(id string) error
	DeleteAll() error
}
