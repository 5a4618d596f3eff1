package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/store-api/internal/application/dto"
	"github.com/jhoicas/store-api/internal/domain"
	"github.com/jhoicas/store-api/internal/domain/entity"
	"github.com/jhoicas/store-api/internal/domain/repository"
)

// CartUseCase casos de uso del carrito. El carrito es una colección compartida;
// cada ítem guarda el usuario que lo agregó pero las operaciones no escopan.
type CartUseCase struct {
	repo        repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(repo repository.CartRepository, productRepo repository.ProductRepository) *CartUseCase {
	return &CartUseCase{repo: repo, productRepo: productRepo}
}

// List devuelve todos los ítems con su producto resuelto.
func (uc *CartUseCase) List() ([]dto.CartItemResponse, error) {
	rows, err := uc.repo.ListWithProduct()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CartItemResponse, 0, len(rows))
	for _, row := range rows {
		resp := toCartItemResponse(&row.Item)
		if row.Product != nil {
			resp.Product = toProductResponse(row.Product)
		}
		out = append(out, *resp)
	}
	return out, nil
}

// Add agrega un producto al carrito. ErrInvalidID si el identificador está
// malformado, ErrNotFound si el producto no existe. Cantidad por defecto 1.
func (uc *CartUseCase) Add(userID string, in dto.AddToCartRequest) (*dto.CartItemResponse, error) {
	if _, err := uuid.Parse(in.ProductID); err != nil {
		return nil, domain.ErrInvalidID
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	quantity := in.Quantity
	if quantity < 1 {
		quantity = 1
	}
	now := time.Now()
	item := &entity.CartItem{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		UserID:    userID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toCartItemResponse(item), nil
}

// Remove elimina un ítem por su ID. ErrInvalidID si el identificador está
// malformado, ErrNotFound si el ítem no está en el carrito.
func (uc *CartUseCase) Remove(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidID
	}
	found, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

// Clear vacía el carrito completo.
func (uc *CartUseCase) Clear() error {
	return uc.repo.DeleteAll()
}

func toCartItemResponse(item *entity.CartItem) *dto.CartItemResponse {
	return &dto.CartItemResponse{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
