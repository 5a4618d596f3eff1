package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/store-api/internal/application/dto"
	"github.com/jhoicas/store-api/internal/domain"
	"github.com/jhoicas/store-api/internal/domain/entity"
	"github.com/jhoicas/store-api/internal/domain/repository"
)

// Actor identidad del usuario autenticado que invoca una operación.
type Actor struct {
	ID   string
	Role string
}

// canMutate aplica la política de propiedad: un vendor solo puede mutar sus
// propios productos; un admin puede mutar cualquiera.
func (a Actor) canMutate(p *entity.Product) bool {
	if a.Role == entity.RoleAdmin {
		return true
	}
	return p.VendorID == a.ID
}

// ProductUseCase casos de uso CRUD para productos con política de propiedad.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// List devuelve todos los productos con su categoría resuelta.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	rows, err := uc.repo.ListWithCategory()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(rows))
	for _, row := range rows {
		resp := toProductResponse(&row.Product)
		if row.Category != nil {
			resp.Category = toCategoryResponse(row.Category)
		}
		out = append(out, *resp)
	}
	return out, nil
}

// Create crea un producto del vendor indicado. La categoría debe existir:
// ErrInvalidID si el identificador está malformado, ErrNotFound si no resuelve.
func (uc *ProductUseCase) Create(vendorID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if _, err := uuid.Parse(in.Category); err != nil {
		return nil, domain.ErrInvalidID
	}
	category, err := uc.categoryRepo.GetByID(in.Category)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	inStock := true
	if in.InStock != nil {
		inStock = *in.InStock
	}
	now := time.Now()
	product := &entity.Product{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Price:      in.Price,
		CategoryID: in.Category,
		InStock:    inStock,
		VendorID:   vendorID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update aplica los campos presentes sobre el producto. Verifica identificador,
// existencia y política de propiedad antes de persistir.
func (uc *ProductUseCase) Update(id string, actor Actor, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidID
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.canMutate(product) {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Category != nil {
		if _, err := uuid.Parse(*in.Category); err != nil {
			return nil, domain.ErrInvalidID
		}
		category, err := uc.categoryRepo.GetByID(*in.Category)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = *in.Category
	}
	if in.InStock != nil {
		product.InStock = *in.InStock
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto con los mismos chequeos de Update.
func (uc *ProductUseCase) Delete(id string, actor Actor) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidID
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if !actor.canMutate(product) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

// DeleteAll vacía la colección completa de productos (solo admin, lo impone la ruta).
func (uc *ProductUseCase) DeleteAll() error {
	return uc.repo.DeleteAll()
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Price:      p.Price,
		CategoryID: p.CategoryID,
		InStock:    p.InStock,
		Vendor:     p.VendorID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
