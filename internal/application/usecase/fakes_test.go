package usecase

import (
	"sync"

	"github.com/jhoicas/store-api/internal/domain/entity"
	"github.com/jhoicas/store-api/internal/domain/repository"
)

type fakeProductRepo struct {
	mu         sync.Mutex
	products   map[string]*entity.Product
	categories *fakeCategoryRepo
}

func newFakeProductRepo(categories *fakeCategoryRepo) *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}, categories: categories}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	return r.Create(p)
}

func (r *fakeProductRepo) ListWithCategory() ([]repository.ProductWithCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]repository.ProductWithCategory, 0, len(r.products))
	for _, p := range r.products {
		row := repository.ProductWithCategory{Product: *p}
		if r.categories != nil {
			if c, _ := r.categories.GetByID(p.CategoryID); c != nil {
				row.Category = c
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) DeleteAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = map[string]*entity.Product{}
	return nil
}

func (r *fakeProductRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.products)
}

type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[string]*entity.Category{}}
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.categories[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeCategoryRepo) List() ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) DeleteAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = map[string]*entity.Category{}
	return nil
}

type fakeCartRepo struct {
	mu    sync.Mutex
	items map[string]*entity.CartItem
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: map[string]*entity.CartItem{}}
}

func (r *fakeCartRepo) Create(item *entity.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeCartRepo) ListWithProduct() ([]repository.CartItemWithProduct, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]repository.CartItemWithProduct, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, repository.CartItemWithProduct{Item: *item})
	}
	return out, nil
}

func (r *fakeCartRepo) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func (r *fakeCartRepo) DeleteAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = map[string]*entity.CartItem{}
	return nil
}
