package http_test

import (
	"sync"
	"time"

	"github.com/jhoicas/store-api/internal/domain/entity"
	"github.com/jhoicas/store-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de la capa HTTP
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByResetToken(token string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ResetPasswordToken == token && u.ResetPasswordExpires.After(time.Now()) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

type memProductRepo struct {
	mu         sync.Mutex
	products   map[string]*entity.Product
	categories *memCategoryRepo
}

func newMemProductRepo(categories *memCategoryRepo) *memProductRepo {
	return &memProductRepo{products: map[string]*entity.Product{}, categories: categories}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	return r.Create(p)
}

func (r *memProductRepo) ListWithCategory() ([]repository.ProductWithCategory, error) {
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

func (r *memProductRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

func (r *memProductRepo) DeleteAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = map[string]*entity.Product{}
	return nil
}

func (r *memProductRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.products)
}

type memCategoryRepo struct {
	mu         sync.Mutex
	categories map[string]*entity.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{categories: map[string]*entity.Category{}}
}

func (r *memCategoryRepo) Create(c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.categories[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *memCategoryRepo) List() ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memCategoryRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.categories, id)
	return nil
}

func (r *memCategoryRepo) DeleteAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = map[string]*entity.Category{}
	return nil
}

type memCartRepo struct {
	mu       sync.Mutex
	items    map[string]*entity.CartItem
	products *memProductRepo
}

func newMemCartRepo(products *memProductRepo) *memCartRepo {
	return &memCartRepo{items: map[string]*entity.CartItem{}, products: products}
}

func (r *memCartRepo) Create(item *entity.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *memCartRepo) ListWithProduct() ([]repository.CartItemWithProduct, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]repository.CartItemWithProduct, 0, len(r.items))
	for _, item := range r.items {
		row := repository.CartItemWithProduct{Item: *item}
		if r.products != nil {
			if p, _ := r.products.GetByID(item.ProductID); p != nil {
				row.Product = p
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *memCartRepo) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func (r *memCartRepo) DeleteAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = map[string]*entity.CartItem{}
	return nil
}
