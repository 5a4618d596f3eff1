package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/store-api/internal/domain/entity"
	"github.com/jhoicas/store-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, price, category_id, in_stock, vendor_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		product.ID, product.Name, product.Price, product.CategoryID,
		product.InStock, product.VendorID, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil, nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, price, category_id, in_stock, vendor_id, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Price, &p.CategoryID, &p.InStock, &p.VendorID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, price = $3, category_id = $4, in_stock = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		product.ID, product.Name, product.Price, product.CategoryID,
		product.InStock, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// ListWithCategory lista todos los productos con su categoría resuelta (LEFT JOIN:
// un producto cuya categoría fue borrada después igual aparece en el listado).
func (r *ProductRepo) ListWithCategory() ([]repository.ProductWithCategory, error) {
	query := `
		SELECT p.id, p.name, p.price, p.category_id, p.in_stock, p.vendor_id, p.created_at, p.updated_at,
		       c.id, c.name, c.description, c.created_at, c.updated_at
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		ORDER BY p.created_at DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []repository.ProductWithCategory
	for rows.Next() {
		var row repository.ProductWithCategory
		var cID, cName, cDesc sql.NullString
		var cCreated, cUpdated sql.NullTime
		p := &row.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Price, &p.CategoryID, &p.InStock, &p.VendorID,
			&p.CreatedAt, &p.UpdatedAt,
			&cID, &cName, &cDesc, &cCreated, &cUpdated,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if cID.Valid {
			row.Category = &entity.Category{
				ID:          cID.String,
				Name:        cName.String,
				Description: cDesc.String,
				CreatedAt:   cCreated.Time,
				UpdatedAt:   cUpdated.Time,
			}
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// DeleteAll vacía la tabla de productos.
func (r *ProductRepo) DeleteAll() error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM products`)
	if err != nil {
		return fmt.Errorf("delete all products: %w", err)
	}
	return nil
}
