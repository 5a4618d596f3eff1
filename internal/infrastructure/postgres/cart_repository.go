package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/store-api/internal/domain/entity"
	"github.com/jhoicas/store-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación del puerto CartRepository sobre PostgreSQL.
type CartRepo struct {
	pool *pgxpool.Pool
}

// NewCartRepository construye el adaptador de persistencia para el carrito.
func NewCartRepository(pool *pgxpool.Pool) *CartRepo {
	return &CartRepo{pool: pool}
}

// Create persiste un nuevo ítem del carrito.
func (r *CartRepo) Create(item *entity.CartItem) error {
	query := `
		INSERT INTO cart_items (id, product_id, user_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		item.ID, item.ProductID, nullString(item.UserID), item.Quantity,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cart item: %w", err)
	}
	return nil
}

// ListWithProduct lista todos los ítems con su producto resuelto (LEFT JOIN:
// un ítem cuyo producto fue borrado después igual aparece en el listado).
func (r *CartRepo) ListWithProduct() ([]repository.CartItemWithProduct, error) {
	query := `
		SELECT ci.id, ci.product_id, ci.user_id, ci.quantity, ci.created_at, ci.updated_at,
		       p.id, p.name, p.price, p.category_id, p.in_stock, p.vendor_id, p.created_at, p.updated_at
		FROM cart_items ci
		LEFT JOIN products p ON p.id = ci.product_id
		ORDER BY ci.created_at DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()

	var list []repository.CartItemWithProduct
	for rows.Next() {
		var row repository.CartItemWithProduct
		var p entity.Product
		var userID sql.NullString // NULL para ítems previos a la columna user_id
		var pID, pName, pCategory, pVendor sql.NullString
		var pPrice decimal.NullDecimal
		var pInStock sql.NullBool
		var pCreated, pUpdated sql.NullTime
		item := &row.Item
		if err := rows.Scan(
			&item.ID, &item.ProductID, &userID, &item.Quantity,
			&item.CreatedAt, &item.UpdatedAt,
			&pID, &pName, &pPrice, &pCategory, &pInStock, &pVendor,
			&pCreated, &pUpdated,
		); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		item.UserID = userID.String
		if pID.Valid {
			p.ID = pID.String
			p.Name = pName.String
			p.Price = pPrice.Decimal
			p.CategoryID = pCategory.String
			p.InStock = pInStock.Bool
			p.VendorID = pVendor.String
			p.CreatedAt = pCreated.Time
			p.UpdatedAt = pUpdated.Time
			row.Product = &p
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Delete elimina un ítem por ID. Devuelve false si no existía.
func (r *CartRepo) Delete(id string) (bool, error) {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM cart_items WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete cart item: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteAll vacía el carrito.
func (r *CartRepo) DeleteAll() error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM cart_items`)
	if err != nil {
		return fmt.Errorf("delete all cart items: %w", err)
	}
	return nil
}
