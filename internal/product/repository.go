// AngelaMos | 2026
// repository.go

package product

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/templates/campus-api/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
	Create(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const productColumns = `
	id, name, description, price::float8 AS price, created_at, updated_at`

func (r *repository) List(ctx context.Context) ([]Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`

	products := []Product{}
	if err := r.db.SelectContext(ctx, &products, query); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return products, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	var product Product
	if err := r.db.GetContext(ctx, &product, query, id); err != nil {
		return nil, fmt.Errorf("get product: %w", core.MapDBError(err))
	}

	return &product, nil
}

func (r *repository) Create(ctx context.Context, product *Product) error {
	query := `
		INSERT INTO products (name, description, price)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		product.Name,
		product.Description,
		product.Price,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create product: %w", core.MapDBError(err))
	}

	return nil
}

func (r *repository) Update(ctx context.Context, product *Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
	).Scan(&product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update product: %w", core.MapDBError(err))
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete product: %w", core.ErrNotFound)
	}

	return nil
}
