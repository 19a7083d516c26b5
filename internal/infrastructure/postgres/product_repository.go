package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/udyog-sutra-api/internal/domain/entity"
	"github.com/jhoicas/udyog-sutra-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, category, price, stock, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	db  Querier
	now func() time.Time
}

// NewProductRepository construye el adaptador.
func NewProductRepository(db Querier) *ProductRepo {
	return &ProductRepo{db: db, now: time.Now}
}

func scanProduct(row rowScanner) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (id, name, category, price, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query, p.ID, p.Name, p.Category, p.Price, p.Stock, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return p, nil
}

// List productos, más recientes primero.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	out := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update aplica el patch y devuelve el producto resultante; (nil, nil) si no existe.
func (r *ProductRepo) Update(ctx context.Context, id string, patch entity.ProductPatch) (*entity.Product, error) {
	var set setList
	if patch.Name != nil {
		set.add("name", *patch.Name)
	}
	if patch.Category != nil {
		set.add("category", *patch.Category)
	}
	if patch.Price != nil {
		set.add("price", *patch.Price)
	}
	if patch.Stock != nil {
		set.add("stock", *patch.Stock)
	}
	set.add("updated_at", r.now())

	query, args := set.update("products", "id", id)
	p, err := scanProduct(r.db.QueryRow(ctx, query+` RETURNING `+productColumns, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

// Delete borra y devuelve el producto en una sola sentencia.
func (r *ProductRepo) Delete(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, `DELETE FROM products WHERE id = $1 RETURNING `+productColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete product: %w", err)
	}
	return p, nil
}
