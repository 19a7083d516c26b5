package repository

import (
	"context"

	"github.com/jhoicas/udyog-sutra-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, id string, patch entity.ProductPatch) (*entity.Product, error)
	Delete(ctx context.Context, id string) (*entity.Product, error)
}
