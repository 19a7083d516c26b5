package repository

import (
	"context"

	"github.com/jhoicas/udyog-sutra-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	FindByKey(ctx context.Context, key entity.Key) (*entity.Supplier, error)
	Update(ctx context.Context, key entity.Key, patch entity.SupplierPatch) (UpdateResult, error)
	Delete(ctx context.Context, key entity.Key) (*entity.Supplier, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Supplier, error)
	List(ctx context.Context) ([]*entity.Supplier, error)
}
