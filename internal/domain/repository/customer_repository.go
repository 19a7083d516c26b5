package repository

import (
	"context"

	"github.com/jhoicas/udyog-sutra-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByKey(ctx context.Context, key entity.Key) (*entity.Customer, error)
	Update(ctx context.Context, key entity.Key, patch entity.CustomerPatch) (UpdateResult, error)
	Delete(ctx context.Context, key entity.Key) (*entity.Customer, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Customer, error)
}
