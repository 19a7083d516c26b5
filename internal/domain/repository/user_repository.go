package repository

import (
	"context"

	"github.com/jhoicas/udyog-sutra-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas devuelven (nil, nil) cuando no hay coincidencia.
type UserRepository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *entity.User) error
	FindByKey(ctx context.Context, key entity.Key) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, key entity.Key, patch entity.UserPatch) (UpdateResult, error)
	Delete(ctx context.Context, key entity.Key) (*entity.User, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
}
