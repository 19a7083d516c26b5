package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/udyog-sutra-api/internal/domain"
	"github.com/jhoicas/udyog-sutra-api/internal/domain/entity"
	"github.com/jhoicas/udyog-sutra-api/internal/domain/repository"
)

// UserRepository implementación en memoria de repository.UserRepository.
type UserRepository struct {
	mu    sync.RWMutex
	users []*entity.User // orden de inserción
	now   func() time.Time
}

// NewUserRepository crea el repositorio vacío.
func NewUserRepository() *UserRepository {
	return &UserRepository{now: time.Now}
}

var _ repository.UserRepository = (*UserRepository)(nil)

func cloneUser(u *entity.User) *entity.User {
	c := *u
	c.Address = cloneRaw(u.Address)
	c.Audit = cloneAudit(u.Audit)
	return &c
}

func (r *UserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.indexByEmail(email) >= 0, nil
}

func (r *UserRepository) indexByEmail(email string) int {
	for i, u := range r.users {
		if u.Email == email {
			return i
		}
	}
	return -1
}

func (r *UserRepository) indexByKey(key entity.Key) int {
	for i, u := range r.users {
		if matches(key, u.ID, u.UserID) {
			return i
		}
	}
	return -1
}

func (r *UserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexByEmail(user.Email) >= 0 {
		return domain.ErrEmailAlreadyExists
	}
	r.users = append(r.users, cloneUser(user))
	return nil
}

func (r *UserRepository) FindByKey(_ context.Context, key entity.Key) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexByKey(key); i >= 0 {
		return cloneUser(r.users[i]), nil
	}
	return nil, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexByEmail(email); i >= 0 {
		return cloneUser(r.users[i]), nil
	}
	return nil, nil
}

func (r *UserRepository) Update(_ context.Context, key entity.Key, patch entity.UserPatch) (repository.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexByKey(key)
	if i < 0 {
		return repository.UpdateResult{}, nil
	}
	u := r.users[i]
	if patch.Email != nil && *patch.Email != u.Email && r.indexByEmail(*patch.Email) >= 0 {
		return repository.UpdateResult{}, domain.ErrEmailAlreadyExists
	}
	if patch.FullName != nil {
		u.FullName = *patch.FullName
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Phone != nil {
		u.Phone = *patch.Phone
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	if patch.BusinessName != nil {
		u.BusinessName = *patch.BusinessName
	}
	if patch.Address != nil {
		u.Address = cloneRaw(patch.Address)
	}
	if patch.Status != nil {
		u.Status = *patch.Status
	}
	if patch.UpdatedBy != nil {
		u.UpdatedBy = *patch.UpdatedBy
	}
	now := r.now()
	u.UpdatedAt = &now
	return repository.UpdateResult{Matched: true, ModifiedCount: 1}, nil
}

func (r *UserRepository) Delete(_ context.Context, key entity.Key) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexByKey(key)
	if i < 0 {
		return nil, nil
	}
	u := r.users[i]
	r.users = append(r.users[:i], r.users[i+1:]...)
	return u, nil
}

func (r *UserRepository) ListByOwner(_ context.Context, ownerID string) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.User, 0)
	for _, u := range r.users {
		if u.CreatedBy == ownerID {
			out = append(out, cloneUser(u))
		}
	}
	newestFirst(out, func(u *entity.User) time.Time { return u.CreatedAt })
	return out, nil
}

func (r *UserRepository) List(_ context.Context) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		c := cloneUser(u)
		c.PasswordHash = ""
		out = append(out, c)
	}
	newestFirst(out, func(u *entity.User) time.Time { return u.CreatedAt })
	return out, nil
}
