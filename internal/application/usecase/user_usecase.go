package usecase

import (
	"context"

	"github.com/jhoicas/udyog-sutra-api/internal/application/dto"
	"github.com/jhoicas/udyog-sutra-api/internal/domain"
	"github.com/jhoicas/udyog-sutra-api/internal/domain/entity"
	"github.com/jhoicas/udyog-sutra-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios. El alta vive en auth.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Get obtiene un usuario por id nativo o USR0001.
func (uc *UserUseCase) Get(ctx context.Context, rawKey string) (*dto.UserResponse, error) {
	user, err := uc.repo.FindByKey(ctx, entity.ParseKey(rawKey))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	out := toUserResponse(user)
	return &out, nil
}

// Update aplica una actualización parcial. Devuelve ErrNotFound si la clave no coincide.
// Solo un admin puede cambiar el rol. Un patch vacío no escribe y devuelve modifiedCount 0.
func (uc *UserUseCase) Update(ctx context.Context, rawKey string, in dto.UpdateUserRequest, actor Actor) (*dto.UpdateResponse, error) {
	if in.Role != nil && !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if in.Email != nil && *in.Email == "" {
		return nil, domain.Invalid("email", "cannot be empty")
	}
	if !validStatus(in.Status) {
		return nil, domain.Invalid("status", "must be active or inactive")
	}
	patch := entity.UserPatch{
		FullName:     in.FullName,
		Email:        in.Email,
		Phone:        in.Phone,
		Role:         in.Role,
		BusinessName: in.BusinessName,
		Address:      dto.Present(in.Address),
		Status:       in.Status,
		UpdatedBy:    in.UpdatedBy,
	}
	key := entity.ParseKey(rawKey)
	if patch.Empty() {
		user, err := uc.repo.FindByKey(ctx, key)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, domain.ErrNotFound
		}
		return unchanged("User updated successfully"), nil
	}
	patch.UpdatedBy = actor.stamp(patch.UpdatedBy)
	res, err := uc.repo.Update(ctx, key, patch)
	if err != nil {
		return nil, err
	}
	if !res.Matched {
		return nil, domain.ErrNotFound
	}
	return &dto.UpdateResponse{
		Success:       true,
		Message:       "User updated successfully",
		ModifiedCount: res.ModifiedCount,
	}, nil
}

// Delete elimina el usuario y devuelve el registro borrado.
func (uc *UserUseCase) Delete(ctx context.Context, rawKey string) (*dto.DeleteUserResponse, error) {
	user, err := uc.repo.Delete(ctx, entity.ParseKey(rawKey))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.DeleteUserResponse{
		Success:     true,
		Message:     "User deleted successfully",
		DeletedUser: toUserResponse(user),
	}, nil
}

// ListByOwner usuarios creados por ownerID, más recientes primero.
func (uc *UserUseCase) ListByOwner(ctx context.Context, ownerID string) ([]dto.UserResponse, error) {
	list, err := uc.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// List todos los usuarios (sin hash de password).
func (uc *UserUseCase) List(ctx context.Context) (*dto.UserListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		users = append(users, toUserResponse(u))
	}
	return &dto.UserListResponse{Success: true, Count: len(users), Users: users}, nil
}
