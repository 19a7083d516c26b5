package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/udyog-sutra-api/internal/application/dto"
	"github.com/jhoicas/udyog-sutra-api/internal/application/idgen"
	"github.com/jhoicas/udyog-sutra-api/internal/domain"
	"github.com/jhoicas/udyog-sutra-api/internal/domain/entity"
	"github.com/jhoicas/udyog-sutra-api/internal/domain/repository"
)

// CustomerUseCase casos de uso para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
	ids  *idgen.Generator
	now  func() time.Time
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, ids *idgen.Generator) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, ids: ids, now: time.Now}
}

// Create crea un cliente. El dueño es createdBy o, si falta, actorID (user_id del token).
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest, actorID string) (*dto.CreateCustomerResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, domain.Invalid("name", "is required")
	}
	owner := in.CreatedBy
	if owner == "" {
		owner = actorID
	}
	customerID, err := uc.ids.Next(ctx, entity.SequenceCustomers)
	if err != nil {
		return nil, err
	}
	customer := &entity.Customer{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		Party:      partyFromRequest(in.PartyFields, owner),
		Audit: entity.Audit{
			Status:    entity.StatusActive,
			CreatedAt: uc.now(),
			CreatedBy: owner,
		},
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return &dto.CreateCustomerResponse{
		Success: true,
		Message: "Customer created successfully",
		Customer: dto.CustomerSummary{
			ID:         customer.ID,
			CustomerID: customer.CustomerID,
			Name:       customer.Name,
			Email:      customer.Email,
			Status:     customer.Status,
		},
	}, nil
}

// Get obtiene un cliente por id nativo o CUST0001.
func (uc *CustomerUseCase) Get(ctx context.Context, rawKey string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.FindByKey(ctx, entity.ParseKey(rawKey))
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	out := toCustomerResponse(c)
	return &out, nil
}

// Update actualización parcial de cliente.
// Un patch vacío no escribe y devuelve modifiedCount 0.
func (uc *CustomerUseCase) Update(ctx context.Context, rawKey string, in dto.UpdateCustomerRequest, actor Actor) (*dto.UpdateResponse, error) {
	if !validStatus(in.Status) {
		return nil, domain.Invalid("status", "must be active or inactive")
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, domain.Invalid("name", "cannot be empty")
	}
	key := entity.ParseKey(rawKey)
	patch := entity.CustomerPatch{PartyPatch: partyPatchFromRequest(in.PartyPatchFields)}
	if patch.Empty() {
		c, err := uc.repo.FindByKey(ctx, key)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, domain.ErrNotFound
		}
		return unchanged("Customer updated successfully"), nil
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
		Message:       "Customer updated successfully",
		ModifiedCount: res.ModifiedCount,
	}, nil
}

// Delete elimina el cliente y devuelve el registro borrado. No hay borrado en cascada.
func (uc *CustomerUseCase) Delete(ctx context.Context, rawKey string) (*dto.DeleteCustomerResponse, error) {
	c, err := uc.repo.Delete(ctx, entity.ParseKey(rawKey))
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.DeleteCustomerResponse{
		Success:         true,
		Message:         "Customer deleted successfully",
		DeletedCustomer: toCustomerResponse(c),
	}, nil
}

// ListByOwner clientes de un usuario, más recientes primero.
func (uc *CustomerUseCase) ListByOwner(ctx context.Context, ownerID string) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}
