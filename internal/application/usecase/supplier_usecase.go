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

// SupplierUseCase casos de uso para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
	ids  *idgen.Generator
	now  func() time.Time
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, ids *idgen.Generator) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, ids: ids, now: time.Now}
}

// Create crea un proveedor. Mismas reglas de dueño que clientes.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest, actorID string) (*dto.CreateSupplierResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, domain.Invalid("name", "is required")
	}
	if in.Rating != nil && in.Rating.IsNegative() {
		return nil, domain.Invalid("rating", "cannot be negative")
	}
	owner := in.CreatedBy
	if owner == "" {
		owner = actorID
	}
	supplierID, err := uc.ids.Next(ctx, entity.SequenceSuppliers)
	if err != nil {
		return nil, err
	}
	supplier := &entity.Supplier{
		ID:               uuid.NewString(),
		SupplierID:       supplierID,
		Party:            partyFromRequest(in.PartyFields, owner),
		BankDetails:      dto.Present(in.BankDetails),
		ProductsSupplied: in.ProductsSupplied,
		Audit: entity.Audit{
			Status:    entity.StatusActive,
			CreatedAt: uc.now(),
			CreatedBy: owner,
		},
	}
	if in.Rating != nil {
		supplier.Rating = *in.Rating
	}
	supplier.ApplySupplierDefaults()
	if err := uc.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return &dto.CreateSupplierResponse{
		Success: true,
		Message: "Supplier created successfully",
		Supplier: dto.SupplierSummary{
			ID:         supplier.ID,
			SupplierID: supplier.SupplierID,
			Name:       supplier.Name,
			Email:      supplier.Email,
			Status:     supplier.Status,
		},
	}, nil
}

// Get obtiene un proveedor por id nativo o SUPP0001.
func (uc *SupplierUseCase) Get(ctx context.Context, rawKey string) (*dto.SupplierResponse, error) {
	s, err := uc.repo.FindByKey(ctx, entity.ParseKey(rawKey))
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	out := toSupplierResponse(s)
	return &out, nil
}

// Update actualización parcial de proveedor.
// Un patch vacío no escribe y devuelve modifiedCount 0.
func (uc *SupplierUseCase) Update(ctx context.Context, rawKey string, in dto.UpdateSupplierRequest, actor Actor) (*dto.UpdateResponse, error) {
	if !validStatus(in.Status) {
		return nil, domain.Invalid("status", "must be active or inactive")
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, domain.Invalid("name", "cannot be empty")
	}
	if in.Rating != nil && in.Rating.IsNegative() {
		return nil, domain.Invalid("rating", "cannot be negative")
	}
	patch := entity.SupplierPatch{
		PartyPatch:       partyPatchFromRequest(in.PartyPatchFields),
		BankDetails:      dto.Present(in.BankDetails),
		Rating:           in.Rating,
		ProductsSupplied: in.ProductsSupplied,
	}
	key := entity.ParseKey(rawKey)
	if patch.Empty() {
		s, err := uc.repo.FindByKey(ctx, key)
		if err != nil {
			return nil, err
		}
		if s == nil {
			return nil, domain.ErrNotFound
		}
		return unchanged("Supplier updated successfully"), nil
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
		Message:       "Supplier updated successfully",
		ModifiedCount: res.ModifiedCount,
	}, nil
}

// Delete elimina el proveedor y devuelve el registro borrado.
func (uc *SupplierUseCase) Delete(ctx context.Context, rawKey string) (*dto.DeleteSupplierResponse, error) {
	s, err := uc.repo.Delete(ctx, entity.ParseKey(rawKey))
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.DeleteSupplierResponse{
		Success:         true,
		Message:         "Supplier deleted successfully",
		DeletedSupplier: toSupplierResponse(s),
	}, nil
}

// ListByOwner proveedores de un usuario, más recientes primero.
func (uc *SupplierUseCase) ListByOwner(ctx context.Context, ownerID string) ([]dto.SupplierResponse, error) {
	list, err := uc.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return toSupplierResponses(list), nil
}

// List todos los proveedores (uso de administración).
func (uc *SupplierUseCase) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toSupplierResponses(list), nil
}

func toSupplierResponses(list []*entity.Supplier) []dto.SupplierResponse {
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSupplierResponse(s))
	}
	return out
}
