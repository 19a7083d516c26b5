package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/udyog-sutra-api/internal/application/dto"
	"github.com/jhoicas/udyog-sutra-api/internal/domain"
	"github.com/jhoicas/udyog-sutra-api/internal/domain/entity"
	"github.com/jhoicas/udyog-sutra-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
	now  func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, now: time.Now}
}

// Create crea un nuevo producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, domain.Invalid("name", "is required")
	}
	if in.Price.IsNegative() {
		return nil, domain.Invalid("price", "cannot be negative")
	}
	if in.Stock < 0 {
		return nil, domain.Invalid("stock", "cannot be negative")
	}
	now := uc.now()
	product := &entity.Product{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Category:  in.Category,
		Price:     in.Price,
		Stock:     in.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	out := toProductResponse(product)
	return &out, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	if !isUUID(id) {
		return nil, domain.ErrNotFound
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	out := toProductResponse(product)
	return &out, nil
}

// Update actualiza los campos enviados y devuelve el producto resultante.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if !isUUID(id) {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, domain.Invalid("name", "cannot be empty")
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, domain.Invalid("price", "cannot be negative")
	}
	if in.Stock != nil && *in.Stock < 0 {
		return nil, domain.Invalid("stock", "cannot be negative")
	}
	product, err := uc.repo.Update(ctx, id, entity.ProductPatch{
		Name:     in.Name,
		Category: in.Category,
		Price:    in.Price,
		Stock:    in.Stock,
	})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	out := toProductResponse(product)
	return &out, nil
}

// List lista productos, más recientes primero.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return items, nil
}

// Delete elimina un producto y lo devuelve.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) (*dto.ProductResponse, error) {
	if !isUUID(id) {
		return nil, domain.ErrNotFound
	}
	product, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	out := toProductResponse(product)
	return &out, nil
}

// Los productos solo tienen id nativo; cualquier otra cosa no puede existir.
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
