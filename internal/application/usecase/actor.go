package usecase

import (
	"github.com/jhoicas/udyog-sutra-api/internal/application/dto"
	"github.com/jhoicas/udyog-sutra-api/internal/domain/entity"
)

// Actor usuario autenticado que ejecuta la operación.
type Actor struct {
	DisplayID string // USR0001
	Role      string
}

// IsAdmin indica si el actor tiene rol admin.
func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}

// stamp completa updatedBy con el actor si el cuerpo no lo trae.
func (a Actor) stamp(updatedBy *string) *string {
	if updatedBy != nil || a.DisplayID == "" {
		return updatedBy
	}
	id := a.DisplayID
	return &id
}

func unchanged(msg string) *dto.UpdateResponse {
	return &dto.UpdateResponse{Success: true, Message: msg, ModifiedCount: 0}
}
