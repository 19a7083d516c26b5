package usecase

import (
	"context"

	"github.com/jhoicas/udyog-sutra-api/internal/application/dto"
	"github.com/jhoicas/udyog-sutra-api/internal/domain/repository"
)

// HealthUseCase consulta el estado del store para /api/db-test.
type HealthUseCase struct {
	checker repository.HealthChecker
}

// NewHealthUseCase construye el caso de uso.
func NewHealthUseCase(checker repository.HealthChecker) *HealthUseCase {
	return &HealthUseCase{checker: checker}
}

// Status siempre devuelve un cuerpo; si el store falla, connected=false y el error para el log.
func (uc *HealthUseCase) Status(ctx context.Context) (dto.DBStatusResponse, error) {
	st, err := uc.checker.Status(ctx)
	if err != nil {
		return dto.DBStatusResponse{Connected: false, Collections: []string{}, Status: "error", Error: "store unavailable"}, err
	}
	tables := st.Tables
	if tables == nil {
		tables = []string{}
	}
	status := "Disconnected"
	if st.Connected {
		status = "Connected"
	}
	return dto.DBStatusResponse{
		Connected:   st.Connected,
		Database:    st.Database,
		Collections: tables,
		Status:      status,
	}, nil
}
