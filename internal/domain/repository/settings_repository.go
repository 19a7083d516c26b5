package repository

import (
	"context"

	"github.com/jhoicas/udyog-sutra-api/internal/domain/entity"
)

// SettingsRepository persistencia de preferencias por usuario.
type SettingsRepository interface {
	Get(ctx context.Context, userID string) (*entity.Settings, error)
	// Upsert inserta initial si no existe fila; si existe, superpone patch a lo guardado.
	Upsert(ctx context.Context, userID string, initial, patch map[string]any) (*entity.Settings, error)
}
