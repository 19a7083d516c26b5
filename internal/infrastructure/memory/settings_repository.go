package memory

import (
	"context"
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/udyog-sutra-api/internal/domain/entity"
	"github.com/jhoicas/udyog-sutra-api/internal/domain/repository"
)

// SettingsRepository implementación en memoria de repository.SettingsRepository.
type SettingsRepository struct {
	mu   sync.Mutex
	rows map[string]*entity.Settings
	now  func() time.Time
}

// NewSettingsRepository crea el repositorio vacío.
func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{rows: make(map[string]*entity.Settings), now: time.Now}
}

var _ repository.SettingsRepository = (*SettingsRepository)(nil)

func cloneSettings(s *entity.Settings) *entity.Settings {
	c := *s
	c.Preferences = maps.Clone(s.Preferences)
	return &c
}

func (r *SettingsRepository) Get(_ context.Context, userID string) (*entity.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.rows[userID]; ok {
		return cloneSettings(s), nil
	}
	return nil, nil
}

func (r *SettingsRepository) Upsert(_ context.Context, userID string, initial, patch map[string]any) (*entity.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	s, ok := r.rows[userID]
	if !ok {
		// La clave se guarda: no puede compartir memoria con el buffer de la petición.
		userID = strings.Clone(userID)
		s = &entity.Settings{UserID: userID, Preferences: maps.Clone(initial), CreatedAt: now}
		r.rows[userID] = s
	} else {
		s.Preferences = entity.MergePreferences(s.Preferences, patch)
	}
	s.UpdatedAt = now
	return cloneSettings(s), nil
}

// Len número de filas guardadas.
func (r *SettingsRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}
