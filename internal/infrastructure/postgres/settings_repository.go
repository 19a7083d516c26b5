package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/udyog-sutra-api/internal/domain/entity"
	"github.com/jhoicas/udyog-sutra-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo preferencias por usuario en una columna jsonb.
type SettingsRepo struct {
	db  Querier
	now func() time.Time
}

// NewSettingsRepository construye el adaptador.
func NewSettingsRepository(db Querier) *SettingsRepo {
	return &SettingsRepo{db: db, now: time.Now}
}

func scanSettings(row rowScanner) (*entity.Settings, error) {
	var (
		s   entity.Settings
		raw []byte
	)
	if err := row.Scan(&s.UserID, &raw, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &s.Preferences); err != nil {
		return nil, fmt.Errorf("decode preferences: %w", err)
	}
	if s.Preferences == nil {
		s.Preferences = map[string]any{}
	}
	return &s, nil
}

// Get devuelve (nil, nil) si el usuario nunca guardó preferencias.
func (r *SettingsRepo) Get(ctx context.Context, userID string) (*entity.Settings, error) {
	s, err := scanSettings(r.db.QueryRow(ctx,
		`SELECT user_id, preferences, created_at, updated_at FROM settings WHERE user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return s, nil
}

// Upsert inserta initial o superpone patch con jsonb || en una sola sentencia.
func (r *SettingsRepo) Upsert(ctx context.Context, userID string, initial, patch map[string]any) (*entity.Settings, error) {
	initialJSON, err := json.Marshal(initial)
	if err != nil {
		return nil, fmt.Errorf("encode preferences: %w", err)
	}
	patchJSON, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("encode preferences: %w", err)
	}
	query := `
		INSERT INTO settings (user_id, preferences, created_at, updated_at)
		VALUES ($1, $2::jsonb, $3, $3)
		ON CONFLICT (user_id) DO UPDATE
			SET preferences = settings.preferences || $4::jsonb, updated_at = $3
		RETURNING user_id, preferences, created_at, updated_at`
	s, err := scanSettings(r.db.QueryRow(ctx, query, userID, initialJSON, r.now(), patchJSON))
	if err != nil {
		return nil, fmt.Errorf("upsert settings: %w", err)
	}
	return s, nil
}
