package usecase

import (
	"context"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/jhoicas/udyog-sutra-api/internal/application/dto"
	"github.com/jhoicas/udyog-sutra-api/internal/domain"
	"github.com/jhoicas/udyog-sutra-api/internal/domain/entity"
	"github.com/jhoicas/udyog-sutra-api/internal/domain/repository"
)

// Claves que el cliente puede reenviar pero que nunca se guardan en la bolsa.
var reservedSettingKeys = []string{"user_id", "createdAt", "updatedAt"}

// SettingsUseCase preferencias por usuario.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve las preferencias guardadas o, si no hay fila, los valores por defecto sin persistirlos.
func (uc *SettingsUseCase) Get(ctx context.Context, userID string) (*dto.SettingsResponse, error) {
	if userID == "" {
		return nil, domain.Invalid("userId", "is required")
	}
	stored, err := uc.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		bag := entity.DefaultPreferences()
		bag["user_id"] = userID
		return &dto.SettingsResponse{Success: true, Settings: bag}, nil
	}
	return &dto.SettingsResponse{Success: true, Settings: settingsBag(stored)}, nil
}

// Update superpone patch a las preferencias. La primera vez guarda defaults ∪ patch.
func (uc *SettingsUseCase) Update(ctx context.Context, userID string, patch map[string]any) (*dto.SettingsResponse, error) {
	if userID == "" {
		return nil, domain.Invalid("userId", "is required")
	}
	clean := make(map[string]any, len(patch))
	for k, v := range patch {
		clean[k] = v
	}
	for _, k := range reservedSettingKeys {
		delete(clean, k)
	}
	if err := validatePreferences(clean); err != nil {
		return nil, err
	}

	initial := entity.MergePreferences(entity.DefaultPreferences(), clean)
	saved, err := uc.repo.Upsert(ctx, userID, initial, clean)
	if err != nil {
		return nil, err
	}
	return &dto.SettingsResponse{
		Success:  true,
		Message:  "Settings updated successfully",
		Settings: settingsBag(saved),
	}, nil
}

func validatePreferences(p map[string]any) error {
	if v, ok := p[entity.SettingLanguage]; ok {
		s, isStr := v.(string)
		if !isStr {
			return domain.Invalid(entity.SettingLanguage, "must be a string")
		}
		if _, err := language.Parse(s); err != nil {
			return domain.Invalid(entity.SettingLanguage, "must be a BCP 47 language tag")
		}
	}
	if v, ok := p[entity.SettingCurrency]; ok {
		s, isStr := v.(string)
		if !isStr {
			return domain.Invalid(entity.SettingCurrency, "must be a string")
		}
		if _, err := currency.ParseISO(s); err != nil {
			return domain.Invalid(entity.SettingCurrency, "must be an ISO 4217 code")
		}
	}
	if v, ok := p[entity.SettingNotifications]; ok {
		if _, isBool := v.(bool); !isBool {
			return domain.Invalid(entity.SettingNotifications, "must be a boolean")
		}
	}
	return nil
}

func settingsBag(s *entity.Settings) map[string]any {
	bag := entity.MergePreferences(entity.DefaultPreferences(), s.Preferences)
	bag["user_id"] = s.UserID
	bag["createdAt"] = s.CreatedAt.UTC().Format(time.RFC3339)
	bag["updatedAt"] = s.UpdatedAt.UTC().Format(time.RFC3339)
	return bag
}
