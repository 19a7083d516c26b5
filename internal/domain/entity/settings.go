package entity

import "time"

// Claves de preferencias con valor por defecto.
const (
	SettingTheme         = "theme"
	SettingLanguage      = "language"
	SettingNotifications = "notifications"
	SettingCurrency      = "currency"
)

// Settings preferencias de un usuario (una fila por user_id).
type Settings struct {
	UserID      string
	Preferences map[string]any
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DefaultPreferences bolsa por defecto; se devuelve sin persistir hasta el primer update.
func DefaultPreferences() map[string]any {
	return map[string]any{
		SettingTheme:         "light",
		SettingLanguage:      "en",
		SettingNotifications: true,
		SettingCurrency:      "INR",
	}
}

// MergePreferences devuelve base con patch superpuesto (no modifica ninguno).
func MergePreferences(base, patch map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(patch))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range patch {
		out[k] = v
	}
	return out
}
