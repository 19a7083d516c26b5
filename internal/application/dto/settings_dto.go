package dto

// SettingsResponse salida de GET/PUT /api/settings/:userId.
// Settings incluye user_id y, si existe fila, updatedAt.
type SettingsResponse struct {
	Success  bool           `json:"success"`
	Message  string         `json:"message,omitempty"`
	Settings map[string]any `json:"settings"`
}
