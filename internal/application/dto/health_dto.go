package dto

// DBStatusResponse salida de GET /api/db-test.
type DBStatusResponse struct {
	Connected   bool     `json:"connected"`
	Database    string   `json:"database"`
	Collections []string `json:"collections"`
	Status      string   `json:"status"`
	Error       string   `json:"error,omitempty"`
}
