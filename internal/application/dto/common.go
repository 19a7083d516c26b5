package dto

import (
	"bytes"
	"encoding/json"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// UpdateResponse salida de un PUT sobre un recurso.
type UpdateResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ModifiedCount int64  `json:"modifiedCount"`
}

// Present devuelve nil si el JSON crudo está ausente o es null; así un patch distingue "no enviado".
func Present(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	return trimmed
}
