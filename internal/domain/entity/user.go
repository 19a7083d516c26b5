package entity

import (
	"encoding/json"
	"strings"
)

// Roles conocidos. Cualquier otro valor se trata como rol sin privilegios de borrado.
const (
	RoleRetailer = "retailer"
	RoleAdmin    = "admin"
)

// Permisos derivados del rol.
const (
	PermissionRead   = "read"
	PermissionWrite  = "write"
	PermissionDelete = "delete"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	UserID       string // USR0001
	FullName     string
	Email        string
	Phone        string
	PasswordHash string // bcrypt, nunca se serializa
	Role         string
	BusinessName string
	Address      json.RawMessage // objeto JSON, {} por defecto
	Audit
}

// PermissionsFor deriva los permisos de un rol: admin puede borrar, el resto lee y escribe.
func PermissionsFor(role string) []string {
	if role == RoleAdmin {
		return []string{PermissionRead, PermissionWrite, PermissionDelete}
	}
	return []string{PermissionRead, PermissionWrite}
}

// NameFromEmail devuelve la parte local del email (nombre por defecto en registro).
func NameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

// UserPatch campos opcionales de una actualización parcial de usuario.
type UserPatch struct {
	FullName     *string
	Email        *string
	Phone        *string
	Role         *string
	BusinessName *string
	Address      json.RawMessage
	Status       *string
	UpdatedBy    *string
}

// Empty indica si el patch no trae campos.
func (p UserPatch) Empty() bool {
	return p.FullName == nil && p.Email == nil && p.Phone == nil && p.Role == nil &&
		p.BusinessName == nil && p.Address == nil && p.Status == nil && p.UpdatedBy == nil
}
