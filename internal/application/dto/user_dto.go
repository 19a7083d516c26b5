package dto

import (
	"encoding/json"
	"time"
)

// RegisterRequest entrada para registro y para alta de usuarios por un admin.
type RegisterRequest struct {
	FullName     string          `json:"fullName"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Password     string          `json:"password"`
	Role         string          `json:"role"`
	BusinessName string          `json:"businessName"`
	Address      json.RawMessage `json:"address"`
}

// RegisteredUser resumen devuelto al crear un usuario. Token solo en registro.
type RegisteredUser struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	BusinessName string `json:"businessName"`
	UserID       string `json:"user_id"`
	Token        string `json:"token,omitempty"`
}

// CreateUserResponse salida de POST /api/users.
type CreateUserResponse struct {
	Message string         `json:"message"`
	User    RegisteredUser `json:"user"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionUser datos del usuario devueltos en login.
type SessionUser struct {
	ID           string          `json:"id"`
	FullName     string          `json:"fullName"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Role         string          `json:"role"`
	BusinessName string          `json:"businessName"`
	UserID       string          `json:"user_id"`
	Status       string          `json:"status"`
	Address      json.RawMessage `json:"address"`
}

// LoginResponse salida con token JWT, expiración de sesión y permisos derivados del rol.
type LoginResponse struct {
	Success        bool        `json:"success"`
	Message        string      `json:"message"`
	User           SessionUser `json:"user"`
	Token          string      `json:"token"`
	SessionTimeout time.Time   `json:"sessionTimeout"`
	LoginTime      time.Time   `json:"loginTime"`
	Permissions    []string    `json:"permissions"`
}

// LogoutResponse acuse de logout.
type LogoutResponse struct {
	Success    bool      `json:"success"`
	Message    string    `json:"message"`
	LogoutTime time.Time `json:"logoutTime"`
}

// UserResponse registro completo de usuario (sin password).
type UserResponse struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	FullName     string          `json:"fullName"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Role         string          `json:"role"`
	BusinessName string          `json:"businessName"`
	Address      json.RawMessage `json:"address"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	CreatedBy    string          `json:"createdBy"`
	UpdatedAt    *time.Time      `json:"updatedAt"`
	UpdatedBy    string          `json:"updatedBy"`
	DeletedAt    *time.Time      `json:"deletedAt"`
	DeletedBy    string          `json:"deletedBy"`
}

// UserListResponse salida de GET /api/users.
type UserListResponse struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Users   []UserResponse `json:"users"`
}

// UpdateUserRequest actualización parcial; campos nil no se tocan.
type UpdateUserRequest struct {
	FullName     *string         `json:"fullName"`
	Email        *string         `json:"email"`
	Phone        *string         `json:"phone"`
	Role         *string         `json:"role"`
	BusinessName *string         `json:"businessName"`
	Address      json.RawMessage `json:"address"`
	Status       *string         `json:"status"`
	UpdatedBy    *string         `json:"updatedBy"`
}

// DeleteUserResponse salida de DELETE con el registro eliminado.
type DeleteUserResponse struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message"`
	DeletedUser UserResponse `json:"deletedUser"`
}
