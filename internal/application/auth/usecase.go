package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/udyog-sutra-api/internal/application/dto"
	"github.com/jhoicas/udyog-sutra-api/internal/application/idgen"
	"github.com/jhoicas/udyog-sutra-api/internal/domain"
	"github.com/jhoicas/udyog-sutra-api/internal/domain/entity"
	"github.com/jhoicas/udyog-sutra-api/internal/domain/repository"
	"github.com/jhoicas/udyog-sutra-api/pkg/jwt"
)

// AuthUseCase casos de uso de autenticación: registro, login, logout y validación de tokens.
type AuthUseCase struct {
	userRepo repository.UserRepository
	ids      *idgen.Generator
	hasher   PasswordHasher
	tokens   *jwt.Issuer
	revoked  repository.TokenRevocationStore
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	ids *idgen.Generator,
	hasher PasswordHasher,
	tokens *jwt.Issuer,
	revoked repository.TokenRevocationStore,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		ids:      ids,
		hasher:   hasher,
		tokens:   tokens,
		revoked:  revoked,
		now:      time.Now,
	}
}

// Register crea un usuario y devuelve el resumen con un token de sesión.
// Devuelve domain.ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisteredUser, error) {
	user, err := uc.createUser(ctx, in, "")
	if err != nil {
		return nil, err
	}
	token, _, err := uc.tokens.Generate(user.ID, user.UserID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	out := toRegisteredUser(user)
	out.Token = token
	return &out, nil
}

// CreateUser alta de usuario hecha por otro usuario autenticado (sin token).
func (uc *AuthUseCase) CreateUser(ctx context.Context, in dto.RegisterRequest, createdBy string) (*dto.CreateUserResponse, error) {
	user, err := uc.createUser(ctx, in, createdBy)
	if err != nil {
		return nil, err
	}
	return &dto.CreateUserResponse{
		Message: "User created successfully",
		User:    toRegisteredUser(user),
	}, nil
}

func (uc *AuthUseCase) createUser(ctx context.Context, in dto.RegisterRequest, createdBy string) (*entity.User, error) {
	in.Email = strings.TrimSpace(in.Email)
	if in.Email == "" {
		return nil, domain.Invalid("email", "is required")
	}
	if in.Password == "" {
		return nil, domain.Invalid("password", "is required")
	}
	exists, err := uc.userRepo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	userID, err := uc.ids.Next(ctx, entity.SequenceUsers)
	if err != nil {
		return nil, err
	}

	fullName := in.FullName
	if fullName == "" {
		fullName = entity.NameFromEmail(in.Email)
	}
	role := in.Role
	if role == "" {
		role = entity.RoleRetailer
	}
	address := dto.Present(in.Address)
	if address == nil {
		address = json.RawMessage(`{}`)
	}

	user := &entity.User{
		ID:           uuid.NewString(),
		UserID:       userID,
		FullName:     fullName,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: hash,
		Role:         role,
		BusinessName: in.BusinessName,
		Address:      address,
		Audit: entity.Audit{
			Status:    entity.StatusActive,
			CreatedAt: uc.now(),
			CreatedBy: createdBy,
		},
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifica email/password y emite el token de sesión.
// Email desconocido y password incorrecto devuelven el mismo error para no filtrar qué emails existen.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	in.Email = strings.TrimSpace(in.Email)
	if in.Email == "" || in.Password == "" {
		return nil, domain.Invalid("email", "email and password are required")
	}
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if user.Status != entity.StatusActive {
		return nil, domain.ErrInactiveAccount
	}
	if !uc.hasher.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, expires, err := uc.tokens.Generate(user.ID, user.UserID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &dto.LoginResponse{
		Success: true,
		Message: "Login successful",
		User: dto.SessionUser{
			ID:           user.ID,
			FullName:     user.FullName,
			Email:        user.Email,
			Phone:        user.Phone,
			Role:         user.Role,
			BusinessName: user.BusinessName,
			UserID:       user.UserID,
			Status:       user.Status,
			Address:      user.Address,
		},
		Token:          token,
		SessionTimeout: expires,
		LoginTime:      uc.now(),
		Permissions:    entity.PermissionsFor(user.Role),
	}, nil
}

// Logout revoca el token presentado hasta su expiración. Sin token solo confirma.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) (*dto.LogoutResponse, error) {
	if token != "" {
		claims, err := uc.tokens.Parse(token)
		if err == nil {
			if err := uc.revoked.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
				return nil, fmt.Errorf("revoke token: %w", err)
			}
		}
	}
	return &dto.LogoutResponse{
		Success:    true,
		Message:    "Logout successful",
		LogoutTime: uc.now(),
	}, nil
}

// Authenticate valida un bearer token, comprueba que no esté revocado y que el usuario siga activo.
// Rol e id legible salen del registro actual, no del token.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*jwt.Claims, error) {
	claims, err := uc.tokens.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	revoked, err := uc.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, fmt.Errorf("%w: token revoked", domain.ErrUnauthorized)
	}
	user, err := uc.userRepo.FindByKey(ctx, entity.NativeKey(claims.UserID))
	if err != nil {
		return nil, fmt.Errorf("load session user: %w", err)
	}
	if user == nil || user.Status != entity.StatusActive {
		return nil, fmt.Errorf("%w: account unavailable", domain.ErrUnauthorized)
	}
	claims.Role = user.Role
	claims.DisplayID = user.UserID
	return claims, nil
}

func toRegisteredUser(u *entity.User) dto.RegisteredUser {
	return dto.RegisteredUser{
		ID:           u.ID,
		FullName:     u.FullName,
		Email:        u.Email,
		Role:         u.Role,
		BusinessName: u.BusinessName,
		UserID:       u.UserID,
	}
}
