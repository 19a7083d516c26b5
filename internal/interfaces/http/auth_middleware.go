package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/udyog-sutra-api/internal/application/dto"
	"github.com/jhoicas/udyog-sutra-api/internal/application/usecase"
	"github.com/jhoicas/udyog-sutra-api/pkg/jwt"
	"github.com/jhoicas/udyog-sutra-api/pkg/logger"
)

// Locals keys con los datos del token.
const (
	LocalUserID    = "user_id"    // id nativo
	LocalDisplayID = "display_id" // USR0001
	LocalRole      = "role"
)

// Authenticator valida un bearer token (firma, expiración y revocación).
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*jwt.Claims, error)
}

// bearerToken extrae el token del header Authorization; ok=false si falta o no es Bearer.
func bearerToken(c *fiber.Ctx) (string, bool) {
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	tok := strings.TrimSpace(parts[1])
	return tok, tok != ""
}

// AuthMiddleware valida el Bearer Token JWT y carga id, id legible y rol en c.Locals.
func AuthMiddleware(authn Authenticator, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get(fiber.HeaderAuthorization) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		tokenString, ok := bearerToken(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		claims, err := authn.Authenticate(c.UserContext(), tokenString)
		if err != nil {
			return respondError(c, log, err, "")
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalDisplayID, claims.DisplayID)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// RequireRole permite el paso solo a los roles indicados. Debe ir después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "permisos insuficientes"})
	}
}

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}

// GetUserID devuelve el id nativo del usuario autenticado.
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetDisplayID devuelve el id legible (USR0001) del usuario autenticado.
func GetDisplayID(c *fiber.Ctx) string {
	return localString(c, LocalDisplayID)
}

// GetRole devuelve el rol del usuario autenticado.
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

// GetActor datos del usuario autenticado para los casos de uso.
func GetActor(c *fiber.Ctx) usecase.Actor {
	return usecase.Actor{DisplayID: GetDisplayID(c), Role: GetRole(c)}
}
