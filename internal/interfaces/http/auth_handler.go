package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/udyog-sutra-api/internal/application/auth"
	"github.com/jhoicas/udyog-sutra-api/internal/application/dto"
	"github.com/jhoicas/udyog-sutra-api/internal/domain"
	"github.com/jhoicas/udyog-sutra-api/internal/infrastructure/observability"
	"github.com/jhoicas/udyog-sutra-api/pkg/logger"
)

// AuthHandler maneja registro, login y logout (rutas públicas).
type AuthHandler struct {
	uc      *auth.AuthUseCase
	log     *logger.Logger
	metrics *observability.Metrics
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger, metrics *observability.Metrics) *AuthHandler {
	return &AuthHandler{uc: uc, log: log.Component("auth"), metrics: metrics}
}

// Register godoc
// @Summary      Registrar usuario
// @Description  Crea un usuario con id USR#### y devuelve un token de sesión.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.RegisteredUser
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err, "")
	}
	h.metrics.IncrAuthEvent("register")
	h.log.Info().Str("user_id", out.UserID).Str("role", out.Role).Msg("usuario registrado")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Valida credenciales y devuelve token, expiración de sesión y permisos del rol.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrInactiveAccount) {
			h.metrics.IncrAuthEvent("login_failed")
		}
		return respondError(c, h.log, err, "")
	}
	h.metrics.IncrAuthEvent("login_ok")
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  Revoca el token enviado (si lo hay) hasta su expiración. Siempre responde 200.
// @Tags         auth
// @Produce      json
// @Param        Authorization  header    string  false  "Bearer <token>"
// @Success      200            {object}  dto.LogoutResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token, _ := bearerToken(c)
	out, err := h.uc.Logout(c.UserContext(), token)
	if err != nil {
		return respondError(c, h.log, err, "")
	}
	h.metrics.IncrAuthEvent("logout")
	return c.JSON(out)
}
