package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/udyog-sutra-api/internal/application/auth"
	"github.com/jhoicas/udyog-sutra-api/internal/application/dto"
	"github.com/jhoicas/udyog-sutra-api/internal/application/usecase"
	"github.com/jhoicas/udyog-sutra-api/internal/infrastructure/observability"
	"github.com/jhoicas/udyog-sutra-api/pkg/logger"
)

const userNotFound = "User not found"

// UserHandler maneja las peticiones HTTP de usuarios (protegido).
type UserHandler struct {
	uc      *usecase.UserUseCase
	authUC  *auth.AuthUseCase
	log     *logger.Logger
	metrics *observability.Metrics
}

// NewUserHandler construye el handler. El alta reutiliza el flujo de registro de auth.
func NewUserHandler(uc *usecase.UserUseCase, authUC *auth.AuthUseCase, log *logger.Logger, metrics *observability.Metrics) *UserHandler {
	return &UserHandler{uc: uc, authUC: authUC, log: log.Component("users"), metrics: metrics}
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.RegisterRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.CreateUserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.authUC.CreateUser(c.UserContext(), in, GetDisplayID(c))
	if err != nil {
		return respondError(c, h.log, err, userNotFound)
	}
	h.metrics.IncrCreated("user")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar usuarios (admin)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, userNotFound)
	}
	return c.JSON(out)
}

// ListByOwner godoc
// @Summary      Usuarios creados por un usuario
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        ownerId  path  string  true  "user_id del creador"
// @Success      200      {array}  dto.UserResponse
// @Router       /api/users/user/{ownerId} [get]
func (h *UserHandler) ListByOwner(c *fiber.Ctx) error {
	out, err := h.uc.ListByOwner(c.UserContext(), c.Params("ownerId"))
	if err != nil {
		return respondError(c, h.log, err, userNotFound)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener usuario por id o user_id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        key  path      string  true  "UUID o USR####"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{key} [get]
func (h *UserHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("key"))
	if err != nil {
		return respondError(c, h.log, err, userNotFound)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        key   path      string                 true  "UUID o USR####"
// @Param        body  body      dto.UpdateUserRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.UpdateResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{key} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("key"), in, GetActor(c))
	if err != nil {
		return respondError(c, h.log, err, userNotFound)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        key  path      string  true  "UUID o USR####"
// @Success      200  {object}  dto.DeleteUserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{key} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.UserContext(), c.Params("key"))
	if err != nil {
		return respondError(c, h.log, err, userNotFound)
	}
	h.log.Info().Str("key", c.Params("key")).Str("by", GetDisplayID(c)).Msg("usuario eliminado")
	return c.JSON(out)
}
