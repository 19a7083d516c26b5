package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/udyog-sutra-api/internal/application/dto"
	"github.com/jhoicas/udyog-sutra-api/internal/application/usecase"
	"github.com/jhoicas/udyog-sutra-api/internal/infrastructure/observability"
	"github.com/jhoicas/udyog-sutra-api/pkg/logger"
)

const customerNotFound = "Customer not found"

// CustomerHandler maneja las peticiones HTTP de clientes (protegido).
type CustomerHandler struct {
	uc      *usecase.CustomerUseCase
	log     *logger.Logger
	metrics *observability.Metrics
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, log *logger.Logger, metrics *observability.Metrics) *CustomerHandler {
	return &CustomerHandler{uc: uc, log: log.Component("customers"), metrics: metrics}
}

// Create godoc
// @Summary      Crear cliente
// @Description  Asigna CUST####. Si no llega createdBy, el dueño es el usuario del token.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateCustomerRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.CreateCustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in, GetDisplayID(c))
	if err != nil {
		return respondError(c, h.log, err, customerNotFound)
	}
	h.metrics.IncrCreated("customer")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByOwner godoc
// @Summary      Clientes de un usuario
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        ownerId  path   string  true  "user_id dueño"
// @Success      200      {array}  dto.CustomerResponse
// @Router       /api/customers/user/{ownerId} [get]
func (h *CustomerHandler) ListByOwner(c *fiber.Ctx) error {
	out, err := h.uc.ListByOwner(c.UserContext(), c.Params("ownerId"))
	if err != nil {
		return respondError(c, h.log, err, customerNotFound)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener cliente por id o customerId
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        key  path      string  true  "UUID o CUST####"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{key} [get]
func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("key"))
	if err != nil {
		return respondError(c, h.log, err, customerNotFound)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        key   path      string                     true  "UUID o CUST####"
// @Param        body  body      dto.UpdateCustomerRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.UpdateResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/customers/{key} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("key"), in, GetActor(c))
	if err != nil {
		return respondError(c, h.log, err, customerNotFound)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cliente
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        key  path      string  true  "UUID o CUST####"
// @Success      200  {object}  dto.DeleteCustomerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{key} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.UserContext(), c.Params("key"))
	if err != nil {
		return respondError(c, h.log, err, customerNotFound)
	}
	return c.JSON(out)
}
