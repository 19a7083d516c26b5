package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/udyog-sutra-api/internal/application/dto"
	"github.com/jhoicas/udyog-sutra-api/internal/application/usecase"
	"github.com/jhoicas/udyog-sutra-api/internal/infrastructure/observability"
	"github.com/jhoicas/udyog-sutra-api/pkg/logger"
)

const supplierNotFound = "Supplier not found"

// SupplierHandler maneja las peticiones HTTP de proveedores (protegido).
type SupplierHandler struct {
	uc      *usecase.SupplierUseCase
	log     *logger.Logger
	metrics *observability.Metrics
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase, log *logger.Logger, metrics *observability.Metrics) *SupplierHandler {
	return &SupplierHandler{uc: uc, log: log.Component("suppliers"), metrics: metrics}
}

// Create godoc
// @Summary      Crear proveedor
// @Description  Asigna SUPP####. Si no llega createdBy, el dueño es el usuario del token.
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateSupplierRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.CreateSupplierResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in, GetDisplayID(c))
	if err != nil {
		return respondError(c, h.log, err, supplierNotFound)
	}
	h.metrics.IncrCreated("supplier")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar todos los proveedores (admin)
// @Tags         suppliers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.SupplierResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, supplierNotFound)
	}
	return c.JSON(out)
}

// ListByOwner godoc
// @Summary      Proveedores de un usuario
// @Tags         suppliers
// @Produce      json
// @Security     BearerAuth
// @Param        ownerId  path   string  true  "user_id dueño"
// @Success      200      {array}  dto.SupplierResponse
// @Router       /api/suppliers/user/{ownerId} [get]
func (h *SupplierHandler) ListByOwner(c *fiber.Ctx) error {
	out, err := h.uc.ListByOwner(c.UserContext(), c.Params("ownerId"))
	if err != nil {
		return respondError(c, h.log, err, supplierNotFound)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener proveedor por id o supplierId
// @Tags         suppliers
// @Produce      json
// @Security     BearerAuth
// @Param        key  path      string  true  "UUID o SUPP####"
// @Success      200  {object}  dto.SupplierResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{key} [get]
func (h *SupplierHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("key"))
	if err != nil {
		return respondError(c, h.log, err, supplierNotFound)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar proveedor
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        key   path      string                     true  "UUID o SUPP####"
// @Param        body  body      dto.UpdateSupplierRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.UpdateResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/suppliers/{key} [put]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("key"), in, GetActor(c))
	if err != nil {
		return respondError(c, h.log, err, supplierNotFound)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar proveedor
// @Tags         suppliers
// @Produce      json
// @Security     BearerAuth
// @Param        key  path      string  true  "UUID o SUPP####"
// @Success      200  {object}  dto.DeleteSupplierResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{key} [delete]
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.UserContext(), c.Params("key"))
	if err != nil {
		return respondError(c, h.log, err, supplierNotFound)
	}
	return c.JSON(out)
}
