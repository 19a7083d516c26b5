package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/udyog-sutra-api/internal/application/dto"
	"github.com/jhoicas/udyog-sutra-api/internal/application/usecase"
	"github.com/jhoicas/udyog-sutra-api/internal/infrastructure/observability"
	"github.com/jhoicas/udyog-sutra-api/pkg/logger"
)

const productNotFound = "Product not found"

// ProductHandler maneja las peticiones HTTP de productos (protegido).
type ProductHandler struct {
	uc      *usecase.ProductUseCase
	log     *logger.Logger
	metrics *observability.Metrics
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, log *logger.Logger, metrics *observability.Metrics) *ProductHandler {
	return &ProductHandler{uc: uc, log: log.Component("products"), metrics: metrics}
}

// Create POST /api/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err, productNotFound)
	}
	h.metrics.IncrCreated("product")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/products (más recientes primero)
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, productNotFound)
	}
	return c.JSON(out)
}

// GetByID GET /api/products/:id
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err, productNotFound)
	}
	return c.JSON(out)
}

// Update PUT /api/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err, productNotFound)
	}
	return c.JSON(out)
}

// Delete DELETE /api/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err, productNotFound)
	}
	return c.JSON(out)
}
