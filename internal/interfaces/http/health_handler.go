package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/udyog-sutra-api/internal/application/usecase"
	"github.com/jhoicas/udyog-sutra-api/pkg/logger"
)

// Banner texto de GET /.
const Banner = "Udyog Sutra Backend Running 🚀"

// HealthHandler endpoints de salud (públicos).
type HealthHandler struct {
	uc      *usecase.HealthUseCase
	service string
	log     *logger.Logger
}

// NewHealthHandler construye el handler.
func NewHealthHandler(uc *usecase.HealthUseCase, service string, log *logger.Logger) *HealthHandler {
	return &HealthHandler{uc: uc, service: service, log: log.Component("health")}
}

// Root GET /
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(Banner)
}

// Health GET /health
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "service": h.service})
}

// DBTest godoc
// @Summary      Estado del almacenamiento
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.DBStatusResponse
// @Failure      500  {object}  dto.DBStatusResponse
// @Router       /api/db-test [get]
func (h *HealthHandler) DBTest(c *fiber.Ctx) error {
	status, err := h.uc.Status(c.UserContext())
	if err != nil {
		h.log.Error().Err(err).Msg("chequeo de almacenamiento falló")
		return c.Status(fiber.StatusInternalServerError).JSON(status)
	}
	return c.JSON(status)
}
