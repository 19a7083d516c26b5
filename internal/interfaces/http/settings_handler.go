package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/udyog-sutra-api/internal/application/usecase"
	"github.com/jhoicas/udyog-sutra-api/pkg/logger"
)

// SettingsHandler preferencias por usuario (protegido).
type SettingsHandler struct {
	uc  *usecase.SettingsUseCase
	log *logger.Logger
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase, log *logger.Logger) *SettingsHandler {
	return &SettingsHandler{uc: uc, log: log.Component("settings")}
}

// Get godoc
// @Summary      Preferencias del usuario
// @Description  Sin fila guardada devuelve los valores por defecto (no se persisten).
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "user_id"
// @Success      200     {object}  dto.SettingsResponse
// @Router       /api/settings/{userId} [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), userIDParam(c))
	if err != nil {
		return respondError(c, h.log, err, "Settings not found")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar preferencias
// @Description  Superpone las claves enviadas a las guardadas; crea la fila si no existe.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string          true  "user_id"
// @Param        body    body      map[string]any  true  "Claves a modificar"
// @Success      200     {object}  dto.SettingsResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/settings/{userId} [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	patch := map[string]any{}
	if err := c.BodyParser(&patch); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), userIDParam(c), patch)
	if err != nil {
		return respondError(c, h.log, err, "Settings not found")
	}
	return c.JSON(out)
}

// userIDParam copia el parámetro: c.Params apunta al buffer de fasthttp, que se reutiliza entre peticiones.
func userIDParam(c *fiber.Ctx) string {
	return utils.CopyString(c.Params("userId"))
}
