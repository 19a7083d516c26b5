package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/udyog-sutra-api/internal/infrastructure/observability"
	"github.com/jhoicas/udyog-sutra-api/pkg/logger"
)

// RequestLogger registra cada petición (log estructurado + métricas por ruta).
// La ruta es el patrón registrado (/api/customers/:key) para no disparar la cardinalidad.
func RequestLogger(log *logger.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// El ErrorHandler escribe la respuesta; se invoca aquí para registrar el código final.
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				return herr
			}
		}
		elapsed := time.Since(start)
		status := c.Response().StatusCode()
		route := c.Route().Path

		if metrics != nil {
			metrics.ObserveRequest(c.Method(), route, status, elapsed)
		}
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Str("route", route).
			Int("status", status).
			Dur("latency", elapsed).
			Str("user_id", GetDisplayID(c)).
			Msg("request")
		return nil
	}
}
