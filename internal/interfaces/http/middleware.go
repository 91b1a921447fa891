package http

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/inventory-alerts-api/internal/application/dto"
	"github.com/jhoicas/inventory-alerts-api/internal/infrastructure/metrics"
	"github.com/jhoicas/inventory-alerts-api/pkg/logger"
)

// Locals keys y cabeceras compartidas por los middlewares.
const (
	LocalRequestID  = "request_id"
	LocalCompanyID  = "company_id"
	HeaderRequestID = "X-Request-ID"
)

// RequestID reutiliza X-Request-ID si el cliente lo envía; si no, genera un UUID.
// Lo deja en c.Locals y en la respuesta.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalRequestID, id)
		c.Set(HeaderRequestID, id)
		return c.Next()
	}
}

// RequestLogger registra cada petición al terminar: método, ruta, estado, latencia y request id.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ev.Str("request_id", GetRequestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("petición HTTP")
		return err
	}
}

// Metrics mide cada petición con el patrón de la ruta como etiqueta.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		m.ObserveHTTP(c.Method(), c.Route().Path, status, time.Since(start))
		return err
	}
}

// companyFinder es el contrato mínimo para validar la empresa de la ruta.
// Lo implementa *usecase.CompanyUseCase.
type companyFinder interface {
	GetByID(ctx context.Context, id int64) (*dto.CompanyResponse, error)
}

// CompanyScope valida :companyId, comprueba que la empresa exista y la deja en c.Locals.
// Todas las rutas bajo /companies/:companyId pasan por aquí.
//   - 400 si el id no es un entero positivo
//   - 404 si la empresa no existe
func CompanyScope(finder companyFinder, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "companyId")
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "companyId inválido"})
		}
		company, err := finder.GetByID(c.UserContext(), id)
		if err != nil {
			return respondError(c, log, err)
		}
		if company == nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
		}
		c.Locals(LocalCompanyID, id)
		return c.Next()
	}
}

// GetCompanyID devuelve el CompanyID validado por CompanyScope (0 si no pasó por él).
func GetCompanyID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalCompanyID).(int64)
	return id
}

// GetRequestID devuelve el request id (después de RequestID).
func GetRequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalRequestID).(string)
	return id
}

// parseIDParam interpreta un parámetro de ruta como ID positivo.
func parseIDParam(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// pageParams lee limit/offset con los límites de la API.
func pageParams(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	offset = c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
