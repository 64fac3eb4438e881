package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/cartaonline/carta-api/internal/application/dto"
	"github.com/cartaonline/carta-api/internal/domain"
)

const msgInvalidPayload = "Los datos proporcionados no son válidos"

// respondError traduce los errores de dominio al contrato HTTP:
// validación y conflictos de negocio -> 400, no encontrado -> 404, resto -> 500.
func respondError(c *fiber.Ctx, err error) error {
	var ve domain.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: msgInvalidPayload,
			Errors:  ve.Errors,
		})
	}
	var ce domain.ConflictError
	if errors.As(err, &ce) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: ce.Message})
	}
	var nf domain.NotFoundError
	if errors.As(err, &nf) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: nf.Message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
}

// paramID lee un parámetro de ruta numérico. false si no es un entero válido.
func paramID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// queryID lee un filtro numérico opcional de query string; 0 = sin filtro.
func queryID(c *fiber.Ctx, name string) int64 {
	return int64(c.QueryInt(name, 0))
}
