package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-cafe/internal/application/dto"
	"github.com/jhoicas/inventario-cafe/internal/domain"
)

// writeError traduce errores de dominio a respuestas HTTP con dto.ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrMissingFile):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "MISSING_DATA", Message: err.Error()})
	case errors.Is(err, domain.ErrCorruptState):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "CORRUPT_DATA", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
