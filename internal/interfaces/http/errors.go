package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockbridge-api/internal/application/dto"
	"github.com/jhoicas/stockbridge-api/internal/domain"
)

// Códigos de error de la API.
const (
	CodeNotFound          = "NOT_FOUND"
	CodeValidation        = "VALIDATION"
	CodeInvalidBody       = "INVALID_BODY"
	CodeEmptyCart         = "EMPTY_CART"
	CodeDeviceUnavailable = "DEVICE_UNAVAILABLE"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeInternal          = "INTERNAL"
)

// writeError traduce los errores de dominio a dto.ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, CodeInternal
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrSessionNotFound):
		status, code = fiber.StatusNotFound, CodeNotFound
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrUnsupportedFormat):
		status, code = fiber.StatusBadRequest, CodeValidation
	case errors.Is(err, domain.ErrEmptyCart):
		status, code = fiber.StatusConflict, CodeEmptyCart
	case errors.Is(err, domain.ErrDeviceUnavailable):
		status, code = fiber.StatusServiceUnavailable, CodeDeviceUnavailable
	case errors.Is(err, domain.ErrUnauthorized):
		status, code = fiber.StatusUnauthorized, CodeUnauthorized
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: message})
}

func invalidBody(c *fiber.Ctx) error {
	return badRequest(c, CodeInvalidBody, "cuerpo inválido")
}
