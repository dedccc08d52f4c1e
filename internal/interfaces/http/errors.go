package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ceylonpepper/pepperworks-api/internal/application/dto"
	"github.com/ceylonpepper/pepperworks-api/internal/domain"
)

// fail traduce un error de dominio al status HTTP que corresponde y escribe
// el sobre de error estándar.
func fail(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(dto.Err(err.Error()))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrMaterialNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	// Las violaciones de reglas de negocio, incluida la unicidad
	// (NIC/email/tipo duplicado), responden 400.
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrNICAlreadyExists),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrAlreadyDelivered),
		errors.Is(err, domain.ErrOverDelivery),
		errors.Is(err, domain.ErrCannotDeleteDelivered):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
