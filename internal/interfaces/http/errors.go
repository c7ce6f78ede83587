package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Jaquiaro29/aqualife-api/internal/application/dto"
	"github.com/Jaquiaro29/aqualife-api/internal/domain"
)

// errorStatus mapea cada error de dominio a su código HTTP y código de API.
// Cada error del dominio debe quedar distinguible para la UI.
var errorStatus = map[error]struct {
	status int
	code   string
}{
	domain.ErrNotFound:            {fiber.StatusNotFound, "NOT_FOUND"},
	domain.ErrInvalidInput:        {fiber.StatusBadRequest, "VALIDATION"},
	domain.ErrForbidden:           {fiber.StatusForbidden, "FORBIDDEN"},
	domain.ErrConflict:            {fiber.StatusConflict, "CONFLICT"},
	domain.ErrEmptyInvoice:        {fiber.StatusBadRequest, "EMPTY_INVOICE"},
	domain.ErrInvalidTaxPercent:   {fiber.StatusBadRequest, "INVALID_TAX_PERCENT"},
	domain.ErrOrderNotSettled:     {fiber.StatusConflict, "ORDER_NOT_SETTLED"},
	domain.ErrOrderNotDelivered:   {fiber.StatusConflict, "ORDER_NOT_DELIVERED"},
	domain.ErrMixedCustomers:      {fiber.StatusBadRequest, "MIXED_CUSTOMERS"},
	domain.ErrAlreadyCancelled:    {fiber.StatusConflict, "ALREADY_CANCELLED"},
	domain.ErrMissingReason:       {fiber.StatusBadRequest, "MISSING_REASON"},
	domain.ErrInvoiceLocked:       {fiber.StatusConflict, "INVOICE_LOCKED"},
	domain.ErrEmptyOrder:          {fiber.StatusBadRequest, "EMPTY_ORDER"},
	domain.ErrOrderCancelled:      {fiber.StatusConflict, "ORDER_CANCELLED"},
	domain.ErrInvalidTransition:   {fiber.StatusConflict, "INVALID_TRANSITION"},
	domain.ErrSequenceUnavailable: {fiber.StatusServiceUnavailable, "SEQUENCE_UNAVAILABLE"},
}

// respondError traduce un error de caso de uso a la respuesta HTTP.
func respondError(c *fiber.Ctx, err error) error {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	var fErr *fiber.Error
	if errors.As(err, &fErr) {
		return c.Status(fErr.Code).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: fErr.Message})
	}
	for sentinel, m := range errorStatus {
		if errors.Is(err, sentinel) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: sentinel.Error()})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
