package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jaquiaro29/aqualife-api/internal/application/dto"
	"github.com/Jaquiaro29/aqualife-api/internal/application/orders"
)

// OrderHandler maneja las peticiones HTTP de pedidos (protegido).
type OrderHandler struct {
	uc *orders.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create confirma un pedido del cliente autenticado.
// POST /api/orders
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := BindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	resp, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID obtiene un pedido (propio, o cualquiera para admin).
// GET /api/orders/:id
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	resp, err := h.uc.GetByID(c.Context(), GetActor(c), IsAdmin(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// List lista los pedidos propios (o todos para admin).
// GET /api/orders
func (h *OrderHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.List(c.Context(), GetActor(c), IsAdmin(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// UpdateStatus aplica una transición de estado (solo admin).
// PUT /api/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateOrderStatusRequest
	if err := BindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	resp, err := h.uc.UpdateStatus(c.Context(), GetActor(c), id, in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// RegisterPayment adjunta una referencia de pago o confirma el cobro (admin).
// PUT /api/orders/:id/payment
func (h *OrderHandler) RegisterPayment(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.RegisterPaymentRequest
	if err := BindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	resp, err := h.uc.RegisterPayment(c.Context(), GetActor(c), IsAdmin(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
