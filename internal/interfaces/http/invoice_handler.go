package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jaquiaro29/aqualife-api/internal/application/billing"
	"github.com/Jaquiaro29/aqualife-api/internal/application/dto"
)

// InvoiceHandler maneja las peticiones HTTP de facturación (protegido, admin).
type InvoiceHandler struct {
	uc *billing.InvoiceUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Create factura uno o varios pedidos de un cliente.
// POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := BindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	resp, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// CreateExternal registra una factura manual sin pedido asociado.
// POST /api/invoices/external
func (h *InvoiceHandler) CreateExternal(c *fiber.Ctx) error {
	var in dto.CreateExternalInvoiceRequest
	if err := BindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	resp, err := h.uc.CreateExternal(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID obtiene una factura con detalle e historial.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	resp, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// List lista facturas de un cliente.
// GET /api/invoices?cliente_id=...
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	customerID := c.Query("cliente_id")
	if customerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cliente_id requerido"})
	}
	resp, err := h.uc.ListByCustomer(c.Context(), customerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Cancel anula una factura con motivo obligatorio.
// POST /api/invoices/:id/cancel
func (h *InvoiceHandler) Cancel(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.CancelInvoiceRequest
	if err := BindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Cancel(c.Context(), GetActor(c), id, in.Reason); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Update aplica un patch parcial a una factura no anulada.
// PATCH /api/invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateInvoiceRequest
	if err := BindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	if err := h.uc.UpdateFields(c.Context(), GetActor(c), id, in.Patch); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
