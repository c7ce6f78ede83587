package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jaquiaro29/aqualife-api/internal/application/dto"
	"github.com/Jaquiaro29/aqualife-api/internal/application/orders"
)

// ConfigHandler expone la configuración global de precio del botellón.
type ConfigHandler struct {
	uc *orders.PriceConfigUseCase
}

// NewConfigHandler construye el handler.
func NewConfigHandler(uc *orders.PriceConfigUseCase) *ConfigHandler {
	return &ConfigHandler{uc: uc}
}

// GetPrice devuelve el snapshot vigente con precios por prioridad resueltos.
// GET /api/config/price
func (h *ConfigHandler) GetPrice(c *fiber.Ctx) error {
	resp, err := h.uc.Get(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// PriceHistory lista los cambios de precio (solo admin).
// GET /api/config/price/history
func (h *ConfigHandler) PriceHistory(c *fiber.Ctx) error {
	resp, err := h.uc.History(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// UpdatePrice actualiza el precio global (solo admin) y registra historial.
// PUT /api/config/price
func (h *ConfigHandler) UpdatePrice(c *fiber.Ctx) error {
	var in dto.UpdatePriceConfigRequest
	if err := BindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Update(c.Context(), GetActor(c), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
