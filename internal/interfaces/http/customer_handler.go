package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jaquiaro29/aqualife-api/internal/application/billing"
	"github.com/Jaquiaro29/aqualife-api/internal/application/dto"
	"github.com/Jaquiaro29/aqualife-api/internal/domain/entity"
)

// CustomerHandler maneja el directorio de clientes (protegido, admin).
type CustomerHandler struct {
	uc *billing.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *billing.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// customerRequest body para crear clientes.
type customerRequest struct {
	Name    string `json:"nombre" validate:"required"`
	Address string `json:"direccion,omitempty"`
	Contact string `json:"contacto,omitempty"`
	Phone   string `json:"telefono,omitempty"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
}

// Create registra un cliente.
// POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in customerRequest
	if err := BindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	customer, err := h.uc.Create(c.Context(), &entity.Customer{
		Name:    in.Name,
		Address: in.Address,
		Contact: in.Contact,
		Phone:   in.Phone,
		Email:   in.Email,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// GetByID obtiene un cliente.
// GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	customer, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customer)
}

// List lista todos los clientes.
// GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
