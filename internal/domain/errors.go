package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Cada error debe poder distinguirse en la capa HTTP para mapearlo a su propio
// código y mensaje.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	// Facturación
	ErrEmptyInvoice      = errors.New("la factura debe tener al menos un item")
	ErrInvalidTaxPercent = errors.New("porcentaje de IVA fuera del rango [0, 100]")
	ErrOrderNotSettled   = errors.New("el pedido aún no está cobrado; no se puede facturar")
	ErrOrderNotDelivered = errors.New("el pedido no está entregado/listo; no se puede facturar")
	ErrMixedCustomers    = errors.New("todos los pedidos deben ser del mismo cliente")
	ErrAlreadyCancelled  = errors.New("la factura ya está anulada")
	ErrMissingReason     = errors.New("el motivo de anulación es obligatorio")
	ErrInvoiceLocked     = errors.New("no se puede editar una factura anulada")

	// Pedidos
	ErrEmptyOrder        = errors.New("la cantidad total de botellones debe ser mayor a 0")
	ErrOrderCancelled    = errors.New("el pedido está cancelado; no admite cambios")
	ErrInvalidTransition = errors.New("transición de estado de pedido no permitida")

	// Secuencias
	ErrSequenceUnavailable = errors.New("no se pudo reservar el número consecutivo")
)
