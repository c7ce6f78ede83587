package dto

import "github.com/shopspring/decimal"

// CreateOrderRequest body para POST /api/orders.
// La cantidad total (con asa + sin asa) debe ser mayor a 0.
type CreateOrderRequest struct {
	WithHandle    int    `json:"cantidad_con_asa" validate:"min=0"`
	WithoutHandle int    `json:"cantidad_sin_asa" validate:"min=0"`
	Type          string `json:"tipo" validate:"required,oneof=recarga cambio"`
	Priority      string `json:"prioridad" validate:"required,oneof=normal alta"`
	Notes         string `json:"observaciones,omitempty"`

	// Pago reportado al confirmar (opcional)
	PaymentRef string           `json:"ref_pago_ult6,omitempty"`
	PayerBank  string           `json:"banco_emisor,omitempty"`
	PaidAmount *decimal.Decimal `json:"monto_pagado,omitempty"`
	PayLater   bool             `json:"pagar_luego,omitempty"`
}

// UpdateOrderStatusRequest body para PUT /api/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"estado" validate:"required,oneof=pendiente proceso listo entregado cancelado"`
}

// RegisterPaymentRequest body para PUT /api/orders/:id/payment.
type RegisterPaymentRequest struct {
	PaymentRef string           `json:"ref_pago_ult6,omitempty"`
	PayerBank  string           `json:"banco_emisor,omitempty"`
	PaidAmount *decimal.Decimal `json:"monto_pagado,omitempty"`
	// Confirm marca el pago como cobrado (solo admin).
	Confirm bool `json:"confirmar,omitempty"`
}

// OrderResponse pedido en respuestas.
type OrderResponse struct {
	ID            string           `json:"id"`
	Number        int64            `json:"numero_pedido"`
	CustomerID    string           `json:"cliente_id"`
	WithHandle    int              `json:"cantidad_con_asa"`
	WithoutHandle int              `json:"cantidad_sin_asa"`
	Type          string           `json:"tipo"`
	Priority      string           `json:"prioridad"`
	UnitCost      decimal.Decimal  `json:"costo_unitario"`
	Total         decimal.Decimal  `json:"total"`
	Status        string           `json:"estado"`
	FinanceStatus string           `json:"estado_financiero"`
	Notes         string           `json:"observaciones,omitempty"`
	PaymentRef    string           `json:"ref_pago_ult6,omitempty"`
	PayerBank     string           `json:"banco_emisor,omitempty"`
	PaidAmount    *decimal.Decimal `json:"monto_pagado,omitempty"`
	CreatedAt     string           `json:"created_at"`
}

// PriceConfigResponse snapshot de la configuración de precios.
// Los precios por prioridad ya vienen resueltos para la UI del pedido.
type PriceConfigResponse struct {
	Price       *decimal.Decimal `json:"price,omitempty"`
	PriceHigh   *decimal.Decimal `json:"price_high,omitempty"`
	PriceNormal decimal.Decimal  `json:"precio_normal"`
	PriceAlta   decimal.Decimal  `json:"precio_alta"`
}

// PriceConfigHistoryResponse entrada del historial de cambios de precio.
type PriceConfigHistoryResponse struct {
	ID        string           `json:"id"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	PriceHigh *decimal.Decimal `json:"price_high,omitempty"`
	ActorID   string           `json:"actor_id"`
	ActorName string           `json:"actor_nombre,omitempty"`
	Timestamp string           `json:"timestamp"`
}

// UpdatePriceConfigRequest body para PUT /api/config/price.
// Solo actualiza los campos presentes (merge).
type UpdatePriceConfigRequest struct {
	Price     *decimal.Decimal `json:"price,omitempty"`
	PriceHigh *decimal.Decimal `json:"price_high,omitempty"`
}
