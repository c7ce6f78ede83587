package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados operativos de un pedido.
// pendiente → proceso → listo → entregado; cancelado es terminal.
// "entregado" solo es alcanzable desde "listo" (regla del panel admin).
const (
	OrderStatusPending    = "pendiente"
	OrderStatusProcessing = "proceso"
	OrderStatusReady      = "listo"
	OrderStatusDelivered  = "entregado"
	OrderStatusCancelled  = "cancelado"
)

// Estados financieros de un pedido.
const (
	FinancePendingCollection = "por_cobrar"
	FinancePendingConfirm    = "por_confirmar_pago"
	FinancePaid              = "pagado"
	FinanceCollected         = "cobrado"
)

// Tipos de servicio.
const (
	OrderTypeRefill   = "recarga"
	OrderTypeExchange = "cambio"
)

// Prioridades.
const (
	PriorityNormal = "normal"
	PriorityHigh   = "alta"
)

// Order representa un pedido de botellones de un cliente.
type Order struct {
	ID            string
	Number        int64 // consecutivo asignado por la secuencia "pedidos"
	CustomerID    string
	WithHandle    int // botellones con asa
	WithoutHandle int // botellones sin asa
	Type          string
	Priority      string
	UnitCost      decimal.Decimal // resuelto al crear el pedido (config global + prioridad)
	Total         decimal.Decimal
	Status        string
	FinanceStatus string
	Notes         string

	// Referencia de pago reportada por el cliente
	PaymentRef    string // últimos 6 dígitos de la referencia
	PayerBank     string
	PaidAmount    *decimal.Decimal
	PayLater      bool
	PaymentRefAt  *time.Time
	AssignedTo    string
	FirstResponse *time.Time // primera salida de "pendiente"

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalQuantity cantidad total de botellones del pedido.
func (o *Order) TotalQuantity() int {
	return o.WithHandle + o.WithoutHandle
}

// IsDelivered indica si el pedido está entregado o listo para entrega.
func (o *Order) IsDelivered() bool {
	return o.Status == OrderStatusDelivered || o.Status == OrderStatusReady
}

// IsSettled indica si el pedido está pagado o cobrado.
func (o *Order) IsSettled() bool {
	return o.FinanceStatus == FinancePaid || o.FinanceStatus == FinanceCollected
}

// CanTransitionTo valida una transición de estado operativo.
func (o *Order) CanTransitionTo(next string) bool {
	if o.Status == OrderStatusCancelled || o.Status == OrderStatusDelivered {
		return false
	}
	switch next {
	case OrderStatusCancelled:
		return true
	case OrderStatusProcessing:
		return o.Status == OrderStatusPending
	case OrderStatusReady:
		return o.Status == OrderStatusPending || o.Status == OrderStatusProcessing
	case OrderStatusDelivered:
		// entregado exige pasar antes por listo
		return o.Status == OrderStatusReady
	default:
		return false
	}
}
