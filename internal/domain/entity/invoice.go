package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura. "anulada" es terminal: una vez anulada, la cabecera
// no admite más mutaciones salvo el historial y el puntero al comprobante de
// anulación.
const (
	InvoiceStatusActive    = "activa"
	InvoiceStatusPending   = "pendiente"
	InvoiceStatusPaid      = "pagada"
	InvoiceStatusCancelled = "anulada"
)

// Invoice representa la cabecera de una factura.
type Invoice struct {
	ID         string
	Number     int64  // consecutivo asignado por la secuencia "facturacion"
	CustomerID string
	OrderIDs   []string // pedidos de origen; vacío en facturas externas
	OrderNums  []int64  // números de pedido (para mostrar sin resolver IDs)
	TaxPercent decimal.Decimal
	Subtotal   decimal.Decimal
	TaxTotal   decimal.Decimal
	Total      decimal.Decimal
	Status     string
	Notes      string
	External   bool   // factura manual, sin pedido asociado
	PDFURL     string // locator del PDF rendido (la representación es externa)
	XMLURL     string

	IssuedAt  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	// Campos de anulación (solo cuando Status == anulada)
	CancelledBy     string
	CancelledAt     *time.Time
	CancelledReason string
}

// IsCancelled indica si la factura está anulada (estado terminal).
func (i *Invoice) IsCancelled() bool {
	return i.Status == InvoiceStatusCancelled
}

// InvoiceItem línea de detalle de una factura. Inmutable una vez escrita:
// el detalle se crea junto con la cabecera y nunca se edita.
// Subtotal se guarda siempre en base imponible (sin IVA), aunque el precio
// unitario capturado lo incluyera.
type InvoiceItem struct {
	ID          string
	InvoiceID   string
	Description string
	ProductID   string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal // tal como se capturó (puede incluir IVA)
	Subtotal    decimal.Decimal // siempre sin IVA
	ItemTax     *decimal.Decimal
}
