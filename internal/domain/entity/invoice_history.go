package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de cambio registrados en el historial de una factura.
const (
	HistoryCreation         = "creacion"
	HistoryExternalCreation = "creacion_externa"
	HistoryCancellation     = "anulacion"
	HistoryUpdate           = "actualizacion"
)

// HistoryTotals totales capturados en una entrada de creación.
type HistoryTotals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	TaxTotal   decimal.Decimal `json:"impuestos"`
	Total      decimal.Decimal `json:"total"`
	TaxPercent decimal.Decimal `json:"iva_percent"`
	Status     string          `json:"estado"`
}

// InvoiceHistoryEntry entrada inmutable del historial de una factura.
// El diff es una unión etiquetada por Kind: creación lleva Totals, anulación
// lleva Reason y actualización lleva Patch. Nunca se mezclan.
type InvoiceHistoryEntry struct {
	ID        string
	InvoiceID string
	Kind      string
	Actor     Actor
	Timestamp time.Time

	Totals *HistoryTotals // Kind == creacion | creacion_externa
	Reason string         // Kind == anulacion
	Patch  map[string]any // Kind == actualizacion
}
