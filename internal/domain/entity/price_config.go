package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceConfig configuración global de precio del botellón.
// Es un registro singleton: hay exactamente una fila viva, administrada desde
// el panel; los pedidos leen el último snapshot al confirmarse.
type PriceConfig struct {
	Price     *decimal.Decimal // precio base por botellón; nil si aún no fue configurado
	PriceHigh *decimal.Decimal // precio para prioridad alta; nil = usar multiplicador
	UpdatedAt time.Time
}

// PriceConfigHistoryEntry registro inmutable de un cambio de precio.
type PriceConfigHistoryEntry struct {
	ID        string
	Price     *decimal.Decimal
	PriceHigh *decimal.Decimal
	Actor     Actor
	Timestamp time.Time
}
