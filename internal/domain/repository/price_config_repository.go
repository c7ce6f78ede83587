package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Jaquiaro29/aqualife-api/internal/domain/entity"
)

// PriceConfigRepository configuración global de precio del botellón.
// Get devuelve (nil, nil) si el precio aún no fue configurado; el caller debe
// caer al precio de respaldo.
type PriceConfigRepository interface {
	Get(ctx context.Context) (*entity.PriceConfig, error)
	// Upsert guarda los campos no nil sin tocar los demás (merge).
	Upsert(ctx context.Context, price, priceHigh *decimal.Decimal) error
	AppendHistory(ctx context.Context, entry *entity.PriceConfigHistoryEntry) error
	ListHistory(ctx context.Context) ([]*entity.PriceConfigHistoryEntry, error)
}
