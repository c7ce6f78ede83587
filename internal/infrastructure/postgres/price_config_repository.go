package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Jaquiaro29/aqualife-api/internal/domain/entity"
	"github.com/Jaquiaro29/aqualife-api/internal/domain/repository"
)

var _ repository.PriceConfigRepository = (*PriceConfigRepo)(nil)

// priceConfigID la configuración de precio es una fila singleton.
const priceConfigID = "botellon"

// PriceConfigRepo implementación de PriceConfigRepository (usable con pool o tx).
type PriceConfigRepo struct {
	q Querier
}

// NewPriceConfigRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPriceConfigRepository(q Querier) *PriceConfigRepo {
	return &PriceConfigRepo{q: q}
}

// Get devuelve el snapshot vigente. (nil, nil) si aún no fue configurado.
func (r *PriceConfigRepo) Get(ctx context.Context) (*entity.PriceConfig, error) {
	const q = `SELECT price, price_high, updated_at FROM price_config WHERE id = $1`
	var cfg entity.PriceConfig
	var price, priceHigh decimal.NullDecimal
	err := r.q.QueryRow(ctx, q, priceConfigID).Scan(&price, &priceHigh, &cfg.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get price config: %w", err)
	}
	if price.Valid {
		cfg.Price = &price.Decimal
	}
	if priceHigh.Valid {
		cfg.PriceHigh = &priceHigh.Decimal
	}
	return &cfg, nil
}

// Upsert guarda los campos no nil sin tocar los demás (merge, como un
// setDoc con merge sobre el documento de configuración).
func (r *PriceConfigRepo) Upsert(ctx context.Context, price, priceHigh *decimal.Decimal) error {
	const q = `
		INSERT INTO price_config (id, price, price_high, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (id) DO UPDATE
		SET price      = COALESCE($2, price_config.price),
		    price_high = COALESCE($3, price_config.price_high),
		    updated_at = now()`
	_, err := r.q.Exec(ctx, q, priceConfigID, toNullDecimal(price), toNullDecimal(priceHigh))
	if err != nil {
		return fmt.Errorf("upsert price config: %w", err)
	}
	return nil
}

// AppendHistory registra un cambio de precio en el historial append-only.
func (r *PriceConfigRepo) AppendHistory(ctx context.Context, entry *entity.PriceConfigHistoryEntry) error {
	const q = `
		INSERT INTO price_config_history (id, price, price_high, actor_id, actor_email, actor_nombre, ts)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, q,
		entry.ID, toNullDecimal(entry.Price), toNullDecimal(entry.PriceHigh),
		entry.Actor.ID, nullIfEmpty(entry.Actor.Email), nullIfEmpty(entry.Actor.DisplayName),
		entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert price config history: %w", err)
	}
	return nil
}

// ListHistory lista los cambios de precio, más recientes primero.
func (r *PriceConfigRepo) ListHistory(ctx context.Context) ([]*entity.PriceConfigHistoryEntry, error) {
	const q = `
		SELECT id, price, price_high, actor_id, COALESCE(actor_email, ''), COALESCE(actor_nombre, ''), ts
		FROM price_config_history ORDER BY ts DESC`
	rows, err := r.q.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list price config history: %w", err)
	}
	defer rows.Close()
	var list []*entity.PriceConfigHistoryEntry
	for rows.Next() {
		var entry entity.PriceConfigHistoryEntry
		var price, priceHigh decimal.NullDecimal
		if err := rows.Scan(&entry.ID, &price, &priceHigh,
			&entry.Actor.ID, &entry.Actor.Email, &entry.Actor.DisplayName, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("scan price config history: %w", err)
		}
		if price.Valid {
			entry.Price = &price.Decimal
		}
		if priceHigh.Valid {
			entry.PriceHigh = &priceHigh.Decimal
		}
		list = append(list, &entry)
	}
	return list, rows.Err()
}
