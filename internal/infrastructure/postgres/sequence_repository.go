package postgres

import (
	"context"
	"fmt"

	"github.com/Jaquiaro29/aqualife-api/internal/domain"
	"github.com/Jaquiaro29/aqualife-api/internal/domain/repository"
)

var _ repository.SequenceStore = (*SequenceRepo)(nil)

// SequenceRepo implementa SequenceStore sobre PostgreSQL (usable con pool o tx).
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// AllocateNext reserva el siguiente consecutivo de una secuencia.
//
// El upsert hace leer-incrementar-escribir en una sola sentencia atómica:
// la primera llamada crea el contador en 1 y lo devuelve; las siguientes
// incrementan y devuelven el valor recién asignado. El lock de fila de
// PostgreSQL garantiza que dos llamadas concurrentes nunca reciben el mismo
// número. Dentro de una transacción, un rollback devuelve el número (la
// secuencia solo avanza con el commit).
func (r *SequenceRepo) AllocateNext(ctx context.Context, sequenceID string) (int64, error) {
	const q = `
		INSERT INTO counters (id, current, updated_at)
		VALUES ($1, 1, now())
		ON CONFLICT (id) DO UPDATE
		SET current = counters.current + 1, updated_at = now()
		RETURNING current`
	var current int64
	if err := r.q.QueryRow(ctx, q, sequenceID).Scan(&current); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", domain.ErrSequenceUnavailable, sequenceID, err)
	}
	return current, nil
}
