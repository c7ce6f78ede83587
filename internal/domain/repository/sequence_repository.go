package repository

import "context"

// Secuencias conocidas.
const (
	SequenceOrders   = "pedidos"
	SequenceInvoices = "facturacion"
)

// SequenceStore asigna números consecutivos por secuencia.
//
// AllocateNext debe ejecutar leer-incrementar-escribir como una sola operación
// atómica del almacén: dos llamadas concurrentes nunca reciben el mismo número
// y la primera llamada de una secuencia la inicializa (devuelve 1) sin paso de
// creación aparte. El reintento ante conflicto es responsabilidad del
// primitivo transaccional subyacente, no de este contrato; si se agota,
// la implementación devuelve domain.ErrSequenceUnavailable.
type SequenceStore interface {
	AllocateNext(ctx context.Context, sequenceID string) (int64, error)
}
