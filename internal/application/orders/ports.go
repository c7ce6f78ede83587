package orders

import (
	"context"

	"github.com/Jaquiaro29/aqualife-api/internal/domain/repository"
)

// TxRunner ejecuta una función con el repo de pedidos y las secuencias atados
// a una misma transacción: el consecutivo reservado y el pedido escrito se
// confirman o revierten juntos.
type TxRunner interface {
	RunOrders(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		seq repository.SequenceStore,
	) error) error
}
