package billing

import (
	"context"

	"github.com/Jaquiaro29/aqualife-api/internal/domain/repository"
)

// TxRunner ejecuta una función con repos de facturación, pedidos y secuencias
// atados a una misma transacción. Si fn retorna error se hace rollback de todo:
// ninguna cabecera puede quedar sin su detalle ni con un consecutivo huérfano.
type TxRunner interface {
	RunBilling(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		orderRepo repository.OrderRepository,
		seq repository.SequenceStore,
	) error) error
}
