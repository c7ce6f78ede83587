package repository

import (
	"context"

	"github.com/Jaquiaro29/aqualife-api/internal/domain/entity"
)

// InvoiceRepository persistencia de facturas, su detalle y su historial.
// Los Get devuelven (nil, nil) cuando el registro no existe.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *entity.Invoice) error
	CreateItem(ctx context.Context, item *entity.InvoiceItem) error
	AppendHistory(ctx context.Context, entry *entity.InvoiceHistoryEntry) error

	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	GetItemsByInvoiceID(ctx context.Context, invoiceID string) ([]*entity.InvoiceItem, error)
	GetHistoryByInvoiceID(ctx context.Context, invoiceID string) ([]*entity.InvoiceHistoryEntry, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Invoice, error)

	Update(ctx context.Context, inv *entity.Invoice) error
	// UpdateFields aplica un patch parcial sobre la cabecera. Las columnas
	// permitidas las decide la implementación; claves desconocidas se ignoran.
	UpdateFields(ctx context.Context, id string, patch map[string]any) error
}
