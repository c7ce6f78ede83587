package billing

import (
	"context"
	"time"

	"github.com/Jaquiaro29/aqualife-api/internal/application/dto"
	"github.com/Jaquiaro29/aqualife-api/internal/domain"
	"github.com/Jaquiaro29/aqualife-api/internal/domain/entity"
)

// GetByID obtiene una factura completa: cabecera, detalle e historial, más el
// snapshot del cliente que consume el renderizador de PDF.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, invoiceID string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	history, err := uc.invoiceRepo.GetHistoryByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	customer, err := uc.customerRepo.GetByID(ctx, inv.CustomerID)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, customer, items, history), nil
}

// ListByCustomer lista las facturas de un cliente (cabeceras, sin detalle).
func (uc *InvoiceUseCase) ListByCustomer(ctx context.Context, customerID string) ([]*dto.InvoiceResponse, error) {
	invoices, err := uc.invoiceRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, toInvoiceResponse(inv, nil, nil, nil))
	}
	return out, nil
}

func toInvoiceResponse(inv *entity.Invoice, customer *entity.Customer, items []*entity.InvoiceItem, history []*entity.InvoiceHistoryEntry) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:              inv.ID,
		Number:          inv.Number,
		CustomerID:      inv.CustomerID,
		OrderIDs:        inv.OrderIDs,
		OrderNums:       inv.OrderNums,
		TaxPercent:      inv.TaxPercent,
		Subtotal:        inv.Subtotal,
		TaxTotal:        inv.TaxTotal,
		Total:           inv.Total,
		Status:          inv.Status,
		Notes:           inv.Notes,
		External:        inv.External,
		PDFURL:          inv.PDFURL,
		XMLURL:          inv.XMLURL,
		IssuedAt:        inv.IssuedAt.Format(time.RFC3339),
		CancelledReason: inv.CancelledReason,
		Items:           make([]dto.InvoiceItemResponse, 0, len(items)),
	}
	if customer != nil {
		resp.CustomerName = customer.Name
		resp.CustomerAddress = customer.Address
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:          item.ID,
			Description: item.Description,
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
			ItemTax:     item.ItemTax,
		})
	}
	for _, h := range history {
		entry := dto.InvoiceHistoryResponse{
			ID:        h.ID,
			Kind:      h.Kind,
			ActorID:   h.Actor.ID,
			ActorName: h.Actor.DisplayName,
			Timestamp: h.Timestamp.Format(time.RFC3339),
			Reason:    h.Reason,
			Patch:     h.Patch,
		}
		resp.History = append(resp.History, entry)
	}
	return resp
}
