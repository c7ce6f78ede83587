package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Jaquiaro29/aqualife-api/internal/application/dto"
	"github.com/Jaquiaro29/aqualife-api/internal/domain"
	domainbilling "github.com/Jaquiaro29/aqualife-api/internal/domain/billing"
	"github.com/Jaquiaro29/aqualife-api/internal/domain/entity"
	"github.com/Jaquiaro29/aqualife-api/internal/domain/repository"
)

// reconcileTolerance tolerancia para cuadrar la suma del detalle contra el
// subtotal de la cabecera (ambos se derivan por caminos distintos).
var reconcileTolerance = decimal.New(1, -9) // 1e-9

// InvoiceUseCase crea, anula y consulta facturas.
// La creación corre completa dentro de una transacción: validación de pedidos,
// consecutivo, cabecera, detalle e historial se confirman o revierten juntos.
type InvoiceUseCase struct {
	txRunner     TxRunner
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
	orderRepo    repository.OrderRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	txRunner TxRunner,
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
	orderRepo repository.OrderRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		txRunner:     txRunner,
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		orderRepo:    orderRepo,
	}
}

// Create factura uno o varios pedidos de un cliente.
//
// Todas las validaciones corren antes de cualquier escritura. Los pedidos
// deben estar entregados (o listos) y cobrados (o pagados); con varios
// pedidos, todos del mismo cliente.
func (uc *InvoiceUseCase) Create(ctx context.Context, actor entity.Actor, in dto.CreateInvoiceRequest) (*dto.InvoiceCreatedResponse, error) {
	items, err := toItemInputs(in.Items)
	if err != nil {
		return nil, err
	}
	totals, err := domainbilling.CalcTotals(items, in.TaxPercent, in.PricesIncludeTax)
	if err != nil {
		return nil, err
	}

	customer, err := uc.customerRepo.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var resp *dto.InvoiceCreatedResponse
	err = uc.txRunner.RunBilling(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		orderRepo repository.OrderRepository,
		seq repository.SequenceStore,
	) error {
		// 1) Validar pedidos dentro de la misma transacción: así el estado
		// leído es el estado contra el que se factura.
		var orderNums []int64
		for _, orderID := range in.OrderIDs {
			order, err := orderRepo.GetByID(ctx, orderID)
			if err != nil {
				return err
			}
			if order == nil {
				return domain.ErrNotFound
			}
			if !order.IsDelivered() {
				return domain.ErrOrderNotDelivered
			}
			if !order.IsSettled() {
				return domain.ErrOrderNotSettled
			}
			if order.CustomerID != in.CustomerID {
				return domain.ErrMixedCustomers
			}
			orderNums = append(orderNums, order.Number)
		}

		// 2) Consecutivo de factura
		number, err := seq.AllocateNext(ctx, repository.SequenceInvoices)
		if err != nil {
			return err
		}

		// 3) Cabecera en estado activa
		inv := &entity.Invoice{
			ID:         uuid.New().String(),
			Number:     number,
			CustomerID: in.CustomerID,
			OrderIDs:   in.OrderIDs,
			OrderNums:  orderNums,
			TaxPercent: in.TaxPercent,
			Subtotal:   totals.Subtotal,
			TaxTotal:   totals.TaxTotal,
			Total:      totals.Total,
			Status:     entity.InvoiceStatusActive,
			Notes:      in.Notes,
			IssuedAt:   now,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := invoiceRepo.Create(ctx, inv); err != nil {
			return err
		}

		// 4) Detalle inmutable, con subtotal por línea siempre sin IVA
		if err := uc.writeItems(ctx, invoiceRepo, inv.ID, items, in.TaxPercent, in.PricesIncludeTax, totals.Subtotal); err != nil {
			return err
		}

		// 5) Historial de creación con los totales calculados
		if err := invoiceRepo.AppendHistory(ctx, &entity.InvoiceHistoryEntry{
			ID:        uuid.New().String(),
			InvoiceID: inv.ID,
			Kind:      entity.HistoryCreation,
			Actor:     actor,
			Timestamp: now,
			Totals: &entity.HistoryTotals{
				Subtotal:   totals.Subtotal,
				TaxTotal:   totals.TaxTotal,
				Total:      totals.Total,
				TaxPercent: in.TaxPercent,
				Status:     inv.Status,
			},
		}); err != nil {
			return err
		}

		resp = &dto.InvoiceCreatedResponse{
			ID:       inv.ID,
			Number:   inv.Number,
			Subtotal: totals.Subtotal,
			TaxTotal: totals.TaxTotal,
			Total:    totals.Total,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateExternal registra una factura manual (sin pedido), por ejemplo una
// emitida fuera del sistema; admite adjuntar los locators del PDF/XML.
func (uc *InvoiceUseCase) CreateExternal(ctx context.Context, actor entity.Actor, in dto.CreateExternalInvoiceRequest) (*dto.InvoiceCreatedResponse, error) {
	items, err := toItemInputs(in.Items)
	if err != nil {
		return nil, err
	}
	totals, err := domainbilling.CalcTotals(items, in.TaxPercent, in.PricesIncludeTax)
	if err != nil {
		return nil, err
	}

	customer, err := uc.customerRepo.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var resp *dto.InvoiceCreatedResponse
	err = uc.txRunner.RunBilling(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		_ repository.OrderRepository,
		seq repository.SequenceStore,
	) error {
		number, err := seq.AllocateNext(ctx, repository.SequenceInvoices)
		if err != nil {
			return err
		}
		inv := &entity.Invoice{
			ID:         uuid.New().String(),
			Number:     number,
			CustomerID: in.CustomerID,
			TaxPercent: in.TaxPercent,
			Subtotal:   totals.Subtotal,
			TaxTotal:   totals.TaxTotal,
			Total:      totals.Total,
			Status:     entity.InvoiceStatusActive,
			Notes:      in.Notes,
			External:   true,
			PDFURL:     in.PDFURL,
			XMLURL:     in.XMLURL,
			IssuedAt:   now,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := invoiceRepo.Create(ctx, inv); err != nil {
			return err
		}
		if err := uc.writeItems(ctx, invoiceRepo, inv.ID, items, in.TaxPercent, in.PricesIncludeTax, totals.Subtotal); err != nil {
			return err
		}
		if err := invoiceRepo.AppendHistory(ctx, &entity.InvoiceHistoryEntry{
			ID:        uuid.New().String(),
			InvoiceID: inv.ID,
			Kind:      entity.HistoryExternalCreation,
			Actor:     actor,
			Timestamp: now,
			Totals: &entity.HistoryTotals{
				Subtotal:   totals.Subtotal,
				TaxTotal:   totals.TaxTotal,
				Total:      totals.Total,
				TaxPercent: in.TaxPercent,
				Status:     inv.Status,
			},
		}); err != nil {
			return err
		}
		resp = &dto.InvoiceCreatedResponse{
			ID:       inv.ID,
			Number:   inv.Number,
			Subtotal: totals.Subtotal,
			TaxTotal: totals.TaxTotal,
			Total:    totals.Total,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// writeItems persiste el detalle y verifica que la suma de subtotales de línea
// cuadre con el subtotal de la cabecera. Ambos se derivan por caminos
// distintos (cabecera: total bruto / factor; líneas: una a una), así que el
// cuadre se comprueba en vez de asumirse.
func (uc *InvoiceUseCase) writeItems(
	ctx context.Context,
	invoiceRepo repository.InvoiceRepository,
	invoiceID string,
	items []domainbilling.ItemInput,
	taxPercent decimal.Decimal,
	pricesIncludeTax bool,
	headerSubtotal decimal.Decimal,
) error {
	var lineSum decimal.Decimal
	for _, item := range items {
		lineSubtotal := domainbilling.LineSubtotal(item, taxPercent, pricesIncludeTax)
		lineSum = lineSum.Add(lineSubtotal)
		if err := invoiceRepo.CreateItem(ctx, &entity.InvoiceItem{
			ID:          uuid.New().String(),
			InvoiceID:   invoiceID,
			Description: item.Description,
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    lineSubtotal,
			ItemTax:     item.ItemTax,
		}); err != nil {
			return err
		}
	}
	if lineSum.Sub(headerSubtotal).Abs().GreaterThan(reconcileTolerance) {
		return fmt.Errorf("detalle no cuadra con cabecera: suma líneas %s, subtotal %s", lineSum, headerSubtotal)
	}
	return nil
}

// toItemInputs valida y convierte las líneas del request.
func toItemInputs(items []dto.InvoiceItemRequest) ([]domainbilling.ItemInput, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyInvoice
	}
	out := make([]domainbilling.ItemInput, 0, len(items))
	for _, item := range items {
		if !item.Quantity.IsPositive() || item.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		if item.ItemTax != nil && item.ItemTax.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		out = append(out, domainbilling.ItemInput{
			Description: item.Description,
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			ItemTax:     item.ItemTax,
		})
	}
	return out, nil
}
