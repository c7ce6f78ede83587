package billing

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Jaquiaro29/aqualife-api/internal/domain"
	"github.com/Jaquiaro29/aqualife-api/internal/domain/entity"
	"github.com/Jaquiaro29/aqualife-api/internal/domain/repository"
)

// Campos de cabecera editables vía patch. El estado nunca puede llevarse a
// "anulada" por esta vía: para eso existe Cancel, que deja rastro del motivo.
var patchableFields = map[string]bool{
	"estado":  true,
	"notas":   true,
	"pdf_url": true,
	"xml_url": true,
}

// Cancel anula una factura. La anulación es terminal: después de esto solo el
// historial y el puntero al comprobante de anulación admiten escritura.
func (uc *InvoiceUseCase) Cancel(ctx context.Context, actor entity.Actor, invoiceID, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return domain.ErrMissingReason
	}
	now := time.Now()
	return uc.txRunner.RunBilling(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		_ repository.OrderRepository,
		_ repository.SequenceStore,
	) error {
		inv, err := invoiceRepo.GetByID(ctx, invoiceID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		if inv.IsCancelled() {
			return domain.ErrAlreadyCancelled
		}

		inv.Status = entity.InvoiceStatusCancelled
		inv.CancelledBy = actor.ID
		inv.CancelledAt = &now
		inv.CancelledReason = reason
		inv.UpdatedAt = now
		if err := invoiceRepo.Update(ctx, inv); err != nil {
			return err
		}

		return invoiceRepo.AppendHistory(ctx, &entity.InvoiceHistoryEntry{
			ID:        uuid.New().String(),
			InvoiceID: inv.ID,
			Kind:      entity.HistoryCancellation,
			Actor:     actor,
			Timestamp: now,
			Reason:    reason,
		})
	})
}

// UpdateFields aplica un patch parcial sobre una factura no anulada y deja la
// entrada de historial con el diff aplicado.
func (uc *InvoiceUseCase) UpdateFields(ctx context.Context, actor entity.Actor, invoiceID string, patch map[string]any) error {
	if len(patch) == 0 {
		return domain.ErrInvalidInput
	}
	filtered := make(map[string]any, len(patch))
	for k, v := range patch {
		if !patchableFields[k] {
			continue
		}
		if k == "estado" {
			s, ok := v.(string)
			if !ok || s == entity.InvoiceStatusCancelled {
				return domain.ErrInvalidInput
			}
			switch s {
			case entity.InvoiceStatusActive, entity.InvoiceStatusPending, entity.InvoiceStatusPaid:
			default:
				return domain.ErrInvalidInput
			}
		}
		filtered[k] = v
	}
	if len(filtered) == 0 {
		return domain.ErrInvalidInput
	}

	now := time.Now()
	return uc.txRunner.RunBilling(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		_ repository.OrderRepository,
		_ repository.SequenceStore,
	) error {
		inv, err := invoiceRepo.GetByID(ctx, invoiceID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		if inv.IsCancelled() {
			return domain.ErrInvoiceLocked
		}

		if err := invoiceRepo.UpdateFields(ctx, inv.ID, filtered); err != nil {
			return err
		}

		return invoiceRepo.AppendHistory(ctx, &entity.InvoiceHistoryEntry{
			ID:        uuid.New().String(),
			InvoiceID: inv.ID,
			Kind:      entity.HistoryUpdate,
			Actor:     actor,
			Timestamp: now,
			Patch:     filtered,
		})
	})
}
