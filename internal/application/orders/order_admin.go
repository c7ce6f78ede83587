package orders

import (
	"context"
	"time"

	"github.com/Jaquiaro29/aqualife-api/internal/application/dto"
	"github.com/Jaquiaro29/aqualife-api/internal/domain"
	"github.com/Jaquiaro29/aqualife-api/internal/domain/entity"
)

// UpdateStatus aplica una transición de estado operativo del pedido.
// Un pedido cancelado no admite más cambios; "entregado" solo es alcanzable
// desde "listo".
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, actor entity.Actor, orderID, next string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Status == entity.OrderStatusCancelled {
		return nil, domain.ErrOrderCancelled
	}
	if !order.CanTransitionTo(next) {
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now()
	// Primera salida de "pendiente": se registra para métricas de respuesta
	if order.Status == entity.OrderStatusPending && next != entity.OrderStatusPending && order.FirstResponse == nil {
		order.FirstResponse = &now
	}
	order.Status = next
	order.UpdatedAt = now
	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// RegisterPayment adjunta la referencia de pago reportada por el cliente o,
// con Confirm, marca el pedido como cobrado (solo admin valida el pago).
func (uc *OrderUseCase) RegisterPayment(ctx context.Context, actor entity.Actor, isAdmin bool, orderID string, in dto.RegisterPaymentRequest) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Status == entity.OrderStatusCancelled {
		return nil, domain.ErrOrderCancelled
	}
	if !isAdmin && order.CustomerID != actor.ID {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	if in.Confirm {
		if !isAdmin {
			return nil, domain.ErrForbidden
		}
		order.FinanceStatus = entity.FinanceCollected
	} else {
		if in.PaymentRef == "" {
			return nil, domain.ErrInvalidInput
		}
		order.PaymentRef = in.PaymentRef
		order.PayerBank = in.PayerBank
		order.PaidAmount = in.PaidAmount
		order.PaymentRefAt = &now
		order.FinanceStatus = entity.FinancePendingConfirm
	}
	order.UpdatedAt = now
	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}
