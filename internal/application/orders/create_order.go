package orders

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Jaquiaro29/aqualife-api/internal/application/dto"
	"github.com/Jaquiaro29/aqualife-api/internal/domain"
	"github.com/Jaquiaro29/aqualife-api/internal/domain/entity"
	"github.com/Jaquiaro29/aqualife-api/internal/domain/pricing"
	"github.com/Jaquiaro29/aqualife-api/internal/domain/repository"
)

// OrderUseCase crea pedidos y gestiona sus transiciones de estado.
type OrderUseCase struct {
	txRunner  TxRunner
	orderRepo repository.OrderRepository
	priceRepo repository.PriceConfigRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(txRunner TxRunner, orderRepo repository.OrderRepository, priceRepo repository.PriceConfigRepository) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, orderRepo: orderRepo, priceRepo: priceRepo}
}

// Create confirma un pedido de un cliente.
//
// El costo unitario se resuelve en este momento con el último snapshot de la
// configuración de precios: si el feed todavía no cargó, se usa el precio de
// respaldo para no bloquear el flujo de pedidos.
func (uc *OrderUseCase) Create(ctx context.Context, actor entity.Actor, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.WithHandle < 0 || in.WithoutHandle < 0 {
		return nil, domain.ErrInvalidInput
	}
	totalQty := in.WithHandle + in.WithoutHandle
	if totalQty == 0 {
		return nil, domain.ErrEmptyOrder
	}
	switch in.Type {
	case entity.OrderTypeRefill, entity.OrderTypeExchange:
	default:
		return nil, domain.ErrInvalidInput
	}
	switch in.Priority {
	case entity.PriorityNormal, entity.PriorityHigh:
	default:
		return nil, domain.ErrInvalidInput
	}

	cfg, err := uc.priceRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	var unitCost = pricing.ResolveUnitCost(nil, in.Priority, nil)
	if cfg != nil {
		unitCost = pricing.ResolveUnitCost(cfg.Price, in.Priority, cfg.PriceHigh)
	}
	total := pricing.OrderTotal(totalQty, unitCost)

	now := time.Now()
	order := &entity.Order{
		ID:            uuid.New().String(),
		CustomerID:    actor.ID,
		WithHandle:    in.WithHandle,
		WithoutHandle: in.WithoutHandle,
		Type:          in.Type,
		Priority:      in.Priority,
		UnitCost:      unitCost,
		Total:         total,
		Status:        entity.OrderStatusPending,
		FinanceStatus: entity.FinancePendingCollection,
		Notes:         in.Notes,
		PayLater:      in.PayLater,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	// Referencia de pago reportada al confirmar: pasa a por_confirmar_pago
	if in.PaymentRef != "" {
		order.PaymentRef = in.PaymentRef
		order.PayerBank = in.PayerBank
		order.PaidAmount = in.PaidAmount
		order.FinanceStatus = entity.FinancePendingConfirm
		order.PaymentRefAt = &now
	}

	err = uc.txRunner.RunOrders(ctx, func(orderRepo repository.OrderRepository, seq repository.SequenceStore) error {
		number, err := seq.AllocateNext(ctx, repository.SequenceOrders)
		if err != nil {
			return err
		}
		order.Number = number
		return orderRepo.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene un pedido. Un cliente solo puede ver sus propios pedidos;
// isAdmin salta esa restricción.
func (uc *OrderUseCase) GetByID(ctx context.Context, actor entity.Actor, isAdmin bool, orderID string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !isAdmin && order.CustomerID != actor.ID {
		return nil, domain.ErrForbidden
	}
	return toOrderResponse(order), nil
}

// List lista pedidos: los propios para un cliente, todos para un admin.
func (uc *OrderUseCase) List(ctx context.Context, actor entity.Actor, isAdmin bool) ([]*dto.OrderResponse, error) {
	var (
		list []*entity.Order
		err  error
	)
	if isAdmin {
		list, err = uc.orderRepo.List(ctx)
	} else {
		list, err = uc.orderRepo.ListByCustomer(ctx, actor.ID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(list))
	for _, order := range list {
		out = append(out, toOrderResponse(order))
	}
	return out, nil
}

func toOrderResponse(order *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:            order.ID,
		Number:        order.Number,
		CustomerID:    order.CustomerID,
		WithHandle:    order.WithHandle,
		WithoutHandle: order.WithoutHandle,
		Type:          order.Type,
		Priority:      order.Priority,
		UnitCost:      order.UnitCost,
		Total:         order.Total,
		Status:        order.Status,
		FinanceStatus: order.FinanceStatus,
		Notes:         order.Notes,
		PaymentRef:    order.PaymentRef,
		PayerBank:     order.PayerBank,
		PaidAmount:    order.PaidAmount,
		CreatedAt:     order.CreatedAt.Format(time.RFC3339),
	}
}
