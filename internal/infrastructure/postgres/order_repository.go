package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Jaquiaro29/aqualife-api/internal/domain/entity"
	"github.com/Jaquiaro29/aqualife-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste un pedido nuevo.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	const q = `
		INSERT INTO orders
			(id, numero_pedido, customer_id, cantidad_con_asa, cantidad_sin_asa,
			 tipo, prioridad, costo_unitario, total, estado, estado_financiero,
			 observaciones, ref_pago_ult6, banco_emisor, monto_pagado, pagar_luego,
			 fecha_ref_pago, empleado_asignado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(ctx, q,
		order.ID, order.Number, order.CustomerID, order.WithHandle, order.WithoutHandle,
		order.Type, order.Priority, order.UnitCost, order.Total, order.Status, order.FinanceStatus,
		order.Notes, nullIfEmpty(order.PaymentRef), nullIfEmpty(order.PayerBank),
		toNullDecimal(order.PaidAmount), order.PayLater,
		order.PaymentRefAt, nullIfEmpty(order.AssignedTo), order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("el número de pedido ya existe: %w", err)
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

const orderColumns = `
	id, numero_pedido, customer_id, cantidad_con_asa, cantidad_sin_asa,
	tipo, prioridad, costo_unitario, total, estado, estado_financiero,
	COALESCE(observaciones, ''), COALESCE(ref_pago_ult6, ''), COALESCE(banco_emisor, ''),
	monto_pagado, pagar_luego, fecha_ref_pago, COALESCE(empleado_asignado, ''),
	primera_respuesta, created_at, updated_at`

// GetByID obtiene un pedido por ID. Devuelve (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	order, err := scanOrder(r.q.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// ListByCustomer lista los pedidos de un cliente, más recientes primero.
func (r *OrderRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders WHERE customer_id = $1 ORDER BY numero_pedido DESC`
	return r.queryOrders(ctx, q, customerID)
}

// List lista todos los pedidos, más recientes primero.
func (r *OrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders ORDER BY numero_pedido DESC`
	return r.queryOrders(ctx, q)
}

// Update reescribe los campos mutables del pedido (estados, pago, asignación).
func (r *OrderRepo) Update(ctx context.Context, order *entity.Order) error {
	const q = `
		UPDATE orders
		SET estado            = $2,
		    estado_financiero = $3,
		    ref_pago_ult6     = $4,
		    banco_emisor      = $5,
		    monto_pagado      = $6,
		    fecha_ref_pago    = $7,
		    empleado_asignado = $8,
		    primera_respuesta = $9,
		    updated_at        = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, q,
		order.ID, order.Status, order.FinanceStatus,
		nullIfEmpty(order.PaymentRef), nullIfEmpty(order.PayerBank),
		toNullDecimal(order.PaidAmount), order.PaymentRefAt,
		nullIfEmpty(order.AssignedTo), order.FirstResponse, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func (r *OrderRepo) queryOrders(ctx context.Context, q string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, order)
	}
	return list, rows.Err()
}

func scanOrder(row pgxScanner) (*entity.Order, error) {
	var order entity.Order
	var paidAmount decimal.NullDecimal
	err := row.Scan(
		&order.ID, &order.Number, &order.CustomerID, &order.WithHandle, &order.WithoutHandle,
		&order.Type, &order.Priority, &order.UnitCost, &order.Total, &order.Status, &order.FinanceStatus,
		&order.Notes, &order.PaymentRef, &order.PayerBank,
		&paidAmount, &order.PayLater, &order.PaymentRefAt, &order.AssignedTo,
		&order.FirstResponse, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if paidAmount.Valid {
		order.PaidAmount = &paidAmount.Decimal
	}
	return &order, nil
}
