package repository

import (
	"context"

	"github.com/Jaquiaro29/aqualife-api/internal/domain/entity"
)

// OrderRepository persistencia de pedidos.
// GetByID devuelve (nil, nil) cuando el pedido no existe.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Order, error)
	List(ctx context.Context) ([]*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
}
