package repository

import (
	"context"

	"github.com/Jaquiaro29/aqualife-api/internal/domain/entity"
)

// CustomerRepository persistencia de clientes.
// GetByID devuelve (nil, nil) cuando el cliente no existe.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	List(ctx context.Context) ([]*entity.Customer, error)
}
