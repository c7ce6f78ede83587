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

// CustomerUseCase administra el directorio de clientes.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customerRepo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo}
}

// Create registra un cliente nuevo.
func (uc *CustomerUseCase) Create(ctx context.Context, customer *entity.Customer) (*entity.Customer, error) {
	if strings.TrimSpace(customer.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	now := time.Now()
	customer.CreatedAt = now
	customer.UpdatedAt = now
	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetByID obtiene un cliente.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	customer, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return customer, nil
}

// List lista todos los clientes.
func (uc *CustomerUseCase) List(ctx context.Context) ([]*entity.Customer, error) {
	return uc.customerRepo.List(ctx)
}
