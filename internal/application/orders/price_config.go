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

// PriceConfigUseCase lee y administra el precio global del botellón.
type PriceConfigUseCase struct {
	priceRepo repository.PriceConfigRepository
}

// NewPriceConfigUseCase construye el caso de uso.
func NewPriceConfigUseCase(priceRepo repository.PriceConfigRepository) *PriceConfigUseCase {
	return &PriceConfigUseCase{priceRepo: priceRepo}
}

// Get devuelve el snapshot vigente con los precios por prioridad ya resueltos
// (incluyendo el respaldo cuando no hay precio configurado).
func (uc *PriceConfigUseCase) Get(ctx context.Context) (*dto.PriceConfigResponse, error) {
	cfg, err := uc.priceRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.PriceConfigResponse{
		PriceNormal: pricing.ResolveUnitCost(nil, entity.PriorityNormal, nil),
		PriceAlta:   pricing.ResolveUnitCost(nil, entity.PriorityHigh, nil),
	}
	if cfg != nil {
		resp.Price = cfg.Price
		resp.PriceHigh = cfg.PriceHigh
		resp.PriceNormal = pricing.ResolveUnitCost(cfg.Price, entity.PriorityNormal, cfg.PriceHigh)
		resp.PriceAlta = pricing.ResolveUnitCost(cfg.Price, entity.PriorityHigh, cfg.PriceHigh)
	}
	return resp, nil
}

// History lista los cambios de precio, más recientes primero.
func (uc *PriceConfigUseCase) History(ctx context.Context) ([]*dto.PriceConfigHistoryResponse, error) {
	entries, err := uc.priceRepo.ListHistory(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PriceConfigHistoryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, &dto.PriceConfigHistoryResponse{
			ID:        e.ID,
			Price:     e.Price,
			PriceHigh: e.PriceHigh,
			ActorID:   e.Actor.ID,
			ActorName: e.Actor.DisplayName,
			Timestamp: e.Timestamp.Format(time.RFC3339),
		})
	}
	return out, nil
}

// Update guarda los campos presentes del precio global y registra quién hizo
// el cambio en el historial append-only.
func (uc *PriceConfigUseCase) Update(ctx context.Context, actor entity.Actor, in dto.UpdatePriceConfigRequest) error {
	if in.Price == nil && in.PriceHigh == nil {
		return domain.ErrInvalidInput
	}
	if in.Price != nil && !in.Price.IsPositive() {
		return domain.ErrInvalidInput
	}
	if in.PriceHigh != nil && !in.PriceHigh.IsPositive() {
		return domain.ErrInvalidInput
	}
	if err := uc.priceRepo.Upsert(ctx, in.Price, in.PriceHigh); err != nil {
		return err
	}
	return uc.priceRepo.AppendHistory(ctx, &entity.PriceConfigHistoryEntry{
		ID:        uuid.New().String(),
		Price:     in.Price,
		PriceHigh: in.PriceHigh,
		Actor:     actor,
		Timestamp: time.Now(),
	})
}
