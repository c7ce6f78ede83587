package orders_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jaquiaro29/aqualife-api/internal/application/dto"
	"github.com/Jaquiaro29/aqualife-api/internal/application/orders"
	"github.com/Jaquiaro29/aqualife-api/internal/domain"
	"github.com/Jaquiaro29/aqualife-api/internal/domain/entity"
	"github.com/Jaquiaro29/aqualife-api/internal/domain/pricing"
)

var (
	customerActor = entity.Actor{ID: "cliente-001", DisplayName: "María Pérez"}
	adminActor    = entity.Actor{ID: "admin-001", DisplayName: "Admin"}
)

// buildOrderUC arma el caso de uso con fakes; cfg nil simula la configuración
// de precios sin cargar.
func buildOrderUC(cfg *entity.PriceConfig, seeded ...*entity.Order) (*orders.OrderUseCase, *fakeOrderRepo, *fakeSequenceStore) {
	orderRepo := newFakeOrderRepo(seeded...)
	seq := newFakeSequenceStore()
	priceRepo := &fakePriceRepo{cfg: cfg}
	tx := &fakeTxRunner{orderRepo: orderRepo, seq: seq}
	return orders.NewOrderUseCase(tx, orderRepo, priceRepo), orderRepo, seq
}

func validOrderRequest() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		WithHandle:    2,
		WithoutHandle: 1,
		Type:          entity.OrderTypeRefill,
		Priority:      entity.PriorityNormal,
	}
}

func configuredPrices() *entity.PriceConfig {
	return &entity.PriceConfig{Price: decPtr("1.00"), PriceHigh: decPtr("2.00")}
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateOrder_AsignaConsecutivoYPrecio(t *testing.T) {
	uc, orderRepo, _ := buildOrderUC(configuredPrices())

	resp, err := uc.Create(context.Background(), customerActor, validOrderRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.Number, "el primer pedido lleva el número 1")
	assert.Equal(t, customerActor.ID, resp.CustomerID)
	assert.True(t, resp.UnitCost.Equal(dec("1.00")), "costo unitario fue %s", resp.UnitCost)
	assert.True(t, resp.Total.Equal(dec("3.00")), "3 botellones × 1.00, fue %s", resp.Total)
	assert.Equal(t, entity.OrderStatusPending, resp.Status)
	assert.Equal(t, entity.FinancePendingCollection, resp.FinanceStatus)

	require.NotNil(t, orderRepo.orders[resp.ID], "el pedido debe quedar persistido")
}

func TestCreateOrder_ConsecutivosCrecientes(t *testing.T) {
	uc, _, _ := buildOrderUC(configuredPrices())

	r1, err := uc.Create(context.Background(), customerActor, validOrderRequest())
	require.NoError(t, err)
	r2, err := uc.Create(context.Background(), customerActor, validOrderRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), r1.Number)
	assert.Equal(t, int64(2), r2.Number)
}

func TestCreateOrder_PrioridadAlta_UsaPrecioAlto(t *testing.T) {
	uc, _, _ := buildOrderUC(configuredPrices())

	req := validOrderRequest()
	req.Priority = entity.PriorityHigh
	resp, err := uc.Create(context.Background(), customerActor, req)
	require.NoError(t, err)

	assert.True(t, resp.UnitCost.Equal(dec("2.00")),
		"prioridad alta usa el precio alto configurado, fue %s", resp.UnitCost)
}

func TestCreateOrder_PrioridadAltaSinPrecioAlto_AplicaMultiplicador(t *testing.T) {
	uc, _, _ := buildOrderUC(&entity.PriceConfig{Price: decPtr("1.00")})

	req := validOrderRequest()
	req.Priority = entity.PriorityHigh
	resp, err := uc.Create(context.Background(), customerActor, req)
	require.NoError(t, err)

	assert.True(t, resp.UnitCost.Equal(dec("1.4")), "costo fue %s", resp.UnitCost)
}

func TestCreateOrder_SinConfiguracionDePrecios_UsaRespaldo(t *testing.T) {
	// El feed de precios aún no cargó: el pedido sale igual con el respaldo.
	uc, _, _ := buildOrderUC(nil)

	resp, err := uc.Create(context.Background(), customerActor, validOrderRequest())
	require.NoError(t, err)

	assert.True(t, resp.UnitCost.Equal(pricing.DefaultBottlePrice),
		"sin configuración debe usarse el precio de respaldo, fue %s", resp.UnitCost)
}

func TestCreateOrder_ConReferenciaDePago_QuedaPorConfirmar(t *testing.T) {
	uc, orderRepo, _ := buildOrderUC(configuredPrices())

	req := validOrderRequest()
	req.PaymentRef = "123456"
	req.PayerBank = "Banco Azul"
	req.PaidAmount = decPtr("3.00")
	resp, err := uc.Create(context.Background(), customerActor, req)
	require.NoError(t, err)

	assert.Equal(t, entity.FinancePendingConfirm, resp.FinanceStatus,
		"reportar pago al confirmar deja el pedido por confirmar")
	assert.Equal(t, "123456", resp.PaymentRef)
	assert.NotNil(t, orderRepo.orders[resp.ID].PaymentRefAt,
		"debe registrarse cuándo se reportó la referencia")
}

// ── Validaciones ──────────────────────────────────────────────────────────────

func TestCreateOrder_SinBotellones_Rechaza(t *testing.T) {
	uc, _, seq := buildOrderUC(configuredPrices())

	req := validOrderRequest()
	req.WithHandle = 0
	req.WithoutHandle = 0
	_, err := uc.Create(context.Background(), customerActor, req)

	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
	assert.Empty(t, seq.counters, "un pedido rechazado no consume consecutivo")
}

func TestCreateOrder_CantidadNegativa_Rechaza(t *testing.T) {
	uc, _, _ := buildOrderUC(configuredPrices())

	req := validOrderRequest()
	req.WithHandle = -1
	_, err := uc.Create(context.Background(), customerActor, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateOrder_TipoDesconocido_Rechaza(t *testing.T) {
	uc, _, _ := buildOrderUC(configuredPrices())

	req := validOrderRequest()
	req.Type = "alquiler"
	_, err := uc.Create(context.Background(), customerActor, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateOrder_PrioridadDesconocida_Rechaza(t *testing.T) {
	uc, _, _ := buildOrderUC(configuredPrices())

	req := validOrderRequest()
	req.Priority = "urgente"
	_, err := uc.Create(context.Background(), customerActor, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consulta con control de dueño
// ──────────────────────────────────────────────────────────────────────────────

func TestGetOrder_ClienteSoloVeLosSuyos(t *testing.T) {
	uc, _, _ := buildOrderUC(configuredPrices(), &entity.Order{
		ID:         "pedido-ajeno",
		CustomerID: "otro-cliente",
		Status:     entity.OrderStatusPending,
	})

	_, err := uc.GetByID(context.Background(), customerActor, false, "pedido-ajeno")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.GetByID(context.Background(), adminActor, true, "pedido-ajeno")
	assert.NoError(t, err, "el admin puede ver cualquier pedido")
}

func TestListOrders_ClienteVsAdmin(t *testing.T) {
	uc, _, _ := buildOrderUC(configuredPrices(),
		&entity.Order{ID: "p1", CustomerID: customerActor.ID},
		&entity.Order{ID: "p2", CustomerID: "otro-cliente"},
	)

	own, err := uc.List(context.Background(), customerActor, false)
	require.NoError(t, err)
	assert.Len(t, own, 1, "el cliente solo lista sus pedidos")

	all, err := uc.List(context.Background(), adminActor, true)
	require.NoError(t, err)
	assert.Len(t, all, 2, "el admin lista todos")
}
