package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/Jaquiaro29/aqualife-api/internal/domain/entity"
)

// DefaultBottlePrice precio de respaldo por botellón cuando la configuración
// global aún no tiene precio cargado. El flujo de pedidos debe seguir operativo
// aunque el feed de precios no haya llegado.
var DefaultBottlePrice = decimal.NewFromFloat(0.5)

// HighPriorityMultiplier recargo sobre el precio base para prioridad alta
// cuando el panel no definió un precio alto explícito.
var HighPriorityMultiplier = decimal.NewFromFloat(1.4)

// ResolveUnitCost deriva el costo por botellón según la prioridad del pedido.
//
// Prioridad normal: precio base tal cual. Prioridad alta: el precio alto
// configurado si existe y es positivo; si no, base × 1.4. Un precio base nil o
// no positivo cae al valor de respaldo DefaultBottlePrice.
func ResolveUnitCost(basePrice *decimal.Decimal, priority string, highOverride *decimal.Decimal) decimal.Decimal {
	base := DefaultBottlePrice
	if basePrice != nil && basePrice.IsPositive() {
		base = *basePrice
	}
	if priority != entity.PriorityHigh {
		return base
	}
	if highOverride != nil && highOverride.IsPositive() {
		return *highOverride
	}
	return base.Mul(HighPriorityMultiplier)
}

// OrderTotal total del pedido: cantidad total × costo unitario.
func OrderTotal(totalQuantity int, unitCost decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(totalQuantity)).Mul(unitCost)
}
