package billing

import (
	"github.com/shopspring/decimal"

	"github.com/Jaquiaro29/aqualife-api/internal/domain"
)

// ItemInput línea de entrada para el cálculo de totales.
// ItemTax permite reportar un impuesto explícito por línea (facturas externas
// transcritas de un documento ajeno); si ninguna línea lo trae, el IVA se
// deriva del porcentaje global.
type ItemInput struct {
	Description string
	ProductID   string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	ItemTax     *decimal.Decimal
}

// Totals resultado del cálculo: subtotal (base imponible), impuestos y total.
type Totals struct {
	Subtotal decimal.Decimal
	TaxTotal decimal.Decimal
	Total    decimal.Decimal
}

var oneHundred = decimal.NewFromInt(100)

// TaxFactor devuelve 1 + ivaPercent/100, el divisor para extraer la base
// imponible de un precio que ya incluye IVA.
func TaxFactor(taxPercent decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Add(taxPercent.Div(oneHundred))
}

// CalcTotals calcula subtotal/impuestos/total de un conjunto de líneas.
//
// Con pricesIncludeTax false, el precio unitario es base imponible: el IVA se
// suma encima (impuestos por línea explícitos tienen prioridad sobre el
// porcentaje global). Con pricesIncludeTax true, el precio unitario es precio
// final: la base se extrae dividiendo por el factor y el total es exactamente
// la suma bruta de las líneas, sin re-derivar desde montos redondeados.
//
// La validación de lista vacía es responsabilidad del caller; una sola línea
// es un caso válido.
func CalcTotals(items []ItemInput, taxPercent decimal.Decimal, pricesIncludeTax bool) (Totals, error) {
	if taxPercent.IsNegative() || taxPercent.GreaterThan(oneHundred) {
		return Totals{}, domain.ErrInvalidTaxPercent
	}

	var gross decimal.Decimal
	for _, item := range items {
		gross = gross.Add(item.Quantity.Mul(item.UnitPrice))
	}

	if !pricesIncludeTax {
		subtotal := gross
		var itemTaxes decimal.Decimal
		for _, item := range items {
			if item.ItemTax != nil {
				itemTaxes = itemTaxes.Add(*item.ItemTax)
			}
		}
		tax := itemTaxes
		if !itemTaxes.IsPositive() {
			tax = subtotal.Mul(taxPercent).Div(oneHundred)
		}
		return Totals{Subtotal: subtotal, TaxTotal: tax, Total: subtotal.Add(tax)}, nil
	}

	// Precios con IVA incluido: el total es la suma bruta tal cual;
	// subtotal e impuestos son la partición de ese total.
	factor := TaxFactor(taxPercent)
	subtotal := gross.Div(factor)
	tax := gross.Sub(subtotal)
	return Totals{Subtotal: subtotal, TaxTotal: tax, Total: gross}, nil
}

// LineSubtotal devuelve el subtotal sin IVA de una línea, normalizando el
// precio capturado cuando este incluía IVA. Es la misma derivación que usa
// CalcTotals, para que la suma de líneas cuadre con la cabecera.
func LineSubtotal(item ItemInput, taxPercent decimal.Decimal, pricesIncludeTax bool) decimal.Decimal {
	if !pricesIncludeTax {
		return item.Quantity.Mul(item.UnitPrice)
	}
	return item.Quantity.Mul(item.UnitPrice).Div(TaxFactor(taxPercent))
}
