package inventory

import "github.com/shopspring/decimal"

// TransferCost costo de mover qty unidades a costo unitario unitCost (servicio de dominio).
// Costo = Cantidad * CostoUnitario, redondeado a 2 decimales. Cantidades no positivas valen 0.
func TransferCost(qty, unitCost decimal.Decimal) decimal.Decimal {
	if !qty.IsPositive() || unitCost.IsNegative() {
		return decimal.Zero
	}
	return qty.Mul(unitCost).Round(2)
}

// StockValue valoriza un stock al costo unitario.
func StockValue(stock, unitCost decimal.Decimal) decimal.Decimal {
	if !stock.IsPositive() {
		return decimal.Zero
	}
	return stock.Mul(unitCost).Round(2)
}
