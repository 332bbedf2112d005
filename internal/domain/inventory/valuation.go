package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-cafe/internal/domain/entity"
)

// ComputeValue valoriza el inventario (servicio de dominio, sin efectos secundarios).
// ValorBodega[i] = Σ_j Inventario[i][j] * Precio[j]; Total = Σ_i ValorBodega[i].
func ComputeValue(inv entity.Inventory, prices entity.Prices) entity.Valuation {
	var v entity.Valuation
	v.Total = decimal.Zero
	for i := range inv {
		row := decimal.Zero
		for j, qty := range inv[i] {
			row = row.Add(decimal.NewFromInt(qty).Mul(prices[j]))
		}
		v.PerWarehouse[i] = row
		v.Total = v.Total.Add(row)
	}
	return v
}
