package entity

import "github.com/shopspring/decimal"

// Size número de bodegas y de variedades; la matriz de inventario es Size x Size.
const Size = 3

// Inventory matriz de sacos por bodega (fila) y variedad (columna).
// La no negatividad de las celdas solo se valida al trasladar, no al cargar.
type Inventory [Size][Size]int64

// Prices precio unitario por variedad, alineado con las columnas de Inventory.
type Prices [Size]decimal.Decimal

// Valuation valor del inventario por bodega y total.
type Valuation struct {
	PerWarehouse [Size]decimal.Decimal
	Total        decimal.Decimal
}

// ValidIndex indica si idx referencia una bodega o variedad existente.
func ValidIndex(idx int) bool {
	return idx >= 0 && idx < Size
}

// NewPrices construye el vector de precios a partir de enteros.
func NewPrices(castillo, caturra, borbon int64) Prices {
	return Prices{
		decimal.NewFromInt(castillo),
		decimal.NewFromInt(caturra),
		decimal.NewFromInt(borbon),
	}
}
