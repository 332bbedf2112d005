package repository

import (
	"context"

	"github.com/jhoicas/inventario-cafe/internal/domain/entity"
)

// StockRepository define el puerto de persistencia para la matriz de inventario y el vector de precios (DIP).
// Cada petición carga el estado completo y cada mutación lo sobrescribe completo.
type StockRepository interface {
	// Load devuelve domain.ErrMissingFile si falta alguno de los dos recursos.
	Load(ctx context.Context) (entity.Inventory, entity.Prices, error)
	SaveInventory(ctx context.Context, inv entity.Inventory) error
	SavePrices(ctx context.Context, prices entity.Prices) error
}
