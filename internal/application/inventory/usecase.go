// Package inventory contiene los casos de uso del inventario de café: tablero, precios y traslados.
package inventory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/inventario-cafe/internal/application/dto"
	"github.com/jhoicas/inventario-cafe/internal/domain/entity"
	"github.com/jhoicas/inventario-cafe/internal/domain/inventory"
	"github.com/jhoicas/inventario-cafe/internal/domain/repository"
	"github.com/jhoicas/inventario-cafe/pkg/logger"
)

// InventoryUseCase opera sobre el estado persistido; no guarda estado entre peticiones.
// Las mutaciones se serializan dentro del proceso para que dos peticiones no pierdan
// actualizaciones al leer y reescribir el mismo archivo.
type InventoryUseCase struct {
	stockRepo    repository.StockRepository
	movementRepo repository.InventoryMovementRepository
	log          *logger.Logger
	now          func() time.Time

	mu sync.Mutex
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(
	stockRepo repository.StockRepository,
	movementRepo repository.InventoryMovementRepository,
	log *logger.Logger,
) *InventoryUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &InventoryUseCase{
		stockRepo:    stockRepo,
		movementRepo: movementRepo,
		log:          log,
		now:          time.Now,
	}
}

// Dashboard carga el estado, lo valoriza (inventario x precios) y adjunta las últimas historyLines del historial.
func (uc *InventoryUseCase) Dashboard(ctx context.Context, historyLines int) (*dto.DashboardDTO, error) {
	inv, prices, err := uc.stockRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("tablero: cargar estado: %w", err)
	}
	history, err := uc.movementRepo.Recent(ctx, historyLines)
	if err != nil {
		return nil, fmt.Errorf("tablero: leer historial: %w", err)
	}

	valuation := inventory.ComputeValue(inv, prices)

	return &dto.DashboardDTO{
		Warehouses:     entity.Warehouses[:],
		Varieties:      entity.Varieties[:],
		Inventory:      inv,
		Prices:         prices,
		WarehouseValue: valuation.PerWarehouse,
		TotalValue:     valuation.Total,
		History:        history,
		GeneratedAt:    uc.now(),
	}, nil
}

// History devuelve las últimas limit líneas del historial, la más reciente primero.
func (uc *InventoryUseCase) History(ctx context.Context, limit int) ([]string, error) {
	lines, err := uc.movementRepo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("historial: %w", err)
	}
	return lines, nil
}

// UpdatePrices reemplaza el vector de precios completo, sin validar signo ni magnitud.
func (uc *InventoryUseCase) UpdatePrices(ctx context.Context, prices entity.Prices) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.stockRepo.SavePrices(ctx, prices); err != nil {
		return fmt.Errorf("actualizar precios: %w", err)
	}
	uc.log.Info().
		Str("castillo", prices[entity.VarietyCastillo].String()).
		Str("caturra", prices[entity.VarietyCaturra].String()).
		Str("borbon", prices[entity.VarietyBorbon].String()).
		Msg("precios actualizados")
	return nil
}
