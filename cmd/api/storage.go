package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/inventario-cafe/internal/domain"
	"github.com/jhoicas/inventario-cafe/internal/domain/entity"
	"github.com/jhoicas/inventario-cafe/internal/domain/repository"
	"github.com/jhoicas/inventario-cafe/internal/infrastructure/filestore"
	"github.com/jhoicas/inventario-cafe/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-cafe/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-cafe/pkg/config"
	"github.com/jhoicas/inventario-cafe/pkg/logger"
)

// storage agrupa los puertos de persistencia elegidos por STORAGE_DRIVER.
type storage struct {
	stock     repository.StockRepository
	movements repository.InventoryMovementRepository
	close     func()
}

// openStorage construye los repositorios del driver configurado. Con SEED_DATA=true
// un estado ausente se inicializa en ceros.
func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	var empty entity.Inventory
	zero := entity.NewPrices(0, 0, 0)

	switch cfg.Storage.Driver {
	case config.StorageMemory:
		return &storage{
			stock:     memory.NewSeededStockRepository(empty, zero),
			movements: memory.NewInventoryMovementRepository(),
			close:     func() {},
		}, nil

	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		stock := postgres.NewStockRepository(pool, postgres.NewTxRunner(pool))
		if cfg.Storage.Seed {
			if err := seedIfMissing(ctx, stock, empty, zero); err != nil {
				pool.Close()
				return nil, err
			}
		}
		return &storage{
			stock:     stock,
			movements: postgres.NewInventoryMovementRepository(pool),
			close:     pool.Close,
		}, nil

	default:
		stock := filestore.NewStockRepository(cfg.Storage.InventoryPath(), cfg.Storage.PricesPath())
		if cfg.Storage.Seed {
			if err := stock.Seed(ctx, empty, zero); err != nil {
				return nil, fmt.Errorf("inicializar archivos de estado: %w", err)
			}
		}
		log.Info().
			Str("inventario", cfg.Storage.InventoryPath()).
			Str("precios", cfg.Storage.PricesPath()).
			Str("historial", cfg.Storage.HistoryPath()).
			Msg("almacenamiento en archivos")
		return &storage{
			stock:     stock,
			movements: filestore.NewInventoryMovementRepository(cfg.Storage.HistoryPath()),
			close:     func() {},
		}, nil
	}
}

func seedIfMissing(ctx context.Context, repo repository.StockRepository, inv entity.Inventory, prices entity.Prices) error {
	_, _, err := repo.Load(ctx)
	if err == nil || !errors.Is(err, domain.ErrMissingFile) {
		return err
	}
	if err := repo.SaveInventory(ctx, inv); err != nil {
		return err
	}
	return repo.SavePrices(ctx, prices)
}
