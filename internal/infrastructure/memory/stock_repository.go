// Package memory implementa los puertos de persistencia en memoria (tests y STORAGE_DRIVER=memory).
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/inventario-cafe/internal/domain"
	"github.com/jhoicas/inventario-cafe/internal/domain/entity"
	"github.com/jhoicas/inventario-cafe/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepository)(nil)

// StockRepository guarda inventario y precios en memoria.
// Un repositorio vacío se comporta como archivos ausentes: Load devuelve ErrMissingFile.
type StockRepository struct {
	mu        sync.RWMutex
	inventory *entity.Inventory
	prices    *entity.Prices
}

// NewStockRepository crea un repositorio sin estado.
func NewStockRepository() *StockRepository {
	return &StockRepository{}
}

// NewSeededStockRepository crea un repositorio con estado inicial.
func NewSeededStockRepository(inv entity.Inventory, prices entity.Prices) *StockRepository {
	return &StockRepository{inventory: &inv, prices: &prices}
}

// Load devuelve copias del estado actual.
func (r *StockRepository) Load(_ context.Context) (entity.Inventory, entity.Prices, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.inventory == nil || r.prices == nil {
		return entity.Inventory{}, entity.Prices{}, domain.ErrMissingFile
	}
	return *r.inventory, *r.prices, nil
}

// SaveInventory reemplaza la matriz completa.
func (r *StockRepository) SaveInventory(_ context.Context, inv entity.Inventory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inventory = &inv
	return nil
}

// SavePrices reemplaza el vector completo.
func (r *StockRepository) SavePrices(_ context.Context, prices entity.Prices) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prices = &prices
	return nil
}
