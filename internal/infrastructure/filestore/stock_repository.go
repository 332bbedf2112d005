// Package filestore persiste el estado en archivos planos: inventario.json, precios.json e historial.log.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-cafe/internal/domain"
	"github.com/jhoicas/inventario-cafe/internal/domain/entity"
	"github.com/jhoicas/inventario-cafe/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

const filePerm = 0o644

// StockRepo implementación de StockRepository sobre dos archivos JSON.
// Las escrituras sobrescriben el archivo completo.
type StockRepo struct {
	inventoryPath string
	pricesPath    string
}

// NewStockRepository construye el adaptador con las rutas de inventario y precios.
func NewStockRepository(inventoryPath, pricesPath string) *StockRepo {
	return &StockRepo{inventoryPath: inventoryPath, pricesPath: pricesPath}
}

// Load lee inventario.json (arreglo 3x3 de enteros) y precios.json (arreglo de 3 números).
func (r *StockRepo) Load(_ context.Context) (entity.Inventory, entity.Prices, error) {
	var inv entity.Inventory
	var prices entity.Prices

	var rows [][]int64
	if err := readJSON(r.inventoryPath, &rows); err != nil {
		return inv, prices, err
	}
	if len(rows) != entity.Size {
		return inv, prices, fmt.Errorf("%w: %s tiene %d filas", domain.ErrCorruptState, r.inventoryPath, len(rows))
	}
	for i, row := range rows {
		if len(row) != entity.Size {
			return inv, prices, fmt.Errorf("%w: %s fila %d tiene %d columnas", domain.ErrCorruptState, r.inventoryPath, i, len(row))
		}
		copy(inv[i][:], row)
	}

	// decimal.Decimal acepta números JSON con o sin comillas.
	var values []decimal.Decimal
	if err := readJSON(r.pricesPath, &values); err != nil {
		return inv, prices, err
	}
	if len(values) != entity.Size {
		return inv, prices, fmt.Errorf("%w: %s tiene %d precios", domain.ErrCorruptState, r.pricesPath, len(values))
	}
	copy(prices[:], values)

	return inv, prices, nil
}

// SaveInventory sobrescribe inventario.json con la matriz completa.
func (r *StockRepo) SaveInventory(_ context.Context, inv entity.Inventory) error {
	rows := make([][]int64, entity.Size)
	for i := range inv {
		rows[i] = append([]int64(nil), inv[i][:]...)
	}
	return writeJSON(r.inventoryPath, rows)
}

// SavePrices sobrescribe precios.json con el vector completo, como números JSON sin comillas.
func (r *StockRepo) SavePrices(_ context.Context, prices entity.Prices) error {
	nums := make([]json.Number, entity.Size)
	for i, p := range prices {
		nums[i] = json.Number(p.String())
	}
	return writeJSON(r.pricesPath, nums)
}

// Seed crea los archivos que falten con el estado indicado; los existentes no se tocan.
func (r *StockRepo) Seed(ctx context.Context, inv entity.Inventory, prices entity.Prices) error {
	if !exists(r.inventoryPath) {
		if err := r.SaveInventory(ctx, inv); err != nil {
			return err
		}
	}
	if !exists(r.pricesPath) {
		if err := r.SavePrices(ctx, prices); err != nil {
			return err
		}
	}
	return nil
}

func readJSON(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", domain.ErrMissingFile, path)
		}
		return fmt.Errorf("leer %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrCorruptState, path, err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("codificar %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("escribir %s: %w", path, err)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
