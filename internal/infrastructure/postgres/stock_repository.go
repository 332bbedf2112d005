package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-cafe/internal/domain"
	"github.com/jhoicas/inventario-cafe/internal/domain/entity"
	"github.com/jhoicas/inventario-cafe/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL.
// Tablas vacías equivalen a archivos ausentes (ErrMissingFile).
type StockRepo struct {
	q  Querier
	tx *TxRunner
}

// NewStockRepository construye el adaptador; las escrituras completas usan tx.
func NewStockRepository(q Querier, tx *TxRunner) *StockRepo {
	return &StockRepo{q: q, tx: tx}
}

// Load lee las 9 celdas de inventario y los 3 precios.
func (r *StockRepo) Load(ctx context.Context) (entity.Inventory, entity.Prices, error) {
	var inv entity.Inventory
	var prices entity.Prices

	rows, err := r.q.Query(ctx, `SELECT bodega, cafe, cantidad FROM inventario`)
	if err != nil {
		return inv, prices, fmt.Errorf("select inventario: %w", err)
	}
	var seen int
	for rows.Next() {
		var wh, variety int
		var qty int64
		if err := rows.Scan(&wh, &variety, &qty); err != nil {
			rows.Close()
			return inv, prices, fmt.Errorf("scan inventario: %w", err)
		}
		if !entity.ValidIndex(wh) || !entity.ValidIndex(variety) {
			rows.Close()
			return inv, prices, fmt.Errorf("%w: celda (%d,%d)", domain.ErrCorruptState, wh, variety)
		}
		inv[wh][variety] = qty
		seen++
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return inv, prices, fmt.Errorf("select inventario: %w", err)
	}
	if err := checkCount("inventario", seen, entity.Size*entity.Size); err != nil {
		return inv, prices, err
	}

	rows, err = r.q.Query(ctx, `SELECT cafe, precio FROM precios`)
	if err != nil {
		return inv, prices, fmt.Errorf("select precios: %w", err)
	}
	seen = 0
	for rows.Next() {
		var variety int
		var price decimal.Decimal
		if err := rows.Scan(&variety, &price); err != nil {
			rows.Close()
			return inv, prices, fmt.Errorf("scan precios: %w", err)
		}
		if !entity.ValidIndex(variety) {
			rows.Close()
			return inv, prices, fmt.Errorf("%w: precio de café %d", domain.ErrCorruptState, variety)
		}
		prices[variety] = price
		seen++
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return inv, prices, fmt.Errorf("select precios: %w", err)
	}
	if err := checkCount("precios", seen, entity.Size); err != nil {
		return inv, prices, err
	}
	return inv, prices, nil
}

// SaveInventory reescribe las 9 celdas en una sola transacción.
func (r *StockRepo) SaveInventory(ctx context.Context, inv entity.Inventory) error {
	return r.tx.Run(ctx, func(q Querier) error {
		batch := &pgx.Batch{}
		for i := range inv {
			for j, qty := range inv[i] {
				batch.Queue(`
					INSERT INTO inventario (bodega, cafe, cantidad) VALUES ($1, $2, $3)
					ON CONFLICT (bodega, cafe) DO UPDATE SET cantidad = EXCLUDED.cantidad`, i, j, qty)
			}
		}
		return execBatch(ctx, q, batch, "upsert inventario")
	})
}

// SavePrices reescribe el vector de precios en una sola transacción.
func (r *StockRepo) SavePrices(ctx context.Context, prices entity.Prices) error {
	return r.tx.Run(ctx, func(q Querier) error {
		batch := &pgx.Batch{}
		for j, p := range prices {
			batch.Queue(`
				INSERT INTO precios (cafe, precio) VALUES ($1, $2)
				ON CONFLICT (cafe) DO UPDATE SET precio = EXCLUDED.precio`, j, p)
		}
		return execBatch(ctx, q, batch, "upsert precios")
	})
}

func execBatch(ctx context.Context, q Querier, batch *pgx.Batch, op string) error {
	br := q.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func checkCount(table string, got, want int) error {
	switch {
	case got == 0:
		return fmt.Errorf("%w: tabla %s vacía", domain.ErrMissingFile, table)
	case got != want:
		return fmt.Errorf("%w: tabla %s tiene %d filas, se esperaban %d", domain.ErrCorruptState, table, got, want)
	}
	return nil
}
