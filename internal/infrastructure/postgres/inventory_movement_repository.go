package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventario-cafe/internal/domain/entity"
	"github.com/jhoicas/inventario-cafe/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo historial de movimientos en la tabla historial.
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Append inserta una entrada con la hora local actual.
func (r *InventoryMovementRepo) Append(ctx context.Context, message string) error {
	_, err := r.q.Exec(ctx, `INSERT INTO historial (fecha, mensaje) VALUES ($1, $2)`, time.Now(), message)
	if err != nil {
		return fmt.Errorf("insert historial: %w", err)
	}
	return nil
}

// Recent devuelve las últimas maxLines entradas (todas con maxLines <= 0), la más reciente primero,
// con el mismo formato de línea que el historial en archivo.
func (r *InventoryMovementRepo) Recent(ctx context.Context, maxLines int) ([]string, error) {
	var limit any // NULL = sin límite
	if maxLines > 0 {
		limit = maxLines
	}
	rows, err := r.q.Query(ctx, `SELECT fecha, mensaje FROM historial ORDER BY id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("select historial: %w", err)
	}
	defer rows.Close()

	lines := []string{}
	for rows.Next() {
		var fecha time.Time
		var msg string
		if err := rows.Scan(&fecha, &msg); err != nil {
			return nil, fmt.Errorf("scan historial: %w", err)
		}
		lines = append(lines, entity.FormatHistoryLine(fecha, msg))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select historial: %w", err)
	}
	return lines, nil
}
