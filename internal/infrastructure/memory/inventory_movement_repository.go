package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/inventario-cafe/internal/domain/entity"
	"github.com/jhoicas/inventario-cafe/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepository)(nil)

// InventoryMovementRepository historial de movimientos en memoria.
type InventoryMovementRepository struct {
	mu    sync.RWMutex
	lines []string
	now   func() time.Time
}

// NewInventoryMovementRepository crea un historial vacío.
func NewInventoryMovementRepository() *InventoryMovementRepository {
	return &InventoryMovementRepository{lines: []string{}, now: time.Now}
}

// Append agrega una línea con marca de tiempo.
func (r *InventoryMovementRepository) Append(_ context.Context, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, entity.FormatHistoryLine(r.now(), message))
	return nil
}

// Recent devuelve hasta maxLines líneas, la más reciente primero (todas con maxLines <= 0).
func (r *InventoryMovementRepository) Recent(_ context.Context, maxLines int) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := len(r.lines)
	if maxLines > 0 && maxLines < n {
		n = maxLines
	}
	out := make([]string, 0, n)
	for i := len(r.lines) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, r.lines[i])
	}
	return out, nil
}

// Len número total de líneas registradas.
func (r *InventoryMovementRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.lines)
}
