package repository

import "context"

// InventoryMovementRepository define el puerto del historial de movimientos (solo se agrega, nunca se reescribe).
type InventoryMovementRepository interface {
	// Append registra una línea "[YYYY-MM-DD HH:MM:SS] <mensaje>".
	Append(ctx context.Context, message string) error
	// Recent devuelve hasta maxLines líneas, la más reciente primero.
	Recent(ctx context.Context, maxLines int) ([]string, error)
}
