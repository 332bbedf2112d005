package entity

import (
	"fmt"
	"time"
)

// TransferOrder solicitud de traslado de una variedad entre dos bodegas.
type TransferOrder struct {
	FromWarehouse int
	ToWarehouse   int
	Variety       int
	Quantity      int64
}

// InventoryMovement traslado aplicado al inventario.
type InventoryMovement struct {
	ID            string
	FromWarehouse int
	ToWarehouse   int
	Variety       int
	Quantity      int64
	Date          time.Time
}

// Message texto libre que se registra en el historial de movimientos.
func (m InventoryMovement) Message() string {
	return fmt.Sprintf("Movimiento de %d sacos de %s desde %s a %s",
		m.Quantity, VarietyName(m.Variety), WarehouseName(m.FromWarehouse), WarehouseName(m.ToWarehouse))
}

// HistoryTimestampLayout formato de la marca de tiempo en el historial.
const HistoryTimestampLayout = "2006-01-02 15:04:05"

// FormatHistoryLine arma una línea del historial: "[YYYY-MM-DD HH:MM:SS] <mensaje>".
func FormatHistoryLine(t time.Time, message string) string {
	return "[" + t.Format(HistoryTimestampLayout) + "] " + message
}
