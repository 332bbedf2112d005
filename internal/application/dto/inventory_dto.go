package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardDTO estado completo que muestra el tablero: inventario, precios, valorización e historial.
type DashboardDTO struct {
	Warehouses     []string           `json:"bodegas"`
	Varieties      []string           `json:"cafes"`
	Inventory      [3][3]int64        `json:"inventario"`
	Prices         [3]decimal.Decimal `json:"precios"`
	WarehouseValue [3]decimal.Decimal `json:"valor_por_bodega"`
	TotalValue     decimal.Decimal    `json:"valor_total"`
	History        []string           `json:"historial"`
	GeneratedAt    time.Time          `json:"generado"`
}

// UpdatePricesRequest body para PUT /api/precios; los tres precios son obligatorios.
type UpdatePricesRequest struct {
	Castillo *decimal.Decimal `json:"precio_castillo"`
	Caturra  *decimal.Decimal `json:"precio_caturra"`
	Borbon   *decimal.Decimal `json:"precio_borbon"`
}

// TransferRequest body para POST /api/traslados (índices 0 a 2).
type TransferRequest struct {
	FromWarehouse int   `json:"origen"`
	ToWarehouse   int   `json:"destino"`
	Variety       int   `json:"cafe"`
	Quantity      int64 `json:"cantidad"`
}

// TransferResult traslado aplicado y registrado en el historial.
type TransferResult struct {
	ID        string      `json:"id"`
	Message   string      `json:"mensaje"`
	Date      time.Time   `json:"fecha"`
	Inventory [3][3]int64 `json:"inventario"`
}

// HistoryResponse respuesta de GET /api/historial.
type HistoryResponse struct {
	Total int      `json:"total"`
	Lines []string `json:"lineas"`
}
