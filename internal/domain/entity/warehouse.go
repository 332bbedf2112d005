package entity

// Bodegas fijas donde se almacenan los sacos de café (filas de la matriz de inventario).
const (
	WarehouseSevilla    = 0
	WarehouseTulua      = 1
	WarehouseCaicedonia = 2
)

// Warehouses nombres visibles de las bodegas, en el orden de las filas del inventario.
var Warehouses = [Size]string{"Sevilla", "Tuluá", "Caicedonia"}

// WarehouseName devuelve el nombre de la bodega o "" si el índice no existe.
func WarehouseName(idx int) string {
	if !ValidIndex(idx) {
		return ""
	}
	return Warehouses[idx]
}
