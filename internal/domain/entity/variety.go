package entity

// Variedades de café (columnas de la matriz de inventario y posiciones del vector de precios).
const (
	VarietyCastillo = 0
	VarietyCaturra  = 1
	VarietyBorbon   = 2
)

// Varieties nombres visibles de las variedades, alineados con las columnas del inventario.
var Varieties = [Size]string{"Castillo", "Caturra", "Borbón"}

// VarietyName devuelve el nombre de la variedad o "" si el índice no existe.
func VarietyName(idx int) string {
	if !ValidIndex(idx) {
		return ""
	}
	return Varieties[idx]
}
