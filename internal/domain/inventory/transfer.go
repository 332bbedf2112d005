package inventory

import (
	"github.com/jhoicas/inventario-cafe/internal/domain"
	"github.com/jhoicas/inventario-cafe/internal/domain/entity"
)

// ValidateTransfer verifica índices, cantidad positiva y bodegas distintas.
func ValidateTransfer(order entity.TransferOrder) error {
	if !entity.ValidIndex(order.FromWarehouse) || !entity.ValidIndex(order.ToWarehouse) || !entity.ValidIndex(order.Variety) {
		return domain.ErrInvalidInput
	}
	if order.FromWarehouse == order.ToWarehouse || order.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// Transfer resta la cantidad de la bodega origen y la suma en la destino.
// Devuelve ErrInsufficientStock si el origen no alcanza; en ese caso inv se devuelve intacto.
func Transfer(inv entity.Inventory, order entity.TransferOrder) (entity.Inventory, error) {
	if err := ValidateTransfer(order); err != nil {
		return inv, err
	}
	if inv[order.FromWarehouse][order.Variety] < order.Quantity {
		return inv, domain.ErrInsufficientStock
	}
	inv[order.FromWarehouse][order.Variety] -= order.Quantity
	inv[order.ToWarehouse][order.Variety] += order.Quantity
	return inv, nil
}
