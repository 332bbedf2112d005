package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-cafe/internal/application/dto"
	"github.com/jhoicas/inventario-cafe/internal/domain"
	"github.com/jhoicas/inventario-cafe/internal/domain/entity"
	"github.com/jhoicas/inventario-cafe/internal/domain/inventory"
)

// TransferStock traslada sacos de una variedad entre dos bodegas.
//
// Retorna:
//   - domain.ErrInvalidInput      índices fuera de rango, cantidad <= 0 o misma bodega.
//   - domain.ErrInsufficientStock la bodega origen no tiene suficientes sacos.
//
// En ambos casos no se guarda el inventario ni se escribe en el historial.
func (uc *InventoryUseCase) TransferStock(ctx context.Context, in dto.TransferRequest) (*dto.TransferResult, error) {
	order := entity.TransferOrder{
		FromWarehouse: in.FromWarehouse,
		ToWarehouse:   in.ToWarehouse,
		Variety:       in.Variety,
		Quantity:      in.Quantity,
	}
	if err := inventory.ValidateTransfer(order); err != nil {
		uc.rejected(order, err)
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	inv, _, err := uc.stockRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("traslado: cargar estado: %w", err)
	}
	updated, err := inventory.Transfer(inv, order)
	if err != nil {
		uc.rejected(order, err)
		return nil, err
	}
	if err := uc.stockRepo.SaveInventory(ctx, updated); err != nil {
		return nil, fmt.Errorf("traslado: guardar inventario: %w", err)
	}

	mov := entity.InventoryMovement{
		ID:            uuid.New().String(),
		FromWarehouse: order.FromWarehouse,
		ToWarehouse:   order.ToWarehouse,
		Variety:       order.Variety,
		Quantity:      order.Quantity,
		Date:          uc.now(),
	}
	if err := uc.movementRepo.Append(ctx, mov.Message()); err != nil {
		return nil, fmt.Errorf("traslado %s aplicado, registrar historial: %w", mov.ID, err)
	}

	uc.log.Info().
		Str("movement_id", mov.ID).
		Str("cafe", entity.VarietyName(mov.Variety)).
		Str("origen", entity.WarehouseName(mov.FromWarehouse)).
		Str("destino", entity.WarehouseName(mov.ToWarehouse)).
		Int64("cantidad", mov.Quantity).
		Msg("traslado registrado")

	return &dto.TransferResult{
		ID:        mov.ID,
		Message:   mov.Message(),
		Date:      mov.Date,
		Inventory: updated,
	}, nil
}

func (uc *InventoryUseCase) rejected(order entity.TransferOrder, err error) {
	reason := "entrada inválida"
	if errors.Is(err, domain.ErrInsufficientStock) {
		reason = "stock insuficiente"
	}
	uc.log.Warn().
		Int("origen", order.FromWarehouse).
		Int("destino", order.ToWarehouse).
		Int("cafe", order.Variety).
		Int64("cantidad", order.Quantity).
		Str("motivo", reason).
		Msg("traslado rechazado")
}
