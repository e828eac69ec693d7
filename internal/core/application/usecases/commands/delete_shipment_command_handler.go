package commands

import (
	"context"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"
)

// DeleteShipmentCommandHandler handles shipment deletion and returns the
// deleted record's last-known state.
type DeleteShipmentCommandHandler struct {
	shipments ports.ShipmentRepository
}

// NewDeleteShipmentCommandHandler creates a handler for shipment deletion.
func NewDeleteShipmentCommandHandler(shipments ports.ShipmentRepository) DeleteShipmentCommandHandler {
	return DeleteShipmentCommandHandler{shipments: shipments}
}

// Handle processes the delete command.
func (h DeleteShipmentCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.shipments.Delete(ctx, cmd.ID())
}
