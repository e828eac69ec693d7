package commands

import (
	"context"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"
)

// CreateShipmentCommandHandler handles shipment creation: it builds the
// aggregate (which generates the tracking number) and persists it through
// the gateway in a single write.
type CreateShipmentCommandHandler struct {
	shipments ports.ShipmentRepository
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
func NewCreateShipmentCommandHandler(shipments ports.ShipmentRepository) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{shipments: shipments}
}

// Handle processes the creation command and returns the stored record with
// id and timestamps assigned.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	s, err := shipment.NewShipment(
		cmd.SenderName(),
		cmd.ReceiverName(),
		cmd.Origin(),
		cmd.Destination(),
		cmd.Status(),
	)
	if err != nil {
		return nil, err
	}

	return h.shipments.Create(ctx, s)
}
