package queries

import (
	"context"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"
)

// GetShipmentQueryHandler resolves a shipment by id through the gateway.
type GetShipmentQueryHandler struct {
	shipments ports.ShipmentRepository
}

// NewGetShipmentQueryHandler creates a handler for single-shipment lookups.
func NewGetShipmentQueryHandler(shipments ports.ShipmentRepository) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{shipments: shipments}
}

// Handle executes the lookup. Absent records surface as
// errs.ObjectNotFoundError from the gateway.
func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (*shipment.Shipment, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.shipments.FindByID(ctx, query.ID())
}
