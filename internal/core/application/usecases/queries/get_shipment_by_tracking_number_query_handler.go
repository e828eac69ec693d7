package queries

import (
	"context"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"
)

// GetShipmentByTrackingNumberQueryHandler resolves a shipment by its public
// tracking code.
type GetShipmentByTrackingNumberQueryHandler struct {
	shipments ports.ShipmentRepository
}

// NewGetShipmentByTrackingNumberQueryHandler creates a handler for
// tracking-number lookups.
func NewGetShipmentByTrackingNumberQueryHandler(shipments ports.ShipmentRepository) GetShipmentByTrackingNumberQueryHandler {
	return GetShipmentByTrackingNumberQueryHandler{shipments: shipments}
}

// Handle executes the lookup.
func (h GetShipmentByTrackingNumberQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentByTrackingNumberQuery,
) (*shipment.Shipment, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.shipments.FindByTrackingNumber(ctx, query.TrackingNumber())
}
