package commands

import (
	"context"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"
	"shipments/internal/pkg/errs"
)

// UpdateShipmentCommandHandler handles partial shipment updates, enforcing
// the status lifecycle when the update requests a different status than the
// stored one.
//
// The existence/status check and the write are two separate gateway calls;
// a concurrent writer can change the status in between. The store keeps
// single-document updates atomic, and the narrow read-then-write window is
// accepted baseline behavior.
type UpdateShipmentCommandHandler struct {
	shipments ports.ShipmentRepository
}

// NewUpdateShipmentCommandHandler creates a handler for shipment updates.
func NewUpdateShipmentCommandHandler(shipments ports.ShipmentRepository) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{shipments: shipments}
}

// Handle processes the update command and returns the refreshed record.
func (h UpdateShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	existing, err := h.shipments.FindByID(ctx, cmd.ID())
	if err != nil {
		return nil, err
	}

	patch := cmd.Patch()
	if patch.Status != nil && *patch.Status != existing.Status() {
		if !existing.Status().CanTransitionTo(*patch.Status) {
			return nil, errs.NewInvalidStatusTransitionError(
				existing.Status().String(),
				patch.Status.String(),
				statusStrings(existing.Status().AllowedTransitions()),
			)
		}
	}

	return h.shipments.Update(ctx, cmd.ID(), patch)
}

func statusStrings(statuses []shipment.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
