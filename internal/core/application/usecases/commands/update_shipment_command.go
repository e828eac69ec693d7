package commands

import (
	"errors"
	"fmt"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"
	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"
)

// ErrUpdateShipmentCommandIsNotConstructed is returned when the command was
// not created through NewUpdateShipmentCommand.
var ErrUpdateShipmentCommandIsNotConstructed = errors.New(
	"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
)

// UpdateShipmentFields carries the optional raw fields of a partial update.
// Nil pointers mean "leave unchanged"; at least one field must be set.
type UpdateShipmentFields struct {
	SenderName   *string
	ReceiverName *string
	Origin       *string
	Destination  *string
	Status       *string
}

// UpdateShipmentCommand represents a validated partial update of a single
// shipment. The id must be structurally valid; each supplied field is
// trimmed and bounds-checked; a supplied status must be a valid status
// value (the transition check against the stored status happens in the
// handler, where the current state is known).
type UpdateShipmentCommand struct {
	id    kernel.ID
	patch ports.ShipmentPatch

	guard guard.ConstructorGuard
}

// NewUpdateShipmentCommand validates the raw update request.
func NewUpdateShipmentCommand(id string, fields UpdateShipmentFields) (UpdateShipmentCommand, error) {
	shipmentID, err := kernel.IDFromString(id)
	if err != nil {
		return UpdateShipmentCommand{}, err
	}

	cmd := UpdateShipmentCommand{
		id:    shipmentID,
		guard: guard.NewConstructorGuard(),
	}

	var details []errs.FieldError

	if fields.SenderName != nil {
		trimmed, fieldErr := shipment.ValidateSenderName(*fields.SenderName)
		if fieldErr != nil {
			appendFieldError(&details, fieldErr)
		} else {
			cmd.patch.SenderName = &trimmed
		}
	}

	if fields.ReceiverName != nil {
		trimmed, fieldErr := shipment.ValidateReceiverName(*fields.ReceiverName)
		if fieldErr != nil {
			appendFieldError(&details, fieldErr)
		} else {
			cmd.patch.ReceiverName = &trimmed
		}
	}

	if fields.Origin != nil {
		trimmed, fieldErr := shipment.ValidateOrigin(*fields.Origin)
		if fieldErr != nil {
			appendFieldError(&details, fieldErr)
		} else {
			cmd.patch.Origin = &trimmed
		}
	}

	if fields.Destination != nil {
		trimmed, fieldErr := shipment.ValidateDestination(*fields.Destination)
		if fieldErr != nil {
			appendFieldError(&details, fieldErr)
		} else {
			cmd.patch.Destination = &trimmed
		}
	}

	if fields.Status != nil {
		status := shipment.Status(*fields.Status)
		if statusErr := status.Validate(); statusErr != nil {
			details = append(details, errs.FieldError{
				Field:   "status",
				Message: fmt.Sprintf("Status must be one of: %s", joinStatusValues()),
			})
		} else {
			cmd.patch.Status = &status
		}
	}

	if len(details) > 0 {
		return UpdateShipmentCommand{}, errs.NewValidationError("Validation failed", details...)
	}

	if cmd.patch.IsEmpty() {
		return UpdateShipmentCommand{}, errs.NewValidationError(
			"At least one field must be provided for update",
		)
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

// ID returns the target shipment identifier.
func (c UpdateShipmentCommand) ID() kernel.ID { return c.id }

// Patch returns the validated partial-field descriptor.
func (c UpdateShipmentCommand) Patch() ports.ShipmentPatch { return c.patch }
