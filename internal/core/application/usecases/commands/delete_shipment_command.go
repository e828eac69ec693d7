package commands

import (
	"errors"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/pkg/guard"
)

// ErrDeleteShipmentCommandIsNotConstructed is returned when the command was
// not created through NewDeleteShipmentCommand.
var ErrDeleteShipmentCommandIsNotConstructed = errors.New(
	"DeleteShipmentCommand must be created via NewDeleteShipmentCommand constructor",
)

// DeleteShipmentCommand represents a validated request to hard-delete a
// shipment by id. There is no soft-delete or tombstone.
type DeleteShipmentCommand struct {
	id kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteShipmentCommand validates the raw identifier.
func NewDeleteShipmentCommand(id string) (DeleteShipmentCommand, error) {
	shipmentID, err := kernel.IDFromString(id)
	if err != nil {
		return DeleteShipmentCommand{}, err
	}

	return DeleteShipmentCommand{
		id:    shipmentID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShipmentCommandIsNotConstructed)
}

// ID returns the target shipment identifier.
func (c DeleteShipmentCommand) ID() kernel.ID { return c.id }
