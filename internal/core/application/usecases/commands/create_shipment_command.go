package commands

import (
	"errors"
	"fmt"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"
)

// ErrCreateShipmentCommandIsNotConstructed is returned when the command was
// not created through NewCreateShipmentCommand.
var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a validated request to register a new
// shipment. Sender, receiver, origin, and destination are required and
// length-bounded; status is optional and defaults to pending.
type CreateShipmentCommand struct {
	senderName   string
	receiverName string
	origin       string
	destination  string
	status       shipment.Status

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand validates the raw create fields. Field failures
// are collected into a single errs.ValidationError carrying one detail per
// offending field, matching the API's error envelope.
func NewCreateShipmentCommand(senderName, receiverName, origin, destination, status string) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	var details []errs.FieldError

	appendFieldError(&details, cmd.setSenderName(senderName))
	appendFieldError(&details, cmd.setReceiverName(receiverName))
	appendFieldError(&details, cmd.setOrigin(origin))
	appendFieldError(&details, cmd.setDestination(destination))
	appendFieldError(&details, cmd.setStatus(status))

	if len(details) > 0 {
		return CreateShipmentCommand{}, errs.NewValidationError("Validation failed", details...)
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// SenderName returns the trimmed sender name.
func (c CreateShipmentCommand) SenderName() string { return c.senderName }

// ReceiverName returns the trimmed receiver name.
func (c CreateShipmentCommand) ReceiverName() string { return c.receiverName }

// Origin returns the trimmed origin address.
func (c CreateShipmentCommand) Origin() string { return c.origin }

// Destination returns the trimmed destination address.
func (c CreateShipmentCommand) Destination() string { return c.destination }

// Status returns the requested initial status, pending when none was
// supplied.
func (c CreateShipmentCommand) Status() shipment.Status { return c.status }

func (c *CreateShipmentCommand) setSenderName(v string) error {
	trimmed, err := shipment.ValidateSenderName(v)
	if err != nil {
		return err
	}
	c.senderName = trimmed
	return nil
}

func (c *CreateShipmentCommand) setReceiverName(v string) error {
	trimmed, err := shipment.ValidateReceiverName(v)
	if err != nil {
		return err
	}
	c.receiverName = trimmed
	return nil
}

func (c *CreateShipmentCommand) setOrigin(v string) error {
	trimmed, err := shipment.ValidateOrigin(v)
	if err != nil {
		return err
	}
	c.origin = trimmed
	return nil
}

func (c *CreateShipmentCommand) setDestination(v string) error {
	trimmed, err := shipment.ValidateDestination(v)
	if err != nil {
		return err
	}
	c.destination = trimmed
	return nil
}

func (c *CreateShipmentCommand) setStatus(v string) error {
	if v == "" {
		c.status = shipment.StatusPending
		return nil
	}

	status := shipment.Status(v)
	if err := status.Validate(); err != nil {
		return &shipment.FieldRuleError{
			Field:   "status",
			Message: fmt.Sprintf("Status must be one of: %s", joinStatusValues()),
		}
	}

	c.status = status
	return nil
}

// appendFieldError converts an entity field-rule violation into an envelope
// detail. Non-field errors keep their message without a field name.
func appendFieldError(details *[]errs.FieldError, err error) {
	if err == nil {
		return
	}

	var ruleErr *shipment.FieldRuleError
	if errors.As(err, &ruleErr) {
		*details = append(*details, errs.FieldError{Field: ruleErr.Field, Message: ruleErr.Message})
		return
	}

	*details = append(*details, errs.FieldError{Message: err.Error()})
}

func joinStatusValues() string {
	out := ""
	for i, s := range shipment.Statuses() {
		if i > 0 {
			out += ", "
		}
		out += string(s)
	}
	return out
}
