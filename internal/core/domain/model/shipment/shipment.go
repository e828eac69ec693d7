package shipment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shipments/internal/core/domain/model/kernel"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was
	// not created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")
)

// Field length bounds for shipment string fields, applied after trimming.
const (
	NameMinLength  = 2
	NameMaxLength  = 100
	PlaceMinLength = 2
	PlaceMaxLength = 200
)

// Shipment is the tracked resource: a single consignment moving through
// the four-state lifecycle.
//
// Invariants:
//   - trackingNumber is set exactly once at creation and never mutated
//   - status only changes along permitted lifecycle edges
//   - all string fields are non-empty after trimming and within bounds
//   - id is assigned by the persistence layer and immutable afterwards
//
// A freshly constructed Shipment has a zero id and zero timestamps; the
// store adapter assigns them on create and the aggregate is rebuilt via
// RestoreShipment on reads.
type Shipment struct {
	id             kernel.ID
	trackingNumber string
	senderName     string
	receiverName   string
	origin         string
	destination    string
	status         Status
	createdAt      time.Time
	updatedAt      time.Time

	isConstructed bool
}

// NewShipment creates a shipment ready for persistence. All string fields
// are trimmed and length-validated; status defaults to pending when empty
// and must otherwise be a valid status value. The tracking number is
// generated here, independent of any client input.
func NewShipment(senderName, receiverName, origin, destination string, status Status) (*Shipment, error) {
	if status == "" {
		status = StatusPending
	}

	s := &Shipment{
		trackingNumber: NewTrackingNumber(),
		status:         status,
		isConstructed:  true,
	}

	if err := errors.Join(
		status.Validate(),
		s.setSenderName(senderName),
		s.setReceiverName(receiverName),
		s.setOrigin(origin),
		s.setDestination(destination),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment rebuilds a shipment aggregate from its persisted state.
// Used by store adapters; the stored values are trusted to have passed
// validation when written.
func RestoreShipment(
	id kernel.ID,
	trackingNumber string,
	senderName, receiverName, origin, destination string,
	status Status,
	createdAt, updatedAt time.Time,
) (*Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Shipment{
		id:             id,
		trackingNumber: trackingNumber,
		senderName:     senderName,
		receiverName:   receiverName,
		origin:         origin,
		destination:    destination,
		status:         status,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by identifier.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the store-assigned identifier (zero before first persistence).
func (s *Shipment) ID() kernel.ID { return s.id }

// TrackingNumber returns the immutable public tracking code.
func (s *Shipment) TrackingNumber() string { return s.trackingNumber }

// SenderName returns the sender's name.
func (s *Shipment) SenderName() string { return s.senderName }

// ReceiverName returns the receiver's name.
func (s *Shipment) ReceiverName() string { return s.receiverName }

// Origin returns the origin address.
func (s *Shipment) Origin() string { return s.origin }

// Destination returns the destination address.
func (s *Shipment) Destination() string { return s.destination }

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status { return s.status }

// CreatedAt returns the creation timestamp (zero before persistence).
func (s *Shipment) CreatedAt() time.Time { return s.createdAt }

// UpdatedAt returns the last-mutation timestamp (zero before persistence).
func (s *Shipment) UpdatedAt() time.Time { return s.updatedAt }

func (s *Shipment) setSenderName(v string) error {
	trimmed, err := ValidateSenderName(v)
	if err != nil {
		return err
	}
	s.senderName = trimmed
	return nil
}

func (s *Shipment) setReceiverName(v string) error {
	trimmed, err := ValidateReceiverName(v)
	if err != nil {
		return err
	}
	s.receiverName = trimmed
	return nil
}

func (s *Shipment) setOrigin(v string) error {
	trimmed, err := ValidateOrigin(v)
	if err != nil {
		return err
	}
	s.origin = trimmed
	return nil
}

func (s *Shipment) setDestination(v string) error {
	trimmed, err := ValidateDestination(v)
	if err != nil {
		return err
	}
	s.destination = trimmed
	return nil
}

// ValidateSenderName trims and bounds-checks a sender name.
func ValidateSenderName(v string) (string, error) {
	return boundedField("senderName", "Sender name", v, NameMinLength, NameMaxLength)
}

// ValidateReceiverName trims and bounds-checks a receiver name.
func ValidateReceiverName(v string) (string, error) {
	return boundedField("receiverName", "Receiver name", v, NameMinLength, NameMaxLength)
}

// ValidateOrigin trims and bounds-checks an origin address.
func ValidateOrigin(v string) (string, error) {
	return boundedField("origin", "Origin", v, PlaceMinLength, PlaceMaxLength)
}

// ValidateDestination trims and bounds-checks a destination address.
func ValidateDestination(v string) (string, error) {
	return boundedField("destination", "Destination", v, PlaceMinLength, PlaceMaxLength)
}

// boundedField trims v and enforces the min/max length bounds, returning
// messages in the API's field-error wording.
func boundedField(field, label, v string, minLen, maxLen int) (string, error) {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return "", &FieldRuleError{Field: field, Message: fmt.Sprintf("%s is required", label)}
	}
	if len(trimmed) < minLen {
		return "", &FieldRuleError{Field: field, Message: fmt.Sprintf("%s must be at least %d characters", label, minLen)}
	}
	if len(trimmed) > maxLen {
		return "", &FieldRuleError{Field: field, Message: fmt.Sprintf("%s must be at most %d characters", label, maxLen)}
	}
	return trimmed, nil
}

// FieldRuleError is a single field-level rule violation raised by the
// entity setters. The command layer collects these into the API-facing
// validation error.
type FieldRuleError struct {
	Field   string
	Message string
}

func (e *FieldRuleError) Error() string {
	return e.Message
}
