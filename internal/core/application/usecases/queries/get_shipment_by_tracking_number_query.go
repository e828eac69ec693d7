package queries

import (
	"errors"

	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"
)

// ErrGetShipmentByTrackingNumberQueryIsNotConstructed is returned when the
// query was not created through its constructor.
var ErrGetShipmentByTrackingNumberQueryIsNotConstructed = errors.New(
	"GetShipmentByTrackingNumberQuery must be created via NewGetShipmentByTrackingNumberQuery constructor",
)

// GetShipmentByTrackingNumberQuery represents a lookup by the public
// tracking code instead of the internal id.
type GetShipmentByTrackingNumberQuery struct {
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewGetShipmentByTrackingNumberQuery validates the raw tracking number.
func NewGetShipmentByTrackingNumberQuery(trackingNumber string) (GetShipmentByTrackingNumberQuery, error) {
	if trackingNumber == "" {
		return GetShipmentByTrackingNumberQuery{}, errs.NewValidationError(
			"Validation failed",
			errs.FieldError{Field: "trackingNumber", Message: "Tracking number is required"},
		)
	}

	return GetShipmentByTrackingNumberQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentByTrackingNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentByTrackingNumberQueryIsNotConstructed)
}

// TrackingNumber returns the tracking code to look up.
func (q GetShipmentByTrackingNumberQuery) TrackingNumber() string { return q.trackingNumber }
