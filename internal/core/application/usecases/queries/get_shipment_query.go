package queries

import (
	"errors"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/pkg/guard"
)

// ErrGetShipmentQueryIsNotConstructed is returned when the query was not
// created through NewGetShipmentQuery.
var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery represents a validated lookup of a single shipment by
// its store-assigned identifier.
type GetShipmentQuery struct {
	id kernel.ID

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery validates the raw identifier.
func NewGetShipmentQuery(id string) (GetShipmentQuery, error) {
	shipmentID, err := kernel.IDFromString(id)
	if err != nil {
		return GetShipmentQuery{}, err
	}

	return GetShipmentQuery{
		id:    shipmentID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ID returns the shipment identifier.
func (q GetShipmentQuery) ID() kernel.ID { return q.id }
