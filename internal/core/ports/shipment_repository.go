// Package ports defines the interfaces the core exposes to its adapters.
// The persistence gateway is a dumb store: it executes the normalized
// filter/sort/paging descriptors exactly as given and never applies
// business rules.
package ports

import (
	"context"
	"time"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
)

// SortOrder is the direction of a list sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SortSpec names the field to sort on (canonical API field name, e.g.
// "createdAt") and the direction. Adapters translate the field name to
// their own column/key naming.
type SortSpec struct {
	Field string
	Order SortOrder
}

// ShipmentFilter is the validated filter descriptor driving Count and
// List. Origin, Destination, and Search are case-insensitive partial
// matches; Search matches sender OR receiver name. StartDate/EndDate
// bound createdAt inclusively.
type ShipmentFilter struct {
	Status      *shipment.Status
	Origin      string
	Destination string
	Search      string
	StartDate   *time.Time
	EndDate     *time.Time
}

// ShipmentPatch is a partial-field update descriptor. Nil fields are left
// untouched; the gateway merges the set fields and refreshes updatedAt.
type ShipmentPatch struct {
	SenderName   *string
	ReceiverName *string
	Origin       *string
	Destination  *string
	Status       *shipment.Status
}

// IsEmpty reports whether the patch sets no fields at all.
func (p ShipmentPatch) IsEmpty() bool {
	return p.SenderName == nil && p.ReceiverName == nil && p.Origin == nil &&
		p.Destination == nil && p.Status == nil
}

// ShipmentRepository is the persistence gateway for shipments.
//
// Absent records surface as errs.ObjectNotFoundError; uniqueness
// violations as errs.DuplicateEntryError. Implementations assign the id
// and both timestamps on Create and refresh updatedAt on Update.
type ShipmentRepository interface {
	// Create persists a new shipment and returns the stored record with
	// id and timestamps assigned.
	Create(ctx context.Context, s *shipment.Shipment) (*shipment.Shipment, error)

	// FindByID returns the shipment with the given id.
	FindByID(ctx context.Context, id kernel.ID) (*shipment.Shipment, error)

	// FindByTrackingNumber returns the shipment with the given tracking
	// number.
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (*shipment.Shipment, error)

	// Update applies a partial-field merge and returns the refreshed
	// record.
	Update(ctx context.Context, id kernel.ID, patch ShipmentPatch) (*shipment.Shipment, error)

	// Delete removes the shipment and returns its last-known state.
	Delete(ctx context.Context, id kernel.ID) (*shipment.Shipment, error)

	// Count returns the number of shipments matching the filter.
	Count(ctx context.Context, filter ShipmentFilter) (int64, error)

	// List returns the shipments matching the filter, ordered by sort,
	// starting at skip and returning at most limit records.
	List(ctx context.Context, filter ShipmentFilter, sort SortSpec, skip, limit int) ([]*shipment.Shipment, error)
}
