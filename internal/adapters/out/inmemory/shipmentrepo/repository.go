// Package shipmentrepo (inmemory) provides a map-backed implementation of
// the shipment gateway. It backs unit and end-to-end tests and the
// "memory" storage driver for local development; it implements the full
// filter, sort, and paging semantics of the persistence contract.
package shipmentrepo

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"
	"shipments/internal/pkg/errs"
)

// record is the stored snapshot of a shipment. seq preserves insertion
// order as a deterministic tie-breaker when sort keys compare equal.
type record struct {
	id             kernel.ID
	trackingNumber string
	senderName     string
	receiverName   string
	origin         string
	destination    string
	status         shipment.Status
	createdAt      time.Time
	updatedAt      time.Time
	seq            int
}

// MemoryShipmentRepository implements ports.ShipmentRepository with an
// in-process map guarded by a RWMutex. Safe for concurrent use.
type MemoryShipmentRepository struct {
	mu      sync.RWMutex
	records map[string]record
	nextSeq int
}

// NewMemoryShipmentRepository creates an empty in-memory repository.
func NewMemoryShipmentRepository() *MemoryShipmentRepository {
	return &MemoryShipmentRepository{
		records: make(map[string]record),
	}
}

// Ping always succeeds for the in-process store.
func (r *MemoryShipmentRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Create assigns a fresh id and timestamps and stores the shipment.
// A tracking-number collision yields a DuplicateEntryError, mirroring the
// unique index the document store enforces.
func (r *MemoryShipmentRepository) Create(ctx context.Context, s *shipment.Shipment) (*shipment.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if rec.trackingNumber == s.TrackingNumber() {
			return nil, errs.NewDuplicateEntryError("trackingNumber", s.TrackingNumber())
		}
	}

	now := time.Now().UTC()
	rec := record{
		id:             kernel.NewID(),
		trackingNumber: s.TrackingNumber(),
		senderName:     s.SenderName(),
		receiverName:   s.ReceiverName(),
		origin:         s.Origin(),
		destination:    s.Destination(),
		status:         s.Status(),
		createdAt:      now,
		updatedAt:      now,
		seq:            r.nextSeq,
	}
	r.nextSeq++
	r.records[rec.id.String()] = rec

	return toDomain(rec)
}

// FindByID returns the shipment with the given id.
func (r *MemoryShipmentRepository) FindByID(ctx context.Context, id kernel.ID) (*shipment.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("Shipment")
	}
	return toDomain(rec)
}

// FindByTrackingNumber returns the shipment with the given tracking code.
func (r *MemoryShipmentRepository) FindByTrackingNumber(ctx context.Context, trackingNumber string) (*shipment.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if rec.trackingNumber == trackingNumber {
			return toDomain(rec)
		}
	}
	return nil, errs.NewObjectNotFoundError("Shipment")
}

// Update merges the set patch fields and refreshes updatedAt.
func (r *MemoryShipmentRepository) Update(ctx context.Context, id kernel.ID, patch ports.ShipmentPatch) (*shipment.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("Shipment")
	}

	if patch.SenderName != nil {
		rec.senderName = *patch.SenderName
	}
	if patch.ReceiverName != nil {
		rec.receiverName = *patch.ReceiverName
	}
	if patch.Origin != nil {
		rec.origin = *patch.Origin
	}
	if patch.Destination != nil {
		rec.destination = *patch.Destination
	}
	if patch.Status != nil {
		rec.status = *patch.Status
	}
	rec.updatedAt = time.Now().UTC()
	r.records[id.String()] = rec

	return toDomain(rec)
}

// Delete removes the shipment and returns its last-known state.
func (r *MemoryShipmentRepository) Delete(ctx context.Context, id kernel.ID) (*shipment.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("Shipment")
	}
	delete(r.records, id.String())

	return toDomain(rec)
}

// Count returns the number of shipments matching the filter.
func (r *MemoryShipmentRepository) Count(ctx context.Context, filter ports.ShipmentFilter) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, rec := range r.records {
		if matchesFilter(rec, filter) {
			count++
		}
	}
	return count, nil
}

// List returns the matching shipments ordered by sort, sliced by skip and
// limit.
func (r *MemoryShipmentRepository) List(
	ctx context.Context,
	filter ports.ShipmentFilter,
	sortSpec ports.SortSpec,
	skip, limit int,
) ([]*shipment.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	matched := make([]record, 0, len(r.records))
	for _, rec := range r.records {
		if matchesFilter(rec, filter) {
			matched = append(matched, rec)
		}
	}
	r.mu.RUnlock()

	sortRecords(matched, sortSpec)

	if skip >= len(matched) {
		return []*shipment.Shipment{}, nil
	}
	end := skip + limit
	if end > len(matched) {
		end = len(matched)
	}

	out := make([]*shipment.Shipment, 0, end-skip)
	for _, rec := range matched[skip:end] {
		s, err := toDomain(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func matchesFilter(rec record, filter ports.ShipmentFilter) bool {
	if filter.Status != nil && rec.status != *filter.Status {
		return false
	}
	if filter.Origin != "" && !containsFold(rec.origin, filter.Origin) {
		return false
	}
	if filter.Destination != "" && !containsFold(rec.destination, filter.Destination) {
		return false
	}
	if filter.Search != "" &&
		!containsFold(rec.senderName, filter.Search) &&
		!containsFold(rec.receiverName, filter.Search) {
		return false
	}
	if filter.StartDate != nil && rec.createdAt.Before(*filter.StartDate) {
		return false
	}
	if filter.EndDate != nil && rec.createdAt.After(*filter.EndDate) {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func sortRecords(records []record, spec ports.SortSpec) {
	less := func(a, b record) bool {
		switch spec.Field {
		case "updatedAt":
			if !a.updatedAt.Equal(b.updatedAt) {
				return a.updatedAt.Before(b.updatedAt)
			}
		case "senderName":
			if a.senderName != b.senderName {
				return a.senderName < b.senderName
			}
		case "receiverName":
			if a.receiverName != b.receiverName {
				return a.receiverName < b.receiverName
			}
		case "origin":
			if a.origin != b.origin {
				return a.origin < b.origin
			}
		case "destination":
			if a.destination != b.destination {
				return a.destination < b.destination
			}
		case "status":
			if a.status != b.status {
				return a.status < b.status
			}
		case "trackingNumber":
			if a.trackingNumber != b.trackingNumber {
				return a.trackingNumber < b.trackingNumber
			}
		default: // createdAt
			if !a.createdAt.Equal(b.createdAt) {
				return a.createdAt.Before(b.createdAt)
			}
		}
		return a.seq < b.seq
	}

	sort.Slice(records, func(i, j int) bool {
		if spec.Order == ports.SortAsc {
			return less(records[i], records[j])
		}
		return less(records[j], records[i])
	})
}

func toDomain(rec record) (*shipment.Shipment, error) {
	return shipment.RestoreShipment(
		rec.id,
		rec.trackingNumber,
		rec.senderName,
		rec.receiverName,
		rec.origin,
		rec.destination,
		rec.status,
		rec.createdAt,
		rec.updatedAt,
	)
}
