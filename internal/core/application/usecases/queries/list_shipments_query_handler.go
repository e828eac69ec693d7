package queries

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"
)

// PaginationMeta describes the position of a page within the full result
// set of a list query.
type PaginationMeta struct {
	CurrentPage  int
	TotalPages   int
	TotalItems   int64
	ItemsPerPage int
	HasNextPage  bool
	HasPrevPage  bool
}

// ListShipmentsQueryResponse is the read model of a list query: one page of
// shipments plus pagination metadata.
type ListShipmentsQueryResponse struct {
	Shipments  []*shipment.Shipment
	Pagination PaginationMeta
}

// ListShipmentsQueryHandler executes list queries against the gateway. The
// count and the page fetch run concurrently as two independent reads; there
// is no snapshot guarantee between them, so the count may differ slightly
// from the page under concurrent writes.
type ListShipmentsQueryHandler struct {
	shipments ports.ShipmentRepository
}

// NewListShipmentsQueryHandler creates a handler for shipment listings.
func NewListShipmentsQueryHandler(shipments ports.ShipmentRepository) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{shipments: shipments}
}

// Handle executes the query. A page beyond the last one yields an empty
// data slice with correct metadata, never an error.
func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsQuery,
) (ListShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListShipmentsQueryResponse{}, err
	}

	var (
		records    []*shipment.Shipment
		totalItems int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = h.shipments.List(gctx, query.Filter(), query.Sort(), query.Skip(), query.Limit())
		return err
	})
	g.Go(func() error {
		var err error
		totalItems, err = h.shipments.Count(gctx, query.Filter())
		return err
	})
	if err := g.Wait(); err != nil {
		return ListShipmentsQueryResponse{}, err
	}

	if records == nil {
		records = make([]*shipment.Shipment, 0)
	}

	totalPages := int(math.Ceil(float64(totalItems) / float64(query.Limit())))

	return ListShipmentsQueryResponse{
		Shipments: records,
		Pagination: PaginationMeta{
			CurrentPage:  query.Page(),
			TotalPages:   totalPages,
			TotalItems:   totalItems,
			ItemsPerPage: query.Limit(),
			HasNextPage:  query.Page() < totalPages,
			HasPrevPage:  query.Page() > 1,
		},
	}, nil
}
