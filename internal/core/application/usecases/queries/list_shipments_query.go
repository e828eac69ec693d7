package queries

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"
	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"
)

// ErrListShipmentsQueryIsNotConstructed is returned when the query was not
// created through NewListShipmentsQuery.
var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// Pagination and sorting defaults for shipment listings.
const (
	DefaultPage   = 1
	DefaultLimit  = 10
	MaxLimit      = 100
	DefaultSortBy = "createdAt"
)

// allowedSortFields is the allow-list of sortable fields. Anything outside
// it is a hard validation failure, never silently defaulted.
func allowedSortFields() []string {
	return []string{
		"createdAt",
		"updatedAt",
		"origin",
		"destination",
		"status",
		"senderName",
		"receiverName",
		"trackingNumber",
	}
}

// RawListShipmentsParams holds the untrusted, all-optional string
// parameters of a list request, exactly as they arrive at the boundary.
type RawListShipmentsParams struct {
	Page        string
	Limit       string
	SortBy      string
	Order       string
	Status      string
	Origin      string
	Destination string
	Search      string
	StartDate   string
	EndDate     string
}

// ListShipmentsQuery is the validated, bounded list descriptor.
//
// Normalization is deliberately asymmetric: malformed page/limit values
// degrade to sane defaults (harmless), while malformed sortBy, status, or
// date filters fail the request — silently accepting them would return
// misleadingly wrong result sets.
type ListShipmentsQuery struct {
	page   int
	limit  int
	sort   ports.SortSpec
	filter ports.ShipmentFilter

	guard guard.ConstructorGuard
}

// NewListShipmentsQuery normalizes the raw parameters into a validated
// descriptor, applying defaults, clamping the limit, and validating the
// semantic filters. Returns errs.InvalidQueryParamsError on hard failures.
func NewListShipmentsQuery(raw RawListShipmentsParams) (ListShipmentsQuery, error) {
	query := ListShipmentsQuery{
		guard: guard.NewConstructorGuard(),
	}

	query.page = parsePositiveInt(raw.Page, DefaultPage)
	query.limit = parsePositiveInt(raw.Limit, DefaultLimit)
	if query.limit > MaxLimit {
		query.limit = MaxLimit
	}

	if err := query.setSort(raw.SortBy, raw.Order); err != nil {
		return ListShipmentsQuery{}, err
	}

	if err := query.setFilter(raw); err != nil {
		return ListShipmentsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// Page returns the 1-based page number.
func (q ListShipmentsQuery) Page() int { return q.page }

// Limit returns the page size, capped at MaxLimit.
func (q ListShipmentsQuery) Limit() int { return q.limit }

// Sort returns the sort specification.
func (q ListShipmentsQuery) Sort() ports.SortSpec { return q.sort }

// Filter returns the validated filter descriptor.
func (q ListShipmentsQuery) Filter() ports.ShipmentFilter { return q.filter }

// Skip returns the offset implied by page and limit.
func (q ListShipmentsQuery) Skip() int { return (q.page - 1) * q.limit }

func (q *ListShipmentsQuery) setSort(sortBy, order string) error {
	if sortBy == "" {
		sortBy = DefaultSortBy
	}

	valid := false
	for _, field := range allowedSortFields() {
		if sortBy == field {
			valid = true
			break
		}
	}
	if !valid {
		return errs.NewInvalidQueryParamsError(fmt.Sprintf(
			"Invalid sortBy field: %s. Allowed fields: %s",
			sortBy, strings.Join(allowedSortFields(), ", "),
		))
	}

	sortOrder := ports.SortDesc
	if order == "asc" {
		sortOrder = ports.SortAsc
	}

	q.sort = ports.SortSpec{Field: sortBy, Order: sortOrder}
	return nil
}

func (q *ListShipmentsQuery) setFilter(raw RawListShipmentsParams) error {
	if raw.Status != "" {
		status := shipment.Status(raw.Status)
		if err := status.Validate(); err != nil {
			return errs.NewInvalidQueryParamsError(fmt.Sprintf(
				"Invalid status filter: %s. Valid statuses: %s",
				raw.Status, joinStatusValues(),
			))
		}
		q.filter.Status = &status
	}

	q.filter.Origin = strings.TrimSpace(raw.Origin)
	q.filter.Destination = strings.TrimSpace(raw.Destination)
	q.filter.Search = strings.TrimSpace(raw.Search)

	if raw.StartDate != "" {
		startDate, err := parseISODate(raw.StartDate)
		if err != nil {
			return errs.NewInvalidQueryParamsError(fmt.Sprintf(
				"Invalid startDate format: %s. Use ISO 8601 format (e.g., 2024-01-01)", raw.StartDate,
			))
		}
		q.filter.StartDate = &startDate
	}

	if raw.EndDate != "" {
		endDate, err := parseISODate(raw.EndDate)
		if err != nil {
			return errs.NewInvalidQueryParamsError(fmt.Sprintf(
				"Invalid endDate format: %s. Use ISO 8601 format (e.g., 2024-12-31)", raw.EndDate,
			))
		}
		q.filter.EndDate = &endDate
	}

	if q.filter.StartDate != nil && q.filter.EndDate != nil && q.filter.StartDate.After(*q.filter.EndDate) {
		return errs.NewInvalidQueryParamsError("startDate cannot be after endDate")
	}

	return nil
}

// parsePositiveInt parses v as a base-10 integer, falling back to def for
// missing, non-numeric, or non-positive values. Soft normalization only.
func parsePositiveInt(v string, def int) int {
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// parseISODate accepts a calendar date (2006-01-02) or a full RFC 3339
// timestamp.
func parseISODate(v string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func joinStatusValues() string {
	parts := make([]string, 0, len(shipment.Statuses()))
	for _, s := range shipment.Statuses() {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, ", ")
}
