package queries_test

import (
	"testing"
	"time"

	"shipments/internal/core/application/usecases/queries"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"
	"shipments/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListShipmentsQuery_Defaults(t *testing.T) {
	query, err := queries.NewListShipmentsQuery(queries.RawListShipmentsParams{})

	require.NoError(t, err)
	assert.Equal(t, queries.DefaultPage, query.Page())
	assert.Equal(t, queries.DefaultLimit, query.Limit())
	assert.Equal(t, ports.SortSpec{Field: queries.DefaultSortBy, Order: ports.SortDesc}, query.Sort())
	assert.Equal(t, ports.ShipmentFilter{}, query.Filter())
	assert.Equal(t, 0, query.Skip())
}

func TestNewListShipmentsQuery_PageAndLimitNormalization(t *testing.T) {
	// Malformed pagination degrades to defaults instead of failing: a
	// wrong page is harmless, unlike a wrong filter.
	testCases := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{"empty_values", "", "", 1, 10},
		{"valid_values", "3", "25", 3, 25},
		{"negative_page", "-1", "10", 1, 10},
		{"zero_page", "0", "10", 1, 10},
		{"non_numeric_page", "abc", "10", 1, 10},
		{"fractional_page", "2.5", "10", 1, 10},
		{"negative_limit", "1", "-5", 1, 10},
		{"zero_limit", "1", "0", 1, 10},
		{"non_numeric_limit", "1", "lots", 1, 10},
		{"limit_above_cap", "1", "200", 1, 100},
		{"limit_at_cap", "1", "100", 1, 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			query, err := queries.NewListShipmentsQuery(queries.RawListShipmentsParams{
				Page:  tc.page,
				Limit: tc.limit,
			})

			require.NoError(t, err)
			assert.Equal(t, tc.wantPage, query.Page())
			assert.Equal(t, tc.wantLimit, query.Limit())
		})
	}
}

func TestNewListShipmentsQuery_Skip(t *testing.T) {
	query, err := queries.NewListShipmentsQuery(queries.RawListShipmentsParams{
		Page:  "4",
		Limit: "25",
	})

	require.NoError(t, err)
	assert.Equal(t, 75, query.Skip())
}

func TestNewListShipmentsQuery_Sort(t *testing.T) {
	t.Run("accepts_every_allowed_field", func(t *testing.T) {
		for _, field := range []string{
			"createdAt", "updatedAt", "origin", "destination",
			"status", "senderName", "receiverName", "trackingNumber",
		} {
			query, err := queries.NewListShipmentsQuery(queries.RawListShipmentsParams{SortBy: field})

			require.NoError(t, err, "sortBy %q should be accepted", field)
			assert.Equal(t, field, query.Sort().Field)
		}
	})

	t.Run("rejects_unknown_sort_field", func(t *testing.T) {
		_, err := queries.NewListShipmentsQuery(queries.RawListShipmentsParams{SortBy: "volume"})

		require.Error(t, err)
		assert.Equal(t, errs.CodeInvalidQueryParams, errs.Code(err))
		assert.Contains(t, err.Error(), "Invalid sortBy field: volume")
		assert.Contains(t, err.Error(), "Allowed fields:")
	})

	t.Run("order_asc", func(t *testing.T) {
		query, err := queries.NewListShipmentsQuery(queries.RawListShipmentsParams{Order: "asc"})

		require.NoError(t, err)
		assert.Equal(t, ports.SortAsc, query.Sort().Order)
	})

	t.Run("anything_but_asc_sorts_descending", func(t *testing.T) {
		for _, order := range []string{"", "desc", "DESC", "Asc", "random"} {
			query, err := queries.NewListShipmentsQuery(queries.RawListShipmentsParams{Order: order})

			require.NoError(t, err)
			assert.Equal(t, ports.SortDesc, query.Sort().Order, "order %q", order)
		}
	})
}

func TestNewListShipmentsQuery_StatusFilter(t *testing.T) {
	t.Run("valid_status", func(t *testing.T) {
		query, err := queries.NewListShipmentsQuery(queries.RawListShipmentsParams{Status: "in_transit"})

		require.NoError(t, err)
		require.NotNil(t, query.Filter().Status)
		assert.Equal(t, shipment.StatusInTransit, *query.Filter().Status)
	})

	t.Run("invalid_status_is_a_hard_failure", func(t *testing.T) {
		_, err := queries.NewListShipmentsQuery(queries.RawListShipmentsParams{Status: "shipped"})

		require.Error(t, err)
		assert.Equal(t, errs.CodeInvalidQueryParams, errs.Code(err))
		assert.Contains(t, err.Error(), "Invalid status filter: shipped")
	})
}

func TestNewListShipmentsQuery_TextFilters(t *testing.T) {
	query, err := queries.NewListShipmentsQuery(queries.RawListShipmentsParams{
		Origin:      "  Lagos  ",
		Destination: " Abuja ",
		Search:      " doe ",
	})

	require.NoError(t, err)
	assert.Equal(t, "Lagos", query.Filter().Origin)
	assert.Equal(t, "Abuja", query.Filter().Destination)
	assert.Equal(t, "doe", query.Filter().Search)
}

func TestNewListShipmentsQuery_DateFilters(t *testing.T) {
	t.Run("calendar_date", func(t *testing.T) {
		query, err := queries.NewListShipmentsQuery(queries.RawListShipmentsParams{
			StartDate: "2026-01-01",
			EndDate:   "2026-02-01",
		})

		require.NoError(t, err)
		require.NotNil(t, query.Filter().StartDate)
		require.NotNil(t, query.Filter().EndDate)
		assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *query.Filter().StartDate)
	})

	t.Run("rfc3339_timestamp", func(t *testing.T) {
		query, err := queries.NewListShipmentsQuery(queries.RawListShipmentsParams{
			StartDate: "2026-01-01T12:30:00Z",
		})

		require.NoError(t, err)
		require.NotNil(t, query.Filter().StartDate)
		assert.Equal(t, 12, query.Filter().StartDate.Hour())
	})

	t.Run("malformed_start_date", func(t *testing.T) {
		_, err := queries.NewListShipmentsQuery(queries.RawListShipmentsParams{StartDate: "01/02/2026"})

		require.Error(t, err)
		assert.Equal(t, errs.CodeInvalidQueryParams, errs.Code(err))
		assert.Contains(t, err.Error(), "Invalid startDate format")
	})

	t.Run("malformed_end_date", func(t *testing.T) {
		_, err := queries.NewListShipmentsQuery(queries.RawListShipmentsParams{EndDate: "soon"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid endDate format")
	})

	t.Run("inverted_range", func(t *testing.T) {
		_, err := queries.NewListShipmentsQuery(queries.RawListShipmentsParams{
			StartDate: "2026-02-01",
			EndDate:   "2026-01-01",
		})

		require.Error(t, err)
		assert.Equal(t, "startDate cannot be after endDate", err.Error())
	})

	t.Run("equal_start_and_end_accepted", func(t *testing.T) {
		_, err := queries.NewListShipmentsQuery(queries.RawListShipmentsParams{
			StartDate: "2026-01-01",
			EndDate:   "2026-01-01",
		})

		require.NoError(t, err)
	})
}

func TestListShipmentsQuery_Validate(t *testing.T) {
	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var query queries.ListShipmentsQuery

		err := query.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, queries.ErrListShipmentsQueryIsNotConstructed)
	})
}
