package http_test

import (
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "shipments/internal/adapters/in/http"
	"shipments/internal/adapters/out/inmemory/shipmentrepo"
	"shipments/internal/core/application/usecases/commands"
	"shipments/internal/core/application/usecases/queries"
	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/pkg/errs"
)

type shipmentBody struct {
	ID             string `json:"id"`
	TrackingNumber string `json:"trackingNumber"`
	SenderName     string `json:"senderName"`
	ReceiverName   string `json:"receiverName"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	Status         string `json:"status"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

type shipmentEnvelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    shipmentBody `json:"data"`
}

type listEnvelope struct {
	Success    bool                           `json:"success"`
	Message    string                         `json:"message"`
	Data       []shipmentBody                 `json:"data"`
	Pagination httpadapter.PaginationResponse `json:"pagination"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   struct {
		Code    string            `json:"code"`
		Details []errs.FieldError `json:"details"`
	} `json:"error"`
}

func newTestAPI(t *testing.T) (*echo.Echo, *shipmentrepo.MemoryShipmentRepository) {
	t.Helper()

	repo := shipmentrepo.NewMemoryShipmentRepository()
	server := httpadapter.NewServer(
		commands.NewCreateShipmentCommandHandler(repo),
		commands.NewUpdateShipmentCommandHandler(repo),
		commands.NewDeleteShipmentCommandHandler(repo),
		queries.NewGetShipmentQueryHandler(repo),
		queries.NewGetShipmentByTrackingNumberQueryHandler(repo),
		queries.NewListShipmentsQueryHandler(repo),
		repo,
		"test",
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e, repo
}

func doRequest(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func createShipment(t *testing.T, e *echo.Echo, body string) shipmentBody {
	t.Helper()

	rec := doRequest(t, e, nethttp.MethodPost, "/api/v1/shipments", body)
	require.Equal(t, nethttp.StatusCreated, rec.Code, rec.Body.String())

	var envelope shipmentEnvelope
	decodeInto(t, rec, &envelope)
	return envelope.Data
}

const validShipmentJSON = `{
	"senderName": "John Doe",
	"receiverName": "Jane Smith",
	"origin": "Lagos, Nigeria",
	"destination": "Abuja, Nigeria"
}`

func TestCreateShipmentEndpoint(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		e, _ := newTestAPI(t)

		rec := doRequest(t, e, nethttp.MethodPost, "/api/v1/shipments", validShipmentJSON)

		require.Equal(t, nethttp.StatusCreated, rec.Code)

		var envelope shipmentEnvelope
		decodeInto(t, rec, &envelope)
		assert.True(t, envelope.Success)
		assert.Equal(t, "Shipment created successfully", envelope.Message)
		assert.Equal(t, "John Doe", envelope.Data.SenderName)
		assert.Equal(t, "pending", envelope.Data.Status, "status defaults to pending")
		assert.Regexp(t, `^SHP-\d{8}-[A-Z0-9]{8}$`, envelope.Data.TrackingNumber)
		assert.Len(t, envelope.Data.ID, 24)
	})

	t.Run("explicit_status", func(t *testing.T) {
		e, _ := newTestAPI(t)

		created := createShipment(t, e, `{
			"senderName": "John Doe",
			"receiverName": "Jane Smith",
			"origin": "Lagos",
			"destination": "Abuja",
			"status": "in_transit"
		}`)

		assert.Equal(t, "in_transit", created.Status)
	})

	t.Run("validation_failure_collects_details", func(t *testing.T) {
		e, _ := newTestAPI(t)

		rec := doRequest(t, e, nethttp.MethodPost, "/api/v1/shipments", `{"senderName": "J"}`)

		require.Equal(t, nethttp.StatusBadRequest, rec.Code)

		var envelope errorEnvelope
		decodeInto(t, rec, &envelope)
		assert.False(t, envelope.Success)
		assert.Equal(t, "Validation failed", envelope.Message)
		assert.Equal(t, errs.CodeValidationError, envelope.Error.Code)
		require.Len(t, envelope.Error.Details, 4, "short sender plus three missing fields")

		fields := make([]string, 0, len(envelope.Error.Details))
		for _, d := range envelope.Error.Details {
			fields = append(fields, d.Field)
		}
		assert.Contains(t, fields, "senderName")
		assert.Contains(t, fields, "receiverName")
		assert.Contains(t, fields, "origin")
		assert.Contains(t, fields, "destination")
	})

	t.Run("malformed_json", func(t *testing.T) {
		e, _ := newTestAPI(t)

		rec := doRequest(t, e, nethttp.MethodPost, "/api/v1/shipments", `{"senderName": `)

		require.Equal(t, nethttp.StatusBadRequest, rec.Code)

		var envelope errorEnvelope
		decodeInto(t, rec, &envelope)
		assert.Equal(t, "Invalid JSON in request body", envelope.Message)
		assert.Equal(t, errs.CodeValidationError, envelope.Error.Code)
	})
}

func TestGetShipmentEndpoint(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		e, _ := newTestAPI(t)
		created := createShipment(t, e, validShipmentJSON)

		rec := doRequest(t, e, nethttp.MethodGet, "/api/v1/shipments/"+created.ID, "")

		require.Equal(t, nethttp.StatusOK, rec.Code)

		var envelope shipmentEnvelope
		decodeInto(t, rec, &envelope)
		assert.Equal(t, "Shipment retrieved successfully", envelope.Message)
		assert.Equal(t, created.ID, envelope.Data.ID)
	})

	t.Run("not_found", func(t *testing.T) {
		e, _ := newTestAPI(t)

		rec := doRequest(t, e, nethttp.MethodGet, "/api/v1/shipments/"+kernel.NewID().String(), "")

		require.Equal(t, nethttp.StatusNotFound, rec.Code)

		var envelope errorEnvelope
		decodeInto(t, rec, &envelope)
		assert.Equal(t, "Shipment not found", envelope.Message)
		assert.Equal(t, errs.CodeResourceNotFound, envelope.Error.Code)
	})

	t.Run("malformed_id", func(t *testing.T) {
		e, _ := newTestAPI(t)

		rec := doRequest(t, e, nethttp.MethodGet, "/api/v1/shipments/not-an-id", "")

		require.Equal(t, nethttp.StatusBadRequest, rec.Code)

		var envelope errorEnvelope
		decodeInto(t, rec, &envelope)
		assert.Equal(t, "Validation failed", envelope.Message)
		assert.Equal(t, errs.CodeValidationError, envelope.Error.Code)
		require.Len(t, envelope.Error.Details, 1)
		assert.Equal(t, "id", envelope.Error.Details[0].Field)
		assert.Equal(t, "Shipment ID must be a valid MongoDB ObjectId", envelope.Error.Details[0].Message)
	})
}

func TestGetShipmentByTrackingNumberEndpoint(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		e, _ := newTestAPI(t)
		created := createShipment(t, e, validShipmentJSON)

		rec := doRequest(t, e, nethttp.MethodGet, "/api/v1/shipments/tracking/"+created.TrackingNumber, "")

		require.Equal(t, nethttp.StatusOK, rec.Code)

		var envelope shipmentEnvelope
		decodeInto(t, rec, &envelope)
		assert.Equal(t, created.ID, envelope.Data.ID)
	})

	t.Run("not_found", func(t *testing.T) {
		e, _ := newTestAPI(t)

		rec := doRequest(t, e, nethttp.MethodGet, "/api/v1/shipments/tracking/SHP-20260101-ZZZZ9999", "")

		require.Equal(t, nethttp.StatusNotFound, rec.Code)

		var envelope errorEnvelope
		decodeInto(t, rec, &envelope)
		assert.Equal(t, errs.CodeResourceNotFound, envelope.Error.Code)
	})
}

func TestUpdateShipmentEndpoint(t *testing.T) {
	t.Run("updates_fields", func(t *testing.T) {
		e, _ := newTestAPI(t)
		created := createShipment(t, e, validShipmentJSON)

		rec := doRequest(t, e, nethttp.MethodPut, "/api/v1/shipments/"+created.ID,
			`{"origin": "Kano, Nigeria", "status": "in_transit"}`)

		require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())

		var envelope shipmentEnvelope
		decodeInto(t, rec, &envelope)
		assert.Equal(t, "Shipment updated successfully", envelope.Message)
		assert.Equal(t, "Kano, Nigeria", envelope.Data.Origin)
		assert.Equal(t, "in_transit", envelope.Data.Status)
		assert.Equal(t, created.SenderName, envelope.Data.SenderName)
	})

	t.Run("empty_body", func(t *testing.T) {
		e, _ := newTestAPI(t)
		created := createShipment(t, e, validShipmentJSON)

		rec := doRequest(t, e, nethttp.MethodPut, "/api/v1/shipments/"+created.ID, `{}`)

		require.Equal(t, nethttp.StatusBadRequest, rec.Code)

		var envelope errorEnvelope
		decodeInto(t, rec, &envelope)
		assert.Equal(t, "At least one field must be provided for update", envelope.Message)
		assert.Equal(t, errs.CodeValidationError, envelope.Error.Code)
	})

	t.Run("illegal_transition", func(t *testing.T) {
		e, _ := newTestAPI(t)
		created := createShipment(t, e, validShipmentJSON)

		rec := doRequest(t, e, nethttp.MethodPut, "/api/v1/shipments/"+created.ID,
			`{"status": "delivered"}`)

		require.Equal(t, nethttp.StatusBadRequest, rec.Code)

		var envelope errorEnvelope
		decodeInto(t, rec, &envelope)
		assert.Equal(t, errs.CodeInvalidStatusTransition, envelope.Error.Code)
		assert.Contains(t, envelope.Message, "Invalid status transition from 'pending' to 'delivered'")
		require.Len(t, envelope.Error.Details, 1)
		assert.Equal(t, "status", envelope.Error.Details[0].Field)
	})

	t.Run("terminal_state", func(t *testing.T) {
		e, _ := newTestAPI(t)
		created := createShipment(t, e, `{
			"senderName": "John Doe",
			"receiverName": "Jane Smith",
			"origin": "Lagos",
			"destination": "Abuja",
			"status": "delivered"
		}`)

		rec := doRequest(t, e, nethttp.MethodPut, "/api/v1/shipments/"+created.ID,
			`{"status": "in_transit"}`)

		require.Equal(t, nethttp.StatusBadRequest, rec.Code)

		var envelope errorEnvelope
		decodeInto(t, rec, &envelope)
		assert.Equal(t, "Cannot change status from 'delivered'. This is a final state.", envelope.Message)
	})

	t.Run("not_found", func(t *testing.T) {
		e, _ := newTestAPI(t)

		rec := doRequest(t, e, nethttp.MethodPut, "/api/v1/shipments/"+kernel.NewID().String(),
			`{"origin": "Kano"}`)

		require.Equal(t, nethttp.StatusNotFound, rec.Code)
	})
}

func TestDeleteShipmentEndpoint(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		e, _ := newTestAPI(t)
		created := createShipment(t, e, validShipmentJSON)

		rec := doRequest(t, e, nethttp.MethodDelete, "/api/v1/shipments/"+created.ID, "")

		require.Equal(t, nethttp.StatusOK, rec.Code)

		var envelope shipmentEnvelope
		decodeInto(t, rec, &envelope)
		assert.Equal(t, "Shipment deleted successfully", envelope.Message)
		assert.Equal(t, created.ID, envelope.Data.ID, "reply carries the removed record")

		rec = doRequest(t, e, nethttp.MethodGet, "/api/v1/shipments/"+created.ID, "")
		assert.Equal(t, nethttp.StatusNotFound, rec.Code)
	})

	t.Run("not_found", func(t *testing.T) {
		e, _ := newTestAPI(t)

		rec := doRequest(t, e, nethttp.MethodDelete, "/api/v1/shipments/"+kernel.NewID().String(), "")

		require.Equal(t, nethttp.StatusNotFound, rec.Code)
	})
}

func TestListShipmentsEndpoint(t *testing.T) {
	seedThree := func(t *testing.T, e *echo.Echo) {
		t.Helper()
		createShipment(t, e, validShipmentJSON)
		createShipment(t, e, `{
			"senderName": "Ada Obi",
			"receiverName": "Chris Okafor",
			"origin": "Accra, Ghana",
			"destination": "Lagos, Nigeria",
			"status": "in_transit"
		}`)
		createShipment(t, e, `{
			"senderName": "Samuel Doe",
			"receiverName": "Grace Eze",
			"origin": "Nairobi, Kenya",
			"destination": "Kampala, Uganda"
		}`)
	}

	t.Run("default_pagination", func(t *testing.T) {
		e, _ := newTestAPI(t)
		seedThree(t, e)

		rec := doRequest(t, e, nethttp.MethodGet, "/api/v1/shipments", "")

		require.Equal(t, nethttp.StatusOK, rec.Code)

		var envelope listEnvelope
		decodeInto(t, rec, &envelope)
		assert.Equal(t, "Shipments retrieved successfully", envelope.Message)
		assert.Len(t, envelope.Data, 3)
		assert.Equal(t, httpadapter.PaginationResponse{
			CurrentPage:  1,
			TotalPages:   1,
			TotalItems:   3,
			ItemsPerPage: 10,
			HasNextPage:  false,
			HasPrevPage:  false,
		}, envelope.Pagination)
	})

	t.Run("page_and_limit", func(t *testing.T) {
		e, _ := newTestAPI(t)
		seedThree(t, e)

		rec := doRequest(t, e, nethttp.MethodGet, "/api/v1/shipments?page=2&limit=2", "")

		require.Equal(t, nethttp.StatusOK, rec.Code)

		var envelope listEnvelope
		decodeInto(t, rec, &envelope)
		assert.Len(t, envelope.Data, 1)
		assert.Equal(t, 2, envelope.Pagination.CurrentPage)
		assert.Equal(t, 2, envelope.Pagination.TotalPages)
		assert.True(t, envelope.Pagination.HasPrevPage)
		assert.False(t, envelope.Pagination.HasNextPage)
	})

	t.Run("status_filter", func(t *testing.T) {
		e, _ := newTestAPI(t)
		seedThree(t, e)

		rec := doRequest(t, e, nethttp.MethodGet, "/api/v1/shipments?status=in_transit", "")

		require.Equal(t, nethttp.StatusOK, rec.Code)

		var envelope listEnvelope
		decodeInto(t, rec, &envelope)
		require.Len(t, envelope.Data, 1)
		assert.Equal(t, "Ada Obi", envelope.Data[0].SenderName)
	})

	t.Run("search_and_sort", func(t *testing.T) {
		e, _ := newTestAPI(t)
		seedThree(t, e)

		rec := doRequest(t, e, nethttp.MethodGet, "/api/v1/shipments?search=doe&sortBy=senderName&order=asc", "")

		require.Equal(t, nethttp.StatusOK, rec.Code)

		var envelope listEnvelope
		decodeInto(t, rec, &envelope)
		require.Len(t, envelope.Data, 2)
		assert.Equal(t, "John Doe", envelope.Data[0].SenderName)
		assert.Equal(t, "Samuel Doe", envelope.Data[1].SenderName)
	})

	t.Run("empty_result_serializes_as_array", func(t *testing.T) {
		e, _ := newTestAPI(t)

		rec := doRequest(t, e, nethttp.MethodGet, "/api/v1/shipments", "")

		require.Equal(t, nethttp.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"data":[]`)
	})

	t.Run("invalid_sort_field", func(t *testing.T) {
		e, _ := newTestAPI(t)

		rec := doRequest(t, e, nethttp.MethodGet, "/api/v1/shipments?sortBy=weight", "")

		require.Equal(t, nethttp.StatusBadRequest, rec.Code)

		var envelope errorEnvelope
		decodeInto(t, rec, &envelope)
		assert.Equal(t, errs.CodeInvalidQueryParams, envelope.Error.Code)
		assert.Contains(t, envelope.Message, "Invalid sortBy field: weight")
	})

	t.Run("invalid_status_filter", func(t *testing.T) {
		e, _ := newTestAPI(t)

		rec := doRequest(t, e, nethttp.MethodGet, "/api/v1/shipments?status=shipped", "")

		require.Equal(t, nethttp.StatusBadRequest, rec.Code)

		var envelope errorEnvelope
		decodeInto(t, rec, &envelope)
		assert.Equal(t, errs.CodeInvalidQueryParams, envelope.Error.Code)
		assert.Contains(t, envelope.Message, "Invalid status filter: shipped")
	})

	t.Run("inverted_date_range", func(t *testing.T) {
		e, _ := newTestAPI(t)

		rec := doRequest(t, e, nethttp.MethodGet,
			"/api/v1/shipments?startDate=2026-02-01&endDate=2026-01-01", "")

		require.Equal(t, nethttp.StatusBadRequest, rec.Code)

		var envelope errorEnvelope
		decodeInto(t, rec, &envelope)
		assert.Equal(t, "startDate cannot be after endDate", envelope.Message)
	})
}

func TestHealthEndpoints(t *testing.T) {
	t.Run("health", func(t *testing.T) {
		e, _ := newTestAPI(t)

		rec := doRequest(t, e, nethttp.MethodGet, "/health", "")

		require.Equal(t, nethttp.StatusOK, rec.Code)

		var envelope struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
			Data    struct {
				Status      string `json:"status"`
				Environment string `json:"environment"`
				Database    struct {
					Connected bool `json:"connected"`
				} `json:"database"`
			} `json:"data"`
		}
		decodeInto(t, rec, &envelope)
		assert.True(t, envelope.Success)
		assert.Equal(t, "API is healthy", envelope.Message)
		assert.Equal(t, "healthy", envelope.Data.Status)
		assert.Equal(t, "test", envelope.Data.Environment)
		assert.True(t, envelope.Data.Database.Connected)
	})

	t.Run("live", func(t *testing.T) {
		e, _ := newTestAPI(t)

		rec := doRequest(t, e, nethttp.MethodGet, "/health/live", "")

		require.Equal(t, nethttp.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "API is alive")
	})

	t.Run("ready", func(t *testing.T) {
		e, _ := newTestAPI(t)

		rec := doRequest(t, e, nethttp.MethodGet, "/health/ready", "")

		require.Equal(t, nethttp.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "API is ready")
	})
}

func TestRouteNotFound(t *testing.T) {
	e, _ := newTestAPI(t)

	rec := doRequest(t, e, nethttp.MethodGet, "/api/v1/parcels", "")

	require.Equal(t, nethttp.StatusNotFound, rec.Code)

	var envelope errorEnvelope
	decodeInto(t, rec, &envelope)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Route GET /api/v1/parcels not found", envelope.Message)
	assert.Equal(t, errs.CodeResourceNotFound, envelope.Error.Code)
}
