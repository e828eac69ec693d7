// Package http implements the inbound REST adapter. It translates HTTP
// requests into commands and queries, and domain results back into the
// API's response envelopes.
package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"shipments/internal/core/application/usecases/commands"
	"shipments/internal/core/application/usecases/queries"
	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/ports"
	"shipments/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler commands.CreateShipmentCommandHandler
	updateShipmentHandler commands.UpdateShipmentCommandHandler
	deleteShipmentHandler commands.DeleteShipmentCommandHandler

	// Query handlers
	getShipmentHandler         queries.GetShipmentQueryHandler
	getByTrackingNumberHandler queries.GetShipmentByTrackingNumberQueryHandler
	listShipmentsHandler       queries.ListShipmentsQueryHandler

	storeHealth ports.StoreHealth
	environment string
	production  bool
	startedAt   time.Time
}

// NewServer creates a new HTTP server with the required command and query
// handlers. environment is the deployment environment name; in production
// internal error messages are redacted.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateShipmentHandler commands.UpdateShipmentCommandHandler,
	deleteShipmentHandler commands.DeleteShipmentCommandHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	getByTrackingNumberHandler queries.GetShipmentByTrackingNumberQueryHandler,
	listShipmentsHandler queries.ListShipmentsQueryHandler,
	storeHealth ports.StoreHealth,
	environment string,
) *Server {
	return &Server{
		createShipmentHandler:      createShipmentHandler,
		updateShipmentHandler:      updateShipmentHandler,
		deleteShipmentHandler:      deleteShipmentHandler,
		getShipmentHandler:         getShipmentHandler,
		getByTrackingNumberHandler: getByTrackingNumberHandler,
		listShipmentsHandler:       listShipmentsHandler,
		storeHealth:                storeHealth,
		environment:                environment,
		production:                 environment == "production",
		startedAt:                  time.Now(),
	}
}

// RegisterRoutes mounts all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/health/live", s.HealthLive)
	e.GET("/health/ready", s.HealthReady)

	shipments := e.Group("/api/v1/shipments")
	shipments.POST("", s.CreateShipment)
	shipments.GET("", s.ListShipments)
	shipments.GET("/tracking/:trackingNumber", s.GetShipmentByTrackingNumber)
	shipments.GET("/:id", s.GetShipment)
	shipments.PUT("/:id", s.UpdateShipment)
	shipments.DELETE("/:id", s.DeleteShipment)

	e.RouteNotFound("/*", s.RouteNotFound)
}

// CreateShipment handles POST /api/v1/shipments.
//
//	@Summary	Create a new shipment
//	@Tags		shipments
//	@Accept		json
//	@Produce	json
//	@Param		shipment	body		CreateShipmentRequest	true	"Shipment to create"
//	@Success	201			{object}	SuccessResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/api/v1/shipments [post]
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req CreateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return s.writeError(ctx, errs.NewValidationErrorWithCause("Invalid JSON in request body", err))
	}

	cmd, err := commands.NewCreateShipmentCommand(
		req.SenderName,
		req.ReceiverName,
		req.Origin,
		req.Destination,
		req.Status,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SuccessResponse{
		Success: true,
		Message: "Shipment created successfully",
		Data:    toShipmentResponse(created),
	})
}

// ListShipments handles GET /api/v1/shipments.
//
//	@Summary	List shipments with pagination, filtering, and sorting
//	@Tags		shipments
//	@Produce	json
//	@Param		page		query		int		false	"Page number (default 1)"
//	@Param		limit		query		int		false	"Page size (default 10, max 100)"
//	@Param		sortBy		query		string	false	"Sort field (default createdAt)"
//	@Param		order		query		string	false	"asc or desc (default desc)"
//	@Param		status		query		string	false	"Status filter"
//	@Param		origin		query		string	false	"Origin substring filter"
//	@Param		destination	query		string	false	"Destination substring filter"
//	@Param		search		query		string	false	"Sender or receiver name search"
//	@Param		startDate	query		string	false	"Created-at lower bound (ISO 8601)"
//	@Param		endDate		query		string	false	"Created-at upper bound (ISO 8601)"
//	@Success	200			{object}	PaginatedResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/api/v1/shipments [get]
func (s *Server) ListShipments(ctx echo.Context) error {
	query, err := queries.NewListShipmentsQuery(queries.RawListShipmentsParams{
		Page:        ctx.QueryParam("page"),
		Limit:       ctx.QueryParam("limit"),
		SortBy:      ctx.QueryParam("sortBy"),
		Order:       ctx.QueryParam("order"),
		Status:      ctx.QueryParam("status"),
		Origin:      ctx.QueryParam("origin"),
		Destination: ctx.QueryParam("destination"),
		Search:      ctx.QueryParam("search"),
		StartDate:   ctx.QueryParam("startDate"),
		EndDate:     ctx.QueryParam("endDate"),
	})
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.listShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PaginatedResponse{
		Success:    true,
		Message:    "Shipments retrieved successfully",
		Data:       toShipmentResponses(result.Shipments),
		Pagination: toPaginationResponse(result.Pagination),
	})
}

// GetShipment handles GET /api/v1/shipments/:id.
//
//	@Summary	Get a shipment by id
//	@Tags		shipments
//	@Produce	json
//	@Param		id	path		string	true	"Shipment id (24 hex characters)"
//	@Success	200	{object}	SuccessResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/v1/shipments/{id} [get]
func (s *Server) GetShipment(ctx echo.Context) error {
	id, err := s.shipmentIDParam(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetShipmentQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	found, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Shipment retrieved successfully",
		Data:    toShipmentResponse(found),
	})
}

// GetShipmentByTrackingNumber handles GET /api/v1/shipments/tracking/:trackingNumber.
//
//	@Summary	Get a shipment by tracking number
//	@Tags		shipments
//	@Produce	json
//	@Param		trackingNumber	path		string	true	"Tracking number"
//	@Success	200				{object}	SuccessResponse
//	@Failure	404				{object}	ErrorResponse
//	@Router		/api/v1/shipments/tracking/{trackingNumber} [get]
func (s *Server) GetShipmentByTrackingNumber(ctx echo.Context) error {
	query, err := queries.NewGetShipmentByTrackingNumberQuery(ctx.Param("trackingNumber"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	found, err := s.getByTrackingNumberHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Shipment retrieved successfully",
		Data:    toShipmentResponse(found),
	})
}

// UpdateShipment handles PUT /api/v1/shipments/:id.
//
//	@Summary	Update a shipment
//	@Tags		shipments
//	@Accept		json
//	@Produce	json
//	@Param		id			path		string					true	"Shipment id (24 hex characters)"
//	@Param		shipment	body		UpdateShipmentRequest	true	"Fields to update"
//	@Success	200			{object}	SuccessResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/api/v1/shipments/{id} [put]
func (s *Server) UpdateShipment(ctx echo.Context) error {
	id, err := s.shipmentIDParam(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req UpdateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return s.writeError(ctx, errs.NewValidationErrorWithCause("Invalid JSON in request body", err))
	}

	cmd, err := commands.NewUpdateShipmentCommand(id, commands.UpdateShipmentFields{
		SenderName:   req.SenderName,
		ReceiverName: req.ReceiverName,
		Origin:       req.Origin,
		Destination:  req.Destination,
		Status:       req.Status,
	})
	if err != nil {
		return s.writeError(ctx, err)
	}

	updated, err := s.updateShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Shipment updated successfully",
		Data:    toShipmentResponse(updated),
	})
}

// DeleteShipment handles DELETE /api/v1/shipments/:id.
//
//	@Summary	Delete a shipment
//	@Tags		shipments
//	@Produce	json
//	@Param		id	path		string	true	"Shipment id (24 hex characters)"
//	@Success	200	{object}	SuccessResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/v1/shipments/{id} [delete]
func (s *Server) DeleteShipment(ctx echo.Context) error {
	id, err := s.shipmentIDParam(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteShipmentCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	deleted, err := s.deleteShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Shipment deleted successfully",
		Data:    toShipmentResponse(deleted),
	})
}

// Health handles GET /health.
//
//	@Summary	Health check
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	SuccessResponse
//	@Router		/health [get]
func (s *Server) Health(ctx echo.Context) error {
	connected := s.storeHealth.Ping(ctx.Request().Context()) == nil

	return ctx.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "API is healthy",
		Data: map[string]any{
			"status":      "healthy",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"uptime":      time.Since(s.startedAt).Seconds(),
			"environment": s.environment,
			"database": map[string]any{
				"connected": connected,
			},
		},
	})
}

// HealthLive handles GET /health/live, a plain liveness probe.
func (s *Server) HealthLive(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "API is alive",
		Data:    map[string]any{"alive": true},
	})
}

// HealthReady handles GET /health/ready. Readiness requires a reachable
// store.
func (s *Server) HealthReady(ctx echo.Context) error {
	if err := s.storeHealth.Ping(ctx.Request().Context()); err != nil {
		return ctx.JSON(http.StatusServiceUnavailable, map[string]any{
			"success": false,
			"message": "API is not ready",
			"data":    map[string]any{"ready": false, "reason": "Database not connected"},
		})
	}

	return ctx.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "API is ready",
		Data:    map[string]any{"ready": true},
	})
}

// RouteNotFound renders the catch-all 404 envelope for unmatched routes.
func (s *Server) RouteNotFound(ctx echo.Context) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{
		Success: false,
		Message: "Route " + ctx.Request().Method + " " + ctx.Request().URL.Path + " not found",
		Error:   ErrorBody{Code: errs.CodeResourceNotFound},
	})
}

// shipmentIDParam validates the :id path parameter before any lookup runs.
// A malformed id is a request-shape problem, reported as a validation
// failure rather than an id-cast failure.
func (s *Server) shipmentIDParam(ctx echo.Context) (string, error) {
	id := ctx.Param("id")
	if !kernel.IsValidID(id) {
		return "", errs.NewValidationError("Validation failed", errs.FieldError{
			Field:   "id",
			Message: "Shipment ID must be a valid MongoDB ObjectId",
		})
	}
	return id, nil
}
