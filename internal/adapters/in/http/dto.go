package http

import (
	"time"

	"shipments/internal/core/application/usecases/queries"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/errs"
)

// CreateShipmentRequest is the JSON body of POST /api/v1/shipments.
type CreateShipmentRequest struct {
	SenderName   string `json:"senderName"`
	ReceiverName string `json:"receiverName"`
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	Status       string `json:"status"`
}

// UpdateShipmentRequest is the JSON body of PUT /api/v1/shipments/:id.
// All fields are optional; absent fields are left untouched.
type UpdateShipmentRequest struct {
	SenderName   *string `json:"senderName"`
	ReceiverName *string `json:"receiverName"`
	Origin       *string `json:"origin"`
	Destination  *string `json:"destination"`
	Status       *string `json:"status"`
}

// ShipmentResponse is the wire representation of a shipment resource.
type ShipmentResponse struct {
	ID             string    `json:"id"`
	TrackingNumber string    `json:"trackingNumber"`
	SenderName     string    `json:"senderName"`
	ReceiverName   string    `json:"receiverName"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// PaginationResponse is the pagination block of list responses.
type PaginationResponse struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	HasNextPage  bool  `json:"hasNextPage"`
	HasPrevPage  bool  `json:"hasPrevPage"`
}

// SuccessResponse is the envelope of every non-paginated success reply.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// PaginatedResponse is the envelope of list replies.
type PaginatedResponse struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message"`
	Data       []ShipmentResponse `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// ErrorBody carries the machine-readable part of an error reply.
type ErrorBody struct {
	Code    string            `json:"code"`
	Details []errs.FieldError `json:"details,omitempty"`
}

// ErrorResponse is the envelope of every error reply.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Error   ErrorBody `json:"error"`
}

func toShipmentResponse(s *shipment.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ID:             s.ID().String(),
		TrackingNumber: s.TrackingNumber(),
		SenderName:     s.SenderName(),
		ReceiverName:   s.ReceiverName(),
		Origin:         s.Origin(),
		Destination:    s.Destination(),
		Status:         string(s.Status()),
		CreatedAt:      s.CreatedAt(),
		UpdatedAt:      s.UpdatedAt(),
	}
}

func toShipmentResponses(shipments []*shipment.Shipment) []ShipmentResponse {
	out := make([]ShipmentResponse, 0, len(shipments))
	for _, s := range shipments {
		out = append(out, toShipmentResponse(s))
	}
	return out
}

func toPaginationResponse(meta queries.PaginationMeta) PaginationResponse {
	return PaginationResponse{
		CurrentPage:  meta.CurrentPage,
		TotalPages:   meta.TotalPages,
		TotalItems:   meta.TotalItems,
		ItemsPerPage: meta.ItemsPerPage,
		HasNextPage:  meta.HasNextPage,
		HasPrevPage:  meta.HasPrevPage,
	}
}
