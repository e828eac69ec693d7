// Package shipmentrepo (mongo) provides data transfer objects and mapping
// functions for shipment persistence in MongoDB. It implements the
// repository pattern for the shipment aggregate, handling the conversion
// between domain entities and BSON documents.
package shipmentrepo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the BSON document structure for persisting
// shipments. Field names match the wire names the API exposes so sort
// parameters map onto document keys without translation.
type ShipmentDTO struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	TrackingNumber string             `bson:"trackingNumber"`
	SenderName     string             `bson:"senderName"`
	ReceiverName   string             `bson:"receiverName"`
	Origin         string             `bson:"origin"`
	Destination    string             `bson:"destination"`
	Status         string             `bson:"status"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}

// fromDomain converts a shipment aggregate to its document representation.
// The id is omitted when zero so MongoDB assigns one on insert.
func fromDomain(s *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:             s.ID().ObjectID(),
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

// toDomain converts a document to a shipment aggregate using
// RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	return shipment.RestoreShipment(
		kernel.RestoreID(dto.ID),
		dto.TrackingNumber,
		dto.SenderName,
		dto.ReceiverName,
		dto.Origin,
		dto.Destination,
		shipment.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
