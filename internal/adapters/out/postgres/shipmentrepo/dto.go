// Package shipmentrepo (postgres) provides data transfer objects and
// mapping functions for shipment persistence in PostgreSQL. It implements
// the repository pattern for the shipment aggregate, handling the
// conversion between domain entities and relational rows.
package shipmentrepo

import (
	"time"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database row for persisting shipments. The id
// keeps the canonical 24-hex wire format so the relational store and the
// document store expose identical identifiers.
type ShipmentDTO struct {
	ID             string    `gorm:"type:char(24);primaryKey"`
	TrackingNumber string    `gorm:"type:varchar(21);uniqueIndex"`
	SenderName     string    `gorm:"type:varchar(100)"`
	ReceiverName   string    `gorm:"type:varchar(100)"`
	Origin         string    `gorm:"type:varchar(200)"`
	Destination    string    `gorm:"type:varchar(200)"`
	Status         string    `gorm:"type:varchar(20);index"`
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time
}

// TableName specifies the database table name for shipment rows.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment aggregate to its row representation.
func fromDomain(s *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
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

// toDomain converts a row to a shipment aggregate using RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.IDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id,
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
