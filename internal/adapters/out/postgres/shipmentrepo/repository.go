package shipmentrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"
	"shipments/internal/pkg/errs"
)

// GormShipmentRepository implements ports.ShipmentRepository using GORM on
// PostgreSQL. The connection must be opened with TranslateError so unique
// violations surface as gorm.ErrDuplicatedKey.
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// Migrate creates or updates the shipments table schema.
func (r *GormShipmentRepository) Migrate() error {
	return r.db.AutoMigrate(&ShipmentDTO{})
}

// Ping reports whether the database connection is alive.
func (r *GormShipmentRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Create inserts the shipment with a fresh id and store-side timestamps.
func (r *GormShipmentRepository) Create(ctx context.Context, s *shipment.Shipment) (*shipment.Shipment, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	dto := fromDomain(s)
	dto.ID = kernel.NewID().String()
	dto.CreatedAt = now
	dto.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.NewDuplicateEntryError("trackingNumber", dto.TrackingNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindByID retrieves a shipment by its id.
func (r *GormShipmentRepository) FindByID(ctx context.Context, id kernel.ID) (*shipment.Shipment, error) {
	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("Shipment")
		}
		return nil, err
	}
	return toDomain(dto)
}

// FindByTrackingNumber retrieves a shipment by its tracking code.
func (r *GormShipmentRepository) FindByTrackingNumber(ctx context.Context, trackingNumber string) (*shipment.Shipment, error) {
	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "tracking_number = ?", trackingNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("Shipment")
		}
		return nil, err
	}
	return toDomain(dto)
}

// Update applies the set patch fields and returns the updated row.
func (r *GormShipmentRepository) Update(ctx context.Context, id kernel.ID, patch ports.ShipmentPatch) (*shipment.Shipment, error) {
	updates := map[string]any{"updated_at": time.Now().UTC()}
	if patch.SenderName != nil {
		updates["sender_name"] = *patch.SenderName
	}
	if patch.ReceiverName != nil {
		updates["receiver_name"] = *patch.ReceiverName
	}
	if patch.Origin != nil {
		updates["origin"] = *patch.Origin
	}
	if patch.Destination != nil {
		updates["destination"] = *patch.Destination
	}
	if patch.Status != nil {
		updates["status"] = string(*patch.Status)
	}

	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ?", id.String()).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("Shipment")
	}

	return r.FindByID(ctx, id)
}

// Delete removes the shipment and returns its last-known state.
func (r *GormShipmentRepository) Delete(ctx context.Context, id kernel.ID) (*shipment.Shipment, error) {
	deleted, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Delete(&ShipmentDTO{}, "id = ?", id.String()).Error; err != nil {
		return nil, err
	}
	return deleted, nil
}

// Count returns the number of shipments matching the filter.
func (r *GormShipmentRepository) Count(ctx context.Context, filter ports.ShipmentFilter) (int64, error) {
	var count int64
	query := applyFilter(r.db.WithContext(ctx).Model(&ShipmentDTO{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// List returns one page of matching shipments in the requested order.
func (r *GormShipmentRepository) List(
	ctx context.Context,
	filter ports.ShipmentFilter,
	sort ports.SortSpec,
	skip, limit int,
) ([]*shipment.Shipment, error) {
	direction := "DESC"
	if sort.Order == ports.SortAsc {
		direction = "ASC"
	}

	var dtos []ShipmentDTO
	query := applyFilter(r.db.WithContext(ctx).Model(&ShipmentDTO{}), filter).
		Order(sortColumn(sort.Field) + " " + direction).
		Offset(skip).
		Limit(limit)
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}
	return shipments, nil
}

// applyFilter translates the gateway filter into WHERE clauses. Text
// filters use ILIKE for case-insensitive partial matching.
func applyFilter(query *gorm.DB, filter ports.ShipmentFilter) *gorm.DB {
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Origin != "" {
		query = query.Where("origin ILIKE ?", "%"+filter.Origin+"%")
	}
	if filter.Destination != "" {
		query = query.Where("destination ILIKE ?", "%"+filter.Destination+"%")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("sender_name ILIKE ? OR receiver_name ILIKE ?", pattern, pattern)
	}
	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("created_at <= ?", *filter.EndDate)
	}
	return query
}

// sortColumn maps an API sort field onto its column name. Unknown input
// falls back to created_at rather than passing through to the store.
func sortColumn(field string) string {
	switch field {
	case "updatedAt":
		return "updated_at"
	case "senderName":
		return "sender_name"
	case "receiverName":
		return "receiver_name"
	case "trackingNumber":
		return "tracking_number"
	case "origin", "destination", "status":
		return field
	default:
		return "created_at"
	}
}
