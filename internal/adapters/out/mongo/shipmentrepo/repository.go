package shipmentrepo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"
	"shipments/internal/pkg/errs"
)

// CollectionName is the MongoDB collection backing the shipment aggregate.
const CollectionName = "shipments"

// MongoShipmentRepository implements ports.ShipmentRepository on a MongoDB
// collection. It is the primary store adapter; identifiers are
// store-assigned object ids.
type MongoShipmentRepository struct {
	collection *mongo.Collection
}

// NewMongoShipmentRepository creates a repository bound to the shipments
// collection of the given database.
func NewMongoShipmentRepository(db *mongo.Database) *MongoShipmentRepository {
	return &MongoShipmentRepository{
		collection: db.Collection(CollectionName),
	}
}

// EnsureIndexes creates the unique tracking-number index. Call once at
// startup; index creation is idempotent.
func (r *MongoShipmentRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "trackingNumber", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Ping reports whether the MongoDB deployment is reachable.
func (r *MongoShipmentRepository) Ping(ctx context.Context) error {
	return r.collection.Database().Client().Ping(ctx, readpref.Primary())
}

// Create inserts the shipment with a fresh id and store-side timestamps.
// A tracking-number collision surfaces as a DuplicateEntryError.
func (r *MongoShipmentRepository) Create(ctx context.Context, s *shipment.Shipment) (*shipment.Shipment, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	dto := fromDomain(s)
	dto.ID = primitive.NewObjectID()
	dto.CreatedAt = now
	dto.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, dto); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errs.NewDuplicateEntryError("trackingNumber", dto.TrackingNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindByID returns the shipment with the given id.
func (r *MongoShipmentRepository) FindByID(ctx context.Context, id kernel.ID) (*shipment.Shipment, error) {
	var dto ShipmentDTO
	err := r.collection.FindOne(ctx, bson.M{"_id": id.ObjectID()}).Decode(&dto)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewObjectNotFoundError("Shipment")
		}
		return nil, err
	}
	return toDomain(dto)
}

// FindByTrackingNumber returns the shipment with the given tracking code.
func (r *MongoShipmentRepository) FindByTrackingNumber(ctx context.Context, trackingNumber string) (*shipment.Shipment, error) {
	var dto ShipmentDTO
	err := r.collection.FindOne(ctx, bson.M{"trackingNumber": trackingNumber}).Decode(&dto)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewObjectNotFoundError("Shipment")
		}
		return nil, err
	}
	return toDomain(dto)
}

// Update applies the set patch fields atomically and returns the updated
// document.
func (r *MongoShipmentRepository) Update(ctx context.Context, id kernel.ID, patch ports.ShipmentPatch) (*shipment.Shipment, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.SenderName != nil {
		set["senderName"] = *patch.SenderName
	}
	if patch.ReceiverName != nil {
		set["receiverName"] = *patch.ReceiverName
	}
	if patch.Origin != nil {
		set["origin"] = *patch.Origin
	}
	if patch.Destination != nil {
		set["destination"] = *patch.Destination
	}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var dto ShipmentDTO
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id.ObjectID()},
		bson.M{"$set": set},
		opts,
	).Decode(&dto)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewObjectNotFoundError("Shipment")
		}
		return nil, err
	}
	return toDomain(dto)
}

// Delete removes the shipment and returns its last-known state.
func (r *MongoShipmentRepository) Delete(ctx context.Context, id kernel.ID) (*shipment.Shipment, error) {
	var dto ShipmentDTO
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id.ObjectID()}).Decode(&dto)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewObjectNotFoundError("Shipment")
		}
		return nil, err
	}
	return toDomain(dto)
}

// Count returns the number of shipments matching the filter.
func (r *MongoShipmentRepository) Count(ctx context.Context, filter ports.ShipmentFilter) (int64, error) {
	return r.collection.CountDocuments(ctx, buildFilter(filter))
}

// List returns one page of matching shipments in the requested order.
func (r *MongoShipmentRepository) List(
	ctx context.Context,
	filter ports.ShipmentFilter,
	sort ports.SortSpec,
	skip, limit int,
) ([]*shipment.Shipment, error) {
	order := -1
	if sort.Order == ports.SortAsc {
		order = 1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortField(sort.Field), Value: order}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cur, err := r.collection.Find(ctx, buildFilter(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	shipments := make([]*shipment.Shipment, 0)
	for cur.Next(ctx) {
		var dto ShipmentDTO
		if err := cur.Decode(&dto); err != nil {
			return nil, err
		}
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return shipments, nil
}

// buildFilter translates the gateway filter into a MongoDB query document.
// Text filters are case-insensitive partial matches with the user input
// quoted so it cannot inject regex syntax.
func buildFilter(filter ports.ShipmentFilter) bson.M {
	query := bson.M{}

	if filter.Status != nil {
		query["status"] = string(*filter.Status)
	}
	if filter.Origin != "" {
		query["origin"] = containsPattern(filter.Origin)
	}
	if filter.Destination != "" {
		query["destination"] = containsPattern(filter.Destination)
	}
	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		query["$or"] = bson.A{
			bson.M{"senderName": pattern},
			bson.M{"receiverName": pattern},
		}
	}

	createdAt := bson.M{}
	if filter.StartDate != nil {
		createdAt["$gte"] = *filter.StartDate
	}
	if filter.EndDate != nil {
		createdAt["$lte"] = *filter.EndDate
	}
	if len(createdAt) > 0 {
		query["createdAt"] = createdAt
	}

	return query
}

func containsPattern(value string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(value), "$options": "i"}
}

// sortField maps an API sort field onto its document key. The allow-list
// upstream guarantees the field is known; unknown input falls back to
// createdAt rather than passing through to the store.
func sortField(field string) string {
	switch field {
	case "updatedAt", "origin", "destination", "status",
		"senderName", "receiverName", "trackingNumber":
		return field
	default:
		return "createdAt"
	}
}
