package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	httpadapter "shipments/internal/adapters/in/http"
	memoryrepo "shipments/internal/adapters/out/inmemory/shipmentrepo"
	mongorepo "shipments/internal/adapters/out/mongo/shipmentrepo"
	postgresrepo "shipments/internal/adapters/out/postgres/shipmentrepo"
	"shipments/internal/core/application/usecases/commands"
	"shipments/internal/core/application/usecases/queries"
	"shipments/internal/core/ports"
	"shipments/internal/jobs"
)

// CompositionRoot wires the configured store adapter into the command and
// query handlers. It owns the store connection and must be closed on
// shutdown.
type CompositionRoot struct {
	config      Config
	shipments   ports.ShipmentRepository
	storeHealth ports.StoreHealth

	mongoClient *mongo.Client
	gormDB      *gorm.DB
}

// NewCompositionRoot connects to the store selected by
// config.StorageDriver and prepares its schema or indexes.
func NewCompositionRoot(ctx context.Context, config Config) (*CompositionRoot, error) {
	root := &CompositionRoot{config: config}

	switch config.StorageDriver {
	case StorageDriverMongo, "":
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.MongoURI))
		if err != nil {
			return nil, fmt.Errorf("connect to mongodb: %w", err)
		}

		repo := mongorepo.NewMongoShipmentRepository(client.Database(config.MongoDatabase))
		if err := repo.EnsureIndexes(ctx); err != nil {
			return nil, fmt.Errorf("ensure mongodb indexes: %w", err)
		}

		root.mongoClient = client
		root.shipments = repo
		root.storeHealth = repo

	case StorageDriverPostgres:
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			config.DBHost, config.DBPort, config.DBUser,
			config.DBPassword, config.DBName, config.DBSslMode,
		)
		db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}

		repo := postgresrepo.NewGormShipmentRepository(db)
		if err := repo.Migrate(); err != nil {
			return nil, fmt.Errorf("migrate postgres schema: %w", err)
		}

		root.gormDB = db
		root.shipments = repo
		root.storeHealth = repo

	case StorageDriverMemory:
		repo := memoryrepo.NewMemoryShipmentRepository()
		root.shipments = repo
		root.storeHealth = repo

	default:
		return nil, fmt.Errorf("unknown storage driver: %q", config.StorageDriver)
	}

	return root, nil
}

// Close releases the store connection.
func (c *CompositionRoot) Close(ctx context.Context) error {
	if c.mongoClient != nil {
		return c.mongoClient.Disconnect(ctx)
	}
	if c.gormDB != nil {
		sqlDB, err := c.gormDB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

// ShipmentRepository exposes the wired store adapter.
func (c *CompositionRoot) ShipmentRepository() ports.ShipmentRepository {
	return c.shipments
}

// StoreHealth exposes the wired store health probe.
func (c *CompositionRoot) StoreHealth() ports.StoreHealth {
	return c.storeHealth
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipments)
}

func (c *CompositionRoot) CreateUpdateShipmentCommandHandler() commands.UpdateShipmentCommandHandler {
	return commands.NewUpdateShipmentCommandHandler(c.shipments)
}

func (c *CompositionRoot) CreateDeleteShipmentCommandHandler() commands.DeleteShipmentCommandHandler {
	return commands.NewDeleteShipmentCommandHandler(c.shipments)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.shipments)
}

func (c *CompositionRoot) CreateGetShipmentByTrackingNumberQueryHandler() queries.GetShipmentByTrackingNumberQueryHandler {
	return queries.NewGetShipmentByTrackingNumberQueryHandler(c.shipments)
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.shipments)
}

// CreateHTTPServer builds the inbound REST adapter with all handlers wired.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateShipmentCommandHandler(),
		c.CreateUpdateShipmentCommandHandler(),
		c.CreateDeleteShipmentCommandHandler(),
		c.CreateGetShipmentQueryHandler(),
		c.CreateGetShipmentByTrackingNumberQueryHandler(),
		c.CreateListShipmentsQueryHandler(),
		c.storeHealth,
		c.config.AppEnv,
	)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.storeHealth, c.shipments, logger)
}
