package cmd

// Storage driver names accepted in STORAGE_DRIVER.
const (
	StorageDriverMongo    = "mongo"
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Config carries the process configuration resolved from the environment.
type Config struct {
	HTTPPort      string
	AppEnv        string
	StorageDriver string

	MongoURI      string
	MongoDatabase string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
}

// IsProduction reports whether the process runs in the production
// environment, which switches on error-message redaction.
func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}
