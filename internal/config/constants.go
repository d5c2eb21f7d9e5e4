package config

// Default paths for databases
const (
	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./bookstore.db"

	// DefaultDemoDatabasePath is where cmd/generate_demo writes a fresh demo database
	DefaultDemoDatabasePath = "./demo/demo.db"
)

// Environment names recognised by APP_ENV.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)
