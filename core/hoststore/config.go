package hoststore

// Config holds configuration for the host document store.
type Config struct {
	// Namespace scopes the external-id tags written by imports.
	Namespace string `mapstructure:"namespace" default:"adventure-importer"`
	// AutoMigrate creates the host tables on startup when true.
	AutoMigrate bool `mapstructure:"auto_migrate" default:"true"`
}
