// Package config provides configuration management for the notes importer.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of each
// section and every key can be overridden by its upper-cased env name.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP server settings (port, API key, body limit)
//   - Database: host database driver and connection details
//   - HostStore: external tag namespace and migration switch
//   - Storage: S3/MinIO credentials for s3:// notes directories
//   - Log: logging level and format
//   - Importer: the notes directory (IMPORTER_NOTES_DIRECTORY)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Importer.NotesDirectory)
package config
