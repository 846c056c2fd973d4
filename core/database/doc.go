// Package database opens the host database and inspects its schema.
//
// Connect wraps GORM and supports two drivers: mysql for a shared host
// deployment and sqlite for a single-user host or tests. Schema inspection is
// used by the integrity checks to confirm the host tables the importer writes
// to exist with the expected columns.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//	missing, err := database.MissingColumns(db, hoststore.RequiredColumns)
package database
