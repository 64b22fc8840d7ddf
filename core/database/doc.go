// Package database handles database connections and schema inspection.
//
// It wraps GORM and configures MySQL, PostgreSQL or SQLite connections from
// the application's configuration. Driver errors are translated, so callers
// detect unique violations with errors.Is(err, gorm.ErrDuplicatedKey)
// whatever the backend.
//
// # Schema Inspection
//
// GetTableColumns reads the live column list of a table. The integrity
// feature compares it with the word entities to report schema drift.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "words")
package database
