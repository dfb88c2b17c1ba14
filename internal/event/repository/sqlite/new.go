// Package sqlite is the durable event store backend. Storage order is kept
// through a monotonically decreasing position column: prepending assigns
// positions below the current minimum, and List orders ascending.
package sqlite

import (
	"database/sql"

	"lifeplanner/internal/event/repository"
	"lifeplanner/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed event Repository over an opened database.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("event/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}
