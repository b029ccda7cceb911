// Package repomanager wires repositories to database handles. Services keep
// a single *sql.DB plus a RepositoryManager and can bind repositories either
// to the pool or to an open transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/avoronov/itemkeeper/internal/dbx"
	"github.com/avoronov/itemkeeper/internal/server/repositories/items"
)

type RepositoryManager interface {
	Items(db dbx.DBTX) items.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
