// Package repomanager hands out repository instances bound to a DB handle
// (either *sql.DB or a transaction) and owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/avolkovs/teambase/internal/dbx"
	"github.com/avolkovs/teambase/internal/server/repositories/memberships"
	"github.com/avolkovs/teambase/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Memberships(db dbx.DBTX) memberships.Repository
}
