package internal

import (
	"context"
	"database/sql"

	"github.com/sanLimbu/taskphotos/internal"
	"github.com/sanLimbu/taskphotos/internal/envvar"
	"github.com/sanLimbu/taskphotos/internal/sqlite"
)

// NewSQLite opens the database file defined in SQLITE_PATH.
func NewSQLite(ctx context.Context, conf *envvar.Configuration) (*sql.DB, error) {
	path, err := conf.GetDefault("SQLITE_PATH", "taskphotos.db")
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "conf.Get SQLITE_PATH")
	}

	return sqlite.Open(ctx, path)
}
