package internal

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanLimbu/taskphotos/internal"
	"github.com/sanLimbu/taskphotos/internal/envvar"
)

// NewPostgreSQL instantiates the PostgreSQL database using configuration defined in environment variables.
func NewPostgreSQL(ctx context.Context, conf *envvar.Configuration) (*pgxpool.Pool, error) {
	get := func(v string) (string, error) {
		res, err := conf.Get(v)
		if err != nil {
			return "", internal.WrapErrorf(err, internal.ErrorCodeUnknown, "conf.Get %s", v)
		}

		return res, nil
	}

	values := map[string]string{}

	for _, key := range []string{
		"DATABASE_HOST",
		"DATABASE_PORT",
		"DATABASE_USERNAME",
		"DATABASE_PASSWORD",
		"DATABASE_NAME",
		"DATABASE_SSLMODE",
	} {
		v, err := get(key)
		if err != nil {
			return nil, err
		}

		values[key] = v
	}

	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(values["DATABASE_USERNAME"], values["DATABASE_PASSWORD"]),
		Host:   fmt.Sprintf("%s:%s", values["DATABASE_HOST"], values["DATABASE_PORT"]),
		Path:   values["DATABASE_NAME"],
	}

	q := dsn.Query()
	q.Add("sslmode", values["DATABASE_SSLMODE"])

	dsn.RawQuery = q.Encode()

	pool, err := pgxpool.New(ctx, dsn.String())
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "pgxpool.New")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "pool.Ping")
	}

	return pool, nil
}
