package internal

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sanLimbu/taskphotos/internal"
	"github.com/sanLimbu/taskphotos/internal/envvar"
)

// NewMongoDB connects to the database named by MONGODB_DATABASE using configuration defined in environment variables.
func NewMongoDB(ctx context.Context, conf *envvar.Configuration) (*mongo.Database, error) {
	uri, err := conf.GetDefault("MONGODB_URI", "mongodb://127.0.0.1:27017")
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "conf.Get MONGODB_URI")
	}

	name, err := conf.GetDefault("MONGODB_DATABASE", "taskphotos")
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "conf.Get MONGODB_DATABASE")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetConnectTimeout(5*time.Second))
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "mongo.Connect")
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "client.Ping")
	}

	return client.Database(name), nil
}
