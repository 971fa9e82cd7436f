package internal

import (
	"context"

	"go.uber.org/zap"

	"github.com/sanLimbu/taskphotos/internal"
	"github.com/sanLimbu/taskphotos/internal/elasticsearch"
	"github.com/sanLimbu/taskphotos/internal/envvar"
	"github.com/sanLimbu/taskphotos/internal/kafka"
	"github.com/sanLimbu/taskphotos/internal/memcached"
	"github.com/sanLimbu/taskphotos/internal/mongodb"
	"github.com/sanLimbu/taskphotos/internal/postgresql"
	"github.com/sanLimbu/taskphotos/internal/rabbitmq"
	"github.com/sanLimbu/taskphotos/internal/redis"
	"github.com/sanLimbu/taskphotos/internal/service"
	"github.com/sanLimbu/taskphotos/internal/sqlite"
)

// TaskStore groups the repositories selected through configuration.
type TaskStore struct {
	Repo   service.TaskRepository
	Report service.TaskReportRepository

	closers []func()
}

// Close releases every client opened by NewTaskStore.
func (s *TaskStore) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

type taskStore interface {
	service.TaskRepository
	service.TaskReportRepository
}

// NewTaskStore instantiates the document store defined in STORE_DRIVER. When MEMCACHED_HOST is set reads
// are cached, when REPORT_SOURCE is "elasticsearch" reports are computed from the search index.
func NewTaskStore(ctx context.Context, conf *envvar.Configuration, logger *zap.Logger) (*TaskStore, error) {
	driver, err := conf.GetDefault("STORE_DRIVER", "postgres")
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "conf.Get STORE_DRIVER")
	}

	var (
		res   TaskStore
		store taskStore
	)

	switch driver {
	case "postgres":
		pool, err := NewPostgreSQL(ctx, conf)
		if err != nil {
			return nil, err
		}

		res.closers = append(res.closers, pool.Close)
		store = postgresql.NewTask(pool)
	case "mongodb":
		db, err := NewMongoDB(ctx, conf)
		if err != nil {
			return nil, err
		}

		res.closers = append(res.closers, func() { _ = db.Client().Disconnect(context.Background()) })
		store = mongodb.NewTask(db)
	case "sqlite":
		db, err := NewSQLite(ctx, conf)
		if err != nil {
			return nil, err
		}

		res.closers = append(res.closers, func() { _ = db.Close() })
		store = sqlite.NewTask(db)
	default:
		return nil, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "unknown STORE_DRIVER %q", driver)
	}

	res.Repo, res.Report = store, store

	if host, _ := conf.Get("MEMCACHED_HOST"); host != "" {
		client, err := NewMemcached(conf)
		if err != nil {
			res.Close()
			return nil, err
		}

		res.Repo = memcached.NewTask(client, store, logger)
	}

	if source, _ := conf.Get("REPORT_SOURCE"); source == "elasticsearch" {
		es, err := NewElasticSearch(conf)
		if err != nil {
			res.Close()
			return nil, err
		}

		res.Report = elasticsearch.NewTask(es)
	}

	return &res, nil
}

// NewBlobStore instantiates the blob store defined in BLOB_DRIVER.
func NewBlobStore(conf *envvar.Configuration) (service.BlobStore, error) {
	driver, err := conf.GetDefault("BLOB_DRIVER", "s3")
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "conf.Get BLOB_DRIVER")
	}

	switch driver {
	case "s3":
		blob, err := NewS3(conf)
		if err != nil {
			return nil, err
		}

		return blob, nil
	case "azblob":
		blob, err := NewAzureBlob(conf)
		if err != nil {
			return nil, err
		}

		return blob, nil
	}

	return nil, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "unknown BLOB_DRIVER %q", driver)
}

// NewMessageBroker instantiates the publisher defined in EVENTS_DRIVER, "none" disables events.
func NewMessageBroker(conf *envvar.Configuration) (service.TaskMessageBrokerRepository, func(), error) {
	driver, err := conf.GetDefault("EVENTS_DRIVER", "none")
	if err != nil {
		return nil, nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "conf.Get EVENTS_DRIVER")
	}

	switch driver {
	case "none":
		return nil, func() {}, nil
	case "kafka":
		producer, err := NewKafkaProducer(conf)
		if err != nil {
			return nil, nil, err
		}

		return kafka.NewTask(producer.Producer, producer.Topic), producer.Close, nil
	case "rabbitmq":
		rmq, err := NewRabbitMQ(conf)
		if err != nil {
			return nil, nil, err
		}

		return rabbitmq.NewTask(rmq.Channel), rmq.Close, nil
	}

	return nil, nil, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "unknown EVENTS_DRIVER %q", driver)
}

// NewSaveGate instantiates the Redis backed gate when REDIS_HOST is set.
func NewSaveGate(ctx context.Context, conf *envvar.Configuration) (service.SaveGate, func(), error) {
	if host, _ := conf.Get("REDIS_HOST"); host == "" {
		return nil, func() {}, nil
	}

	rdb, err := NewRedis(ctx, conf)
	if err != nil {
		return nil, nil, err
	}

	return redis.NewSaveGate(rdb, redis.DefaultGateTTL), func() { _ = rdb.Close() }, nil
}

// NewSubmissionOptions collects the optional collaborators of service.Submission.
func NewSubmissionOptions(ctx context.Context, conf *envvar.Configuration) ([]service.SubmissionOption, func(), error) {
	var opts []service.SubmissionOption

	broker, closeBroker, err := NewMessageBroker(conf)
	if err != nil {
		return nil, nil, err
	}

	if broker != nil {
		opts = append(opts, service.WithMessageBroker(broker))
	}

	gate, closeGate, err := NewSaveGate(ctx, conf)
	if err != nil {
		closeBroker()
		return nil, nil, err
	}

	if gate != nil {
		opts = append(opts, service.WithSaveGate(gate))
	}

	return opts, func() {
		closeGate()
		closeBroker()
	}, nil
}
