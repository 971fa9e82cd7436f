package rabbitmq_test

import (
	"context"
	"errors"
	"testing"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanLimbu/taskphotos/internal"
	"github.com/sanLimbu/taskphotos/internal/rabbitmq"
)

type publisher struct {
	exchange, key string
	msg           amqp.Publishing
	err           error
}

func (p *publisher) Publish(exchange, key string, _, _ bool, msg amqp.Publishing) error {
	p.exchange, p.key, p.msg = exchange, key, msg

	return p.err
}

func TestTask_Created(t *testing.T) {
	t.Parallel()

	p := &publisher{}
	user := "u-1"

	err := rabbitmq.NewTask(p).Created(context.Background(), internal.Task{
		ID:        "abc",
		Title:     "Fix sink",
		Status:    internal.StatusPending,
		CreatedBy: &user,
	})
	require.NoError(t, err)

	assert.Equal(t, rabbitmq.ExchangeName, p.exchange)
	assert.Equal(t, rabbitmq.RoutingKeyTaskCreated, p.key)
	assert.Equal(t, "application/x-encoding-gob", p.msg.ContentType)

	task, err := rabbitmq.DecodeTask(p.msg.Body)
	require.NoError(t, err)
	assert.Equal(t, "Fix sink", task.Title)
	assert.Equal(t, "u-1", *task.CreatedBy)
}

func TestTask_Created_Error(t *testing.T) {
	t.Parallel()

	p := &publisher{err: errors.New("channel closed")}

	assert.Error(t, rabbitmq.NewTask(p).Created(context.Background(), internal.Task{ID: "abc"}))

	_, err := rabbitmq.DecodeTask([]byte("garbage"))
	assert.Error(t, err)
}
