package kafka_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanLimbu/taskphotos/internal"
	internalkafka "github.com/sanLimbu/taskphotos/internal/kafka"
)

type producer struct {
	msgs []*kafka.Message
	err  error
}

func (p *producer) Produce(msg *kafka.Message, _ chan kafka.Event) error {
	if p.err != nil {
		return p.err
	}

	p.msgs = append(p.msgs, msg)

	return nil
}

func TestTask_Created(t *testing.T) {
	t.Parallel()

	p := &producer{}
	task := internal.Task{
		ID:        "abc",
		Title:     "Fix sink",
		Priority:  internal.PriorityMedium,
		Status:    internal.StatusPending,
		Photos:    []string{"https://cdn.example.com/tasks/1-0.jpg"},
		CreatedAt: time.Date(2024, time.February, 2, 10, 0, 0, 0, time.UTC),
	}

	require.NoError(t, internalkafka.NewTask(p, "tasks").Created(context.Background(), task))
	require.Len(t, p.msgs, 1)

	msg := p.msgs[0]
	assert.Equal(t, "tasks", *msg.TopicPartition.Topic)
	assert.Equal(t, []byte("abc"), msg.Key)

	evt, err := internalkafka.DecodeEvent(msg.Value)
	require.NoError(t, err)
	assert.Equal(t, internalkafka.EventTaskCreated, evt.Type)
	assert.Equal(t, task.Title, evt.Value.Title)
	assert.Equal(t, task.Photos, evt.Value.Photos)
	assert.True(t, task.CreatedAt.Equal(evt.Value.CreatedAt))
}

func TestTask_Created_Error(t *testing.T) {
	t.Parallel()

	p := &producer{err: errors.New("queue full")}

	err := internalkafka.NewTask(p, "tasks").Created(context.Background(), internal.Task{ID: "abc"})
	assert.Error(t, err)

	_, err = internalkafka.DecodeEvent([]byte("{"))
	assert.Error(t, err)
}
