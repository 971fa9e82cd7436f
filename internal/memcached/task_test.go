package memcached_test

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sanLimbu/taskphotos/internal"
	"github.com/sanLimbu/taskphotos/internal/memcached"
)

// textServer implements the get and set commands of the memcached text protocol.
type textServer struct {
	mu    sync.Mutex
	items map[string][]byte
	ln    net.Listener
}

func newTextServer(t *testing.T) *textServer {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := &textServer{items: map[string][]byte{}, ln: ln}

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}

			go s.serve(conn)
		}
	}()

	t.Cleanup(func() { _ = ln.Close() })

	return s
}

func (s *textServer) serve(conn net.Conn) {
	defer conn.Close()

	rw := bufio.NewReadWriter(bufio.NewReader(conn), bufio.NewWriter(conn))

	for {
		line, err := rw.ReadString('\n')
		if err != nil {
			return
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "get", "gets":
			s.mu.Lock()
			for _, key := range fields[1:] {
				if v, ok := s.items[key]; ok {
					fmt.Fprintf(rw, "VALUE %s 0 %d\r\n", key, len(v))
					_, _ = rw.Write(v)
					_, _ = rw.WriteString("\r\n")
				}
			}
			s.mu.Unlock()

			_, _ = rw.WriteString("END\r\n")
		case "set":
			size, _ := strconv.Atoi(fields[4])
			data := make([]byte, size+2)

			if _, err := io.ReadFull(rw, data); err != nil {
				return
			}

			s.mu.Lock()
			s.items[fields[1]] = data[:size]
			s.mu.Unlock()

			_, _ = rw.WriteString("STORED\r\n")
		default:
			_, _ = rw.WriteString("ERROR\r\n")
		}

		if err := rw.Flush(); err != nil {
			return
		}
	}
}

type store struct {
	finds int
	task  internal.Task
	err   error
}

func (s *store) Create(_ context.Context, params internal.CreateParams) (internal.Task, error) {
	if s.err != nil {
		return internal.Task{}, s.err
	}

	return internal.Task{ID: "created", Title: params.Title, Status: params.Status}, nil
}

func (s *store) Find(_ context.Context, _ string) (internal.Task, error) {
	s.finds++

	return s.task, s.err
}

func TestTask_Find(t *testing.T) {
	t.Parallel()

	srv := newTextServer(t)
	client := memcache.New(srv.ln.Addr().String())

	user := "u-1"
	orig := &store{task: internal.Task{
		ID:        "abc",
		Title:     "Fix sink",
		Priority:  internal.PriorityHigh,
		Status:    internal.StatusPending,
		Photos:    []string{"https://cdn.example.com/tasks/1-0.jpg"},
		CreatedBy: &user,
		CreatedAt: time.Date(2024, time.February, 2, 10, 0, 0, 0, time.UTC),
	}}

	cache := memcached.NewTask(client, orig, zap.NewNop())

	first, err := cache.Find(context.Background(), "abc")
	require.NoError(t, err)

	second, err := cache.Find(context.Background(), "abc")
	require.NoError(t, err)

	assert.Equal(t, 1, orig.finds)
	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, first.Photos, second.Photos)
	assert.Equal(t, user, *second.CreatedBy)
	assert.True(t, first.CreatedAt.Equal(second.CreatedAt))
}

func TestTask_Create(t *testing.T) {
	t.Parallel()

	srv := newTextServer(t)
	client := memcache.New(srv.ln.Addr().String())

	orig := &store{}
	cache := memcached.NewTask(client, orig, zap.NewNop())

	task, err := cache.Create(context.Background(), internal.CreateParams{Title: "Buy milk", Status: internal.StatusPending})
	require.NoError(t, err)

	found, err := cache.Find(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", found.Title)
	assert.Equal(t, 0, orig.finds)
}

func TestTask_Unavailable(t *testing.T) {
	t.Parallel()

	client := memcache.New("127.0.0.1:1")

	orig := &store{task: internal.Task{ID: "abc", Title: "Fix sink"}}

	task, err := memcached.NewTask(client, orig, zap.NewNop()).Find(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "Fix sink", task.Title)

	orig.err = internal.NewErrorf(internal.ErrorCodeNotFound, "not found")

	_, err = memcached.NewTask(client, orig, zap.NewNop()).Find(context.Background(), "zzz")
	assert.Error(t, err)
}
