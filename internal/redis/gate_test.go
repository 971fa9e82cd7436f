package redis_test

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

	goredis "github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanLimbu/taskphotos/internal/redis"
)

// respServer understands just enough RESP for SET NX and DEL.
type respServer struct {
	mu   sync.Mutex
	keys map[string]string
	ln   net.Listener
}

func newRESPServer(t *testing.T) *respServer {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := &respServer{keys: map[string]string{}, ln: ln}

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

func (s *respServer) serve(conn net.Conn) {
	defer conn.Close()

	r := bufio.NewReader(conn)

	for {
		args, err := readCommand(r)
		if err != nil {
			return
		}

		_, _ = io.WriteString(conn, s.handle(args))
	}
}

func (s *respServer) handle(args []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch strings.ToLower(args[0]) {
	case "set":
		nx := false
		for _, a := range args[3:] {
			if strings.EqualFold(a, "nx") {
				nx = true
			}
		}

		if _, ok := s.keys[args[1]]; ok && nx {
			return "$-1\r\n"
		}

		s.keys[args[1]] = args[2]

		return "+OK\r\n"
	case "del":
		n := 0
		for _, k := range args[1:] {
			if _, ok := s.keys[k]; ok {
				delete(s.keys, k)
				n++
			}
		}

		return fmt.Sprintf(":%d\r\n", n)
	}

	return "-ERR unknown command\r\n"
}

func readCommand(r *bufio.Reader) ([]string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return nil, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(line[1:]))
	if err != nil {
		return nil, err
	}

	args := make([]string, n)

	for i := range args {
		if _, err := r.ReadString('\n'); err != nil {
			return nil, err
		}

		arg, err := r.ReadString('\n')
		if err != nil {
			return nil, err
		}

		args[i] = strings.TrimSuffix(arg, "\r\n")
	}

	return args, nil
}

func TestSaveGate(t *testing.T) {
	t.Parallel()

	srv := newRESPServer(t)

	client := goredis.NewClient(&goredis.Options{Addr: srv.ln.Addr().String()})
	t.Cleanup(func() { _ = client.Close() })

	gate := redis.NewSaveGate(client, time.Minute)
	ctx := context.Background()

	ok, err := gate.Acquire(ctx, "draft-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = gate.Acquire(ctx, "draft-1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = gate.Acquire(ctx, "draft-2")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, gate.Release(ctx, "draft-1"))

	ok, err = gate.Acquire(ctx, "draft-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSaveGate_Unavailable(t *testing.T) {
	t.Parallel()

	client := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 100 * time.Millisecond})
	t.Cleanup(func() { _ = client.Close() })

	_, err := redis.NewSaveGate(client, 0).Acquire(context.Background(), "draft-1")
	assert.Error(t, err)
}
