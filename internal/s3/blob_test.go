package s3_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	awss3 "github.com/aws/aws-sdk-go/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanLimbu/taskphotos/internal/s3"
)

type objectServer struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
	fail    bool
}

func (o *objectServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.fail {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	switch r.Method {
	case http.MethodPut:
		b, _ := io.ReadAll(r.Body)
		o.objects[r.URL.Path] = b
		o.types[r.URL.Path] = r.Header.Get("Content-Type")
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	case http.MethodDelete:
		delete(o.objects, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newClient(t *testing.T) (*awss3.S3, *objectServer, string) {
	t.Helper()

	srv := &objectServer{objects: map[string][]byte{}, types: map[string]string{}}
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	sess, err := session.NewSession(&aws.Config{
		Endpoint:         aws.String(ts.URL),
		Region:           aws.String("us-east-1"),
		S3ForcePathStyle: aws.Bool(true),
		Credentials:      credentials.NewStaticCredentials("key", "secret", ""),
		MaxRetries:       aws.Int(0),
	})
	require.NoError(t, err)

	return awss3.New(sess), srv, ts.URL
}

func TestBlob_PutDelete(t *testing.T) {
	t.Parallel()

	client, srv, _ := newClient(t)
	blob := s3.NewBlob(client, "photos")

	require.NoError(t, blob.Put(context.Background(), "tasks/1-0.jpg", []byte("jpeg"), "image/jpeg"))
	assert.Equal(t, []byte("jpeg"), srv.objects["/photos/tasks/1-0.jpg"])
	assert.Equal(t, "image/jpeg", srv.types["/photos/tasks/1-0.jpg"])

	require.NoError(t, blob.Delete(context.Background(), "tasks/1-0.jpg"))
	assert.NotContains(t, srv.objects, "/photos/tasks/1-0.jpg")
}

func TestBlob_Put_Error(t *testing.T) {
	t.Parallel()

	client, srv, _ := newClient(t)
	srv.fail = true

	blob := s3.NewBlob(client, "photos")
	assert.Error(t, blob.Put(context.Background(), "tasks/1-0.jpg", []byte("jpeg"), "image/jpeg"))
}

func TestBlob_URL(t *testing.T) {
	t.Parallel()

	client, _, endpoint := newClient(t)

	t.Run("public", func(t *testing.T) {
		t.Parallel()

		url, err := s3.NewBlob(client, "photos", s3.WithPublicURL("https://cdn.example.com/")).
			URL(context.Background(), "tasks/1-0.jpg")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/tasks/1-0.jpg", url)
	})

	t.Run("object", func(t *testing.T) {
		t.Parallel()

		url, err := s3.NewBlob(client, "photos").URL(context.Background(), "tasks/1-0.jpg")
		require.NoError(t, err)
		assert.Equal(t, endpoint+"/photos/tasks/1-0.jpg", url)
	})

	t.Run("presigned", func(t *testing.T) {
		t.Parallel()

		url, err := s3.NewBlob(client, "photos", s3.WithPresign(time.Hour)).URL(context.Background(), "tasks/1-0.jpg")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, endpoint+"/photos/tasks/1-0.jpg?"), url)
		assert.Contains(t, url, "X-Amz-Signature=")
	})
}
