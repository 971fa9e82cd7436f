package azblob_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	sdkazblob "github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanLimbu/taskphotos/internal/azblob"
)

func TestBlob(t *testing.T) {
	t.Parallel()

	var (
		gotPath        string
		gotBody        []byte
		gotContentType string
		deleted        string
	)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			gotPath = r.URL.Path
			gotBody, _ = io.ReadAll(r.Body)
			gotContentType = r.Header.Get("x-ms-blob-content-type")
			w.WriteHeader(http.StatusCreated)
		case http.MethodDelete:
			deleted = r.URL.Path
			w.WriteHeader(http.StatusAccepted)
		}
	}))
	t.Cleanup(ts.Close)

	client, err := sdkazblob.NewClientWithNoCredential(ts.URL+"/", &sdkazblob.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Retry: policy.RetryOptions{MaxRetries: -1},
		},
	})
	require.NoError(t, err)

	blob := azblob.NewBlob(client, "photos")

	require.NoError(t, blob.Put(context.Background(), "tasks/1-0.jpg", []byte("jpeg"), "image/jpeg"))
	assert.Equal(t, "/photos/tasks/1-0.jpg", gotPath)
	assert.Equal(t, []byte("jpeg"), gotBody)
	assert.Equal(t, "image/jpeg", gotContentType)

	raw, err := blob.URL(context.Background(), "tasks/1-0.jpg")
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/photos/tasks/1-0.jpg", u.Path)
	assert.Equal(t, ts.URL, u.Scheme+"://"+u.Host)

	require.NoError(t, blob.Delete(context.Background(), "tasks/1-0.jpg"))
	assert.Equal(t, "/photos/tasks/1-0.jpg", deleted)
}
