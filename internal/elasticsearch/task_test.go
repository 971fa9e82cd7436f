package elasticsearch_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	esv7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanLimbu/taskphotos/internal"
	"github.com/sanLimbu/taskphotos/internal/elasticsearch"
)

func newClient(t *testing.T, h http.HandlerFunc) *esv7.Client {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		h(w, r)
	}))
	t.Cleanup(ts.Close)

	client, err := esv7.NewClient(esv7.Config{
		Addresses:    []string{ts.URL},
		DisableRetry: true,
	})
	require.NoError(t, err)

	return client
}

func TestTask_Index(t *testing.T) {
	t.Parallel()

	var (
		path string
		doc  map[string]interface{}
	)

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&doc)

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"result":"created"}`)
	})

	user := "u-1"

	err := elasticsearch.NewTask(client).Index(context.Background(), internal.Task{
		ID:        "abc",
		Title:     "Fix sink",
		Priority:  internal.PriorityHigh,
		Status:    internal.StatusPending,
		Photos:    []string{"https://cdn.example.com/tasks/1-0.jpg"},
		CreatedBy: &user,
		CreatedAt: time.Date(2024, time.February, 2, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, "/tasks/_doc/abc"), path)
	assert.Equal(t, "High", doc["priority"])
	assert.Equal(t, "Pending", doc["status"])
	assert.Equal(t, "2024-02-02T10:00:00Z", doc["created_at"])
	assert.Equal(t, "u-1", doc["created_by"])
}

func TestTask_CreatedBetween(t *testing.T) {
	t.Parallel()

	var query map[string]interface{}

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&query)

		_, _ = io.WriteString(w, `{"hits":{"hits":[
			{"_source":{"id":"a","title":"A","priority":"Low","status":"Finished","created_at":"2024-02-03T08:00:00Z"}},
			{"_source":{"id":"b","title":"B","priority":"High","status":"Pending","created_at":"not a date"}},
			{"_source":{"id":"c","title":"C","priority":"Medium","status":"Pending"}}
		]}}`)
	})

	start := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	tasks, err := elasticsearch.NewTask(client).CreatedBetween(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	assert.Equal(t, internal.StatusFinished, tasks[0].Status)
	assert.True(t, tasks[0].CreatedAt.Equal(time.Date(2024, time.February, 3, 8, 0, 0, 0, time.UTC)))
	assert.Equal(t, internal.PriorityHigh, tasks[1].Priority)
	assert.True(t, tasks[1].CreatedAt.IsZero())
	assert.True(t, tasks[2].CreatedAt.IsZero())

	rng := query["query"].(map[string]interface{})["range"].(map[string]interface{})["created_at"].(map[string]interface{})
	assert.Equal(t, "2024-02-01T00:00:00Z", rng["gte"])
	assert.Equal(t, "2024-03-01T00:00:00Z", rng["lt"])

	res := internal.Aggregate(tasks, start, end)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, 100, res.Rate)
}

func TestTask_CreatedBetween_Error(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, `{"error":"unavailable"}`)
	})

	_, err := elasticsearch.NewTask(client).CreatedBetween(context.Background(), time.Now(), time.Now())
	assert.Error(t, err)
}

func TestTask_CreatedBetween_SearchAfter(t *testing.T) {
	t.Parallel()

	pages := []string{
		`{"hits":{"hits":[
			{"_source":{"id":"a","status":"Finished","created_at":"2024-02-01T08:00:00Z"},"sort":[1706774400000,"a"]},
			{"_source":{"id":"b","status":"Pending","created_at":"2024-02-02T08:00:00Z"},"sort":[1706860800000,"b"]}
		]}}`,
		`{"hits":{"hits":[
			{"_source":{"id":"c","status":"Finished","created_at":"2024-02-03T08:00:00Z"},"sort":[1706947200000,"c"]},
			{"_source":{"id":"d","status":"Finished","created_at":"2024-02-04T08:00:00Z"},"sort":[1707033600000,"d"]}
		]}}`,
		`{"hits":{"hits":[
			{"_source":{"id":"e","status":"Pending","created_at":"2024-02-05T08:00:00Z"},"sort":[1707120000000,"e"]}
		]}}`,
	}

	var afters []interface{}

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		var query map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&query)

		assert.EqualValues(t, 2, query["size"])

		afters = append(afters, query["search_after"])

		_, _ = io.WriteString(w, pages[len(afters)-1])
	})

	start := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	tasks, err := elasticsearch.NewTask(client, elasticsearch.WithPageSize(2)).CreatedBetween(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, tasks, 5)

	for i, id := range []string{"a", "b", "c", "d", "e"} {
		assert.Equal(t, id, tasks[i].ID)
	}

	require.Len(t, afters, 3)
	assert.Nil(t, afters[0])
	assert.Equal(t, []interface{}{float64(1706860800000), "b"}, afters[1])
	assert.Equal(t, []interface{}{float64(1707033600000), "d"}, afters[2])

	res := internal.Aggregate(tasks, start, end)
	assert.Equal(t, 5, res.Total)
	assert.Equal(t, 3, res.Finished)
	assert.Equal(t, 60, res.Rate)
}
