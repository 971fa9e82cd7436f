package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"time"

	esv7 "github.com/elastic/go-elasticsearch/v7"
	esv7api "github.com/elastic/go-elasticsearch/v7/esapi"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/sanLimbu/taskphotos/internal"
)

const otelName = "github.com/sanLimbu/taskphotos/internal/elasticsearch"

// defaultPageSize is the number of hits requested per search, further pages are read with search_after.
const defaultPageSize = 1000

// Task represents the repository used for interacting with Task records.
type Task struct {
	client   *esv7.Client
	index    string
	pageSize int
}

// TaskOption configures the Task repository.
type TaskOption func(*Task)

// WithPageSize sets the number of hits read per search request.
func WithPageSize(n int) TaskOption {
	return func(t *Task) {
		if n > 0 {
			t.pageSize = n
		}
	}
}

type indexedTask struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	Status      string   `json:"status"`
	Photos      []string `json:"photos"`
	CreatedBy   *string  `json:"created_by,omitempty"`
	CreatedAt   *string  `json:"created_at,omitempty"`
}

// NewTask instantiates the Task repository.
func NewTask(client *esv7.Client, opts ...TaskOption) *Task {
	t := &Task{
		client:   client,
		index:    "tasks",
		pageSize: defaultPageSize,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Index creates or updates a task in an index.
func (t *Task) Index(ctx context.Context, task internal.Task) error {
	defer newOTELSpan(ctx, "Task.Index").End()

	body := indexedTask{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority.String(),
		Status:      string(task.Status),
		Photos:      task.Photos,
		CreatedBy:   task.CreatedBy,
	}

	if !task.CreatedAt.IsZero() {
		createdAt := task.CreatedAt.UTC().Format(time.RFC3339Nano)
		body.CreatedAt = &createdAt
	}

	var buf bytes.Buffer

	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "json.NewEncoder.Encode")
	}

	req := esv7api.IndexRequest{
		Index:      t.index,
		Body:       &buf,
		DocumentID: task.ID,
		Refresh:    "true",
	}

	resp, err := req.Do(ctx, t.client)
	if err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "IndexRequest.Do")
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return internal.NewErrorf(internal.ErrorCodeUnknown, "IndexRequest.Do %d", resp.StatusCode)
	}

	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

// CreatedBetween returns the indexed tasks whose creation time falls in [start, end). Results are read
// page by page, sorted by created_at and id, until a short page comes back.
func (t *Task) CreatedBetween(ctx context.Context, start, end time.Time) ([]internal.Task, error) {
	defer newOTELSpan(ctx, "Task.CreatedBetween").End()

	var (
		res   []internal.Task
		after []json.RawMessage
	)

	for {
		hits, err := t.search(ctx, start, end, after)
		if err != nil {
			return nil, err
		}

		for _, hit := range hits {
			res = append(res, hit.Source.task())
		}

		if len(hits) < t.pageSize {
			break
		}

		after = hits[len(hits)-1].Sort
		if len(after) == 0 {
			return nil, internal.NewErrorf(internal.ErrorCodeUnknown, "search hit without sort values")
		}
	}

	return res, nil
}

type searchHit struct {
	Source indexedTask       `json:"_source"`
	Sort   []json.RawMessage `json:"sort"`
}

func (t *Task) search(ctx context.Context, start, end time.Time, after []json.RawMessage) ([]searchHit, error) {
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"range": map[string]interface{}{
				"created_at": map[string]interface{}{
					"gte": start.UTC().Format(time.RFC3339Nano),
					"lt":  end.UTC().Format(time.RFC3339Nano),
				},
			},
		},
		"sort": []interface{}{
			map[string]interface{}{"created_at": "asc"},
			map[string]interface{}{"id.keyword": "asc"},
		},
		"size":             t.pageSize,
		"track_total_hits": false,
	}

	if after != nil {
		query["search_after"] = after
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "json.NewEncoder.Encode")
	}

	req := esv7api.SearchRequest{
		Index: []string{t.index},
		Body:  &buf,
	}

	resp, err := req.Do(ctx, t.client)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "SearchRequest.Do")
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, internal.NewErrorf(internal.ErrorCodeUnknown, "SearchRequest.Do %d", resp.StatusCode)
	}

	var body struct {
		Hits struct {
			Hits []searchHit `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "json.NewDecoder.Decode")
	}

	return body.Hits.Hits, nil
}

func (i indexedTask) task() internal.Task {
	priority, _ := internal.ParsePriority(i.Priority)

	res := internal.Task{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		Priority:    priority,
		Status:      internal.Status(i.Status),
		Photos:      i.Photos,
		CreatedBy:   i.CreatedBy,
	}

	if i.CreatedAt != nil {
		// Unparseable values stay zero and are excluded by the aggregation.
		res.CreatedAt, _ = internal.ParseCreatedAt(*i.CreatedAt)
	}

	return res
}

func newOTELSpan(ctx context.Context, name string) trace.Span {
	_, span := otel.Tracer(otelName).Start(ctx, name)

	span.SetAttributes(semconv.DBSystemElasticsearch)

	return span
}
