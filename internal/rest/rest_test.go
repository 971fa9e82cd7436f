package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanLimbu/taskphotos/internal"
	"github.com/sanLimbu/taskphotos/internal/rest"
	"github.com/sanLimbu/taskphotos/internal/rest/resttesting"
)

func newRouter(t *testing.T, svc rest.TaskService, sub rest.SubmissionService, rep rest.ReportService) http.Handler {
	t.Helper()

	router := chi.NewRouter()
	router.Use(rest.Identity)

	rest.NewTaskHandler(svc, sub, t.TempDir()).Register(router)
	rest.NewReportHandler(rep).Register(router)
	rest.RegisterOpenAPI(router)

	return router
}

func multipartBody(t *testing.T, fields map[string]string, photos int) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer

	mw := multipart.NewWriter(&buf)

	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}

	for i := 0; i < photos; i++ {
		fw, err := mw.CreateFormFile("photos", "photo.jpg")
		require.NoError(t, err)

		_, err = fw.Write([]byte{byte(i)})
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func doRequest(h http.Handler, req *http.Request) (*http.Response, []byte) {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)

	return res, body
}

func TestTaskHandler_Create(t *testing.T) {
	t.Parallel()

	t.Run("Created", func(t *testing.T) {
		t.Parallel()

		sub := &resttesting.FakeSubmissionService{}

		var (
			draft    *internal.Draft
			contents [][]byte
			user     string
		)

		sub.SaveTaskCalls(func(ctx context.Context, d *internal.Draft) (internal.Task, error) {
			draft = d
			user, _ = internal.UserFromContext(ctx)

			for _, ref := range d.Images() {
				b, err := os.ReadFile(string(ref))
				if err != nil {
					return internal.Task{}, err
				}

				contents = append(contents, b)
			}

			return internal.Task{
				ID:        "abc",
				Title:     d.Title,
				Priority:  internal.PriorityHigh,
				Status:    internal.StatusPending,
				Photos:    []string{"https://cdn.example.com/tasks/1-0.jpg"},
				CreatedAt: time.Date(2024, time.February, 2, 10, 0, 0, 0, time.UTC),
			}, nil
		})

		body, ct := multipartBody(t, map[string]string{"title": "Fix sink", "priority": "high"}, internal.MaxDraftImages+2)

		req := httptest.NewRequest(http.MethodPost, "/tasks", body)
		req.Header.Set("Content-Type", ct)
		req.Header.Set(rest.HeaderUserID, "u-1")
		req.Header.Set("Idempotency-Key", "draft-1")

		res, raw := doRequest(newRouter(t, &resttesting.FakeTaskService{}, sub, &resttesting.FakeReportService{}), req)
		require.Equal(t, http.StatusCreated, res.StatusCode, string(raw))

		require.NotNil(t, draft)
		assert.Equal(t, "Fix sink", draft.Title)
		assert.Equal(t, "high", draft.Priority)
		assert.Equal(t, "draft-1", draft.ID)
		assert.Equal(t, "u-1", user)
		require.Len(t, contents, internal.MaxDraftImages)
		assert.Equal(t, []byte{0}, contents[0])
		assert.Equal(t, []byte{11}, contents[11])

		var resp rest.CreateTasksResponse
		require.NoError(t, json.Unmarshal(raw, &resp))
		assert.Equal(t, "abc", resp.Task.ID)
		assert.Equal(t, "High", resp.Task.Priority)
		assert.Equal(t, "Pending", resp.Task.Status)
	})

	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{
			"missing title",
			internal.NewErrorf(internal.ErrorCodeInvalidArgument, "Please enter a title"),
			http.StatusBadRequest,
			"Please enter a title",
		},
		{
			"already saving",
			internal.NewErrorf(internal.ErrorCodeConflict, "Task is already being saved"),
			http.StatusConflict,
			"Task is already being saved",
		},
		{
			"upload failed",
			internal.WrapErrorf(errors.New("timeout"), internal.ErrorCodeTransfer, "upload image 0"),
			http.StatusBadGateway,
			"Failed to save task: upload image 0: timeout",
		},
		{
			"bucket full",
			internal.WrapErrorf(errors.New("storage/quota-exceeded: bucket is full"), internal.ErrorCodeTransfer, "upload image 1"),
			http.StatusBadGateway,
			"Failed to save task: upload image 1: storage/quota-exceeded: bucket is full",
		},
		{
			"persistence failed",
			internal.WrapErrorf(errors.New("timeout"), internal.ErrorCodePersistence, "repo.Create"),
			http.StatusBadGateway,
			"Failed to save task: repo.Create: timeout",
		},
		{
			"unknown",
			errors.New("boom"),
			http.StatusInternalServerError,
			"internal error",
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sub := &resttesting.FakeSubmissionService{}
			sub.SaveTaskReturns(internal.Task{}, tt.err)

			body, ct := multipartBody(t, map[string]string{"title": "x"}, 1)

			req := httptest.NewRequest(http.MethodPost, "/tasks", body)
			req.Header.Set("Content-Type", ct)

			res, raw := doRequest(newRouter(t, &resttesting.FakeTaskService{}, sub, &resttesting.FakeReportService{}), req)
			assert.Equal(t, tt.status, res.StatusCode)

			var resp rest.ErrorResponse
			require.NoError(t, json.Unmarshal(raw, &resp))
			assert.Equal(t, tt.msg, resp.Error)
		})
	}

	t.Run("not multipart", func(t *testing.T) {
		t.Parallel()

		sub := &resttesting.FakeSubmissionService{}

		req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(`{"title":"x"}`))
		req.Header.Set("Content-Type", "application/json")

		res, _ := doRequest(newRouter(t, &resttesting.FakeTaskService{}, sub, &resttesting.FakeReportService{}), req)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, 0, sub.SaveTaskCallCount())
	})
}

func TestTaskHandler_Task(t *testing.T) {
	t.Parallel()

	svc := &resttesting.FakeTaskService{}
	svc.TaskReturnsOnCall(0, internal.Task{ID: "abc", Title: "Fix sink", Priority: internal.PriorityLow}, nil)
	svc.TaskReturnsOnCall(1, internal.Task{}, internal.NewErrorf(internal.ErrorCodeNotFound, "not found"))

	router := newRouter(t, svc, &resttesting.FakeSubmissionService{}, &resttesting.FakeReportService{})

	res, raw := doRequest(router, httptest.NewRequest(http.MethodGet, "/tasks/abc", nil))
	require.Equal(t, http.StatusOK, res.StatusCode)

	var resp rest.ReadTasksResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, "Fix sink", resp.Task.Title)
	assert.Equal(t, "Low", resp.Task.Priority)
	assert.Equal(t, []string{}, resp.Task.Photos)

	_, id := svc.TaskArgsForCall(0)
	assert.Equal(t, "abc", id)

	res, _ = doRequest(router, httptest.NewRequest(http.MethodGet, "/tasks/zzz", nil))
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestReportHandler_Monthly(t *testing.T) {
	t.Parallel()

	rep := &resttesting.FakeReportService{}
	rep.MonthlyReturnsOnCall(0, internal.MonthlyReport{
		Start:    time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		Total:    5,
		Finished: 2,
		Rate:     40,
	}, nil)
	rep.MonthlyReturnsOnCall(1, internal.MonthlyReport{}, internal.WrapErrorf(errors.New("down"), internal.ErrorCodeUnknown, "repo.CreatedBetween"))

	router := newRouter(t, &resttesting.FakeTaskService{}, &resttesting.FakeSubmissionService{}, rep)

	res, raw := doRequest(router, httptest.NewRequest(http.MethodGet, "/reports/monthly", nil))
	require.Equal(t, http.StatusOK, res.StatusCode)

	var resp rest.MonthlyReportResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, 5, resp.Total)
	assert.Equal(t, 40, resp.Rate)

	res, raw = doRequest(router, httptest.NewRequest(http.MethodGet, "/reports/monthly", nil))
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.Contains(t, string(raw), "Failed to load report")
}

func TestRegisterOpenAPI(t *testing.T) {
	t.Parallel()

	router := newRouter(t, &resttesting.FakeTaskService{}, &resttesting.FakeSubmissionService{}, &resttesting.FakeReportService{})

	res, raw := doRequest(router, httptest.NewRequest(http.MethodGet, "/openapi3.json", nil))
	require.Equal(t, http.StatusOK, res.StatusCode)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Contains(t, doc["paths"], "/tasks")
	assert.Contains(t, doc["paths"], "/reports/monthly")

	res, raw = doRequest(router, httptest.NewRequest(http.MethodGet, "/openapi3.yaml", nil))
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(raw), "openapi: 3.0.0")
}
