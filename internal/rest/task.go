package rest

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sanLimbu/taskphotos/internal"
)

const maxMultipartMemory = 32 << 20

//go:generate counterfeiter -o resttesting/task_service.gen.go . TaskService

// TaskService ...
type TaskService interface {
	Task(ctx context.Context, id string) (internal.Task, error)
}

//go:generate counterfeiter -o resttesting/submission_service.gen.go . SubmissionService

// SubmissionService ...
type SubmissionService interface {
	SaveTask(ctx context.Context, draft *internal.Draft) (internal.Task, error)
}

// TaskHandler ...
type TaskHandler struct {
	svc       TaskService
	sub       SubmissionService
	uploadDir string
}

// NewTaskHandler instantiates the handler, uploaded photos are staged under uploadDir
// (os.TempDir when empty) until the task is saved.
func NewTaskHandler(svc TaskService, sub SubmissionService, uploadDir string) *TaskHandler {
	return &TaskHandler{
		svc:       svc,
		sub:       sub,
		uploadDir: uploadDir,
	}
}

// Register connects the handlers to the router.
func (t *TaskHandler) Register(r chi.Router) {
	r.Post("/tasks", t.create)
	r.Get("/tasks/{id}", t.task)
}

// Task is an activity documented with photos.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	Photos      []string  `json:"photos"`
	CreatedBy   *string   `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func newTask(task internal.Task) Task {
	photos := task.Photos
	if photos == nil {
		photos = []string{}
	}

	return Task{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority.String(),
		Status:      string(task.Status),
		Photos:      photos,
		CreatedBy:   task.CreatedBy,
		CreatedAt:   task.CreatedAt,
	}
}

// CreateTasksResponse defines the response returned back after creating tasks.
type CreateTasksResponse struct {
	Task Task `json:"task"`
}

func (t *TaskHandler) create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		renderErrorResponse(r.Context(), w, r, "invalid request",
			internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "Invalid multipart form"))
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	draft := internal.Draft{
		ID:          r.Header.Get("Idempotency-Key"),
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Priority:    r.FormValue("priority"),
	}

	files := r.MultipartForm.File["photos"]
	if len(files) > internal.MaxDraftImages {
		files = files[:internal.MaxDraftImages]
	}

	dir, err := os.MkdirTemp(t.uploadDir, "task-photos-")
	if err != nil {
		renderErrorResponse(r.Context(), w, r, "Failed to save task",
			internal.WrapErrorf(err, internal.ErrorCodeUnknown, "os.MkdirTemp"))
		return
	}
	defer os.RemoveAll(dir)

	for i, fh := range files {
		path, err := stagePhoto(dir, i, fh)
		if err != nil {
			renderErrorResponse(r.Context(), w, r, "Failed to save task", err)
			return
		}

		draft.AddImages(internal.ImageRef(path))
	}

	task, err := t.sub.SaveTask(r.Context(), &draft)
	if err != nil {
		renderErrorResponse(r.Context(), w, r, "Failed to save task", err)
		return
	}

	renderResponse(w, r, &CreateTasksResponse{Task: newTask(task)}, http.StatusCreated)
}

func stagePhoto(dir string, i int, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "Invalid photo %d", i)
	}
	defer src.Close()

	path := filepath.Join(dir, fmt.Sprintf("%02d-%s", i, filepath.Base(fh.Filename)))

	dst, err := os.Create(path)
	if err != nil {
		return "", internal.WrapErrorf(err, internal.ErrorCodeUnknown, "os.Create")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", internal.WrapErrorf(err, internal.ErrorCodeUnknown, "io.Copy")
	}

	return path, nil
}

// ReadTasksResponse defines the response returned back after searching one task.
type ReadTasksResponse struct {
	Task Task `json:"task"`
}

func (t *TaskHandler) task(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	task, err := t.svc.Task(r.Context(), id)
	if err != nil {
		renderErrorResponse(r.Context(), w, r, "find failed", err)
		return
	}

	renderResponse(w, r, &ReadTasksResponse{Task: newTask(task)}, http.StatusOK)
}
