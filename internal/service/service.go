package service

import (
	"context"
	"time"

	"github.com/sanLimbu/taskphotos/internal"
)

const otelName = "github.com/sanLimbu/taskphotos/internal/service"

//go:generate counterfeiter -o servicetesting/task_repository.gen.go . TaskRepository

// TaskRepository defines the Document Store persisting Task records.
type TaskRepository interface {
	Create(ctx context.Context, params internal.CreateParams) (internal.Task, error)
	Find(ctx context.Context, id string) (internal.Task, error)
}

//go:generate counterfeiter -o servicetesting/task_report_repository.gen.go . TaskReportRepository

// TaskReportRepository defines the datastore returning the Task records created in a time range.
type TaskReportRepository interface {
	CreatedBetween(ctx context.Context, start, end time.Time) ([]internal.Task, error)
}

//go:generate counterfeiter -o servicetesting/blob_store.gen.go . BlobStore

// BlobStore defines the object storage holding task photos.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	URL(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

//go:generate counterfeiter -o servicetesting/image_reader.gen.go . ImageReader

// ImageReader loads the bytes referenced by an ImageRef, ready to be uploaded.
type ImageReader interface {
	Read(ctx context.Context, ref internal.ImageRef) ([]byte, error)
}

//go:generate counterfeiter -o servicetesting/image_picker.gen.go . ImagePicker

// ImagePicker defines the device media picker and camera.
type ImagePicker interface {
	RequestPermission(ctx context.Context, source internal.ImageSource) (bool, error)
	Pick(ctx context.Context, source internal.ImageSource) ([]internal.ImageRef, error)
}

//go:generate counterfeiter -o servicetesting/task_message_broker_repository.gen.go . TaskMessageBrokerRepository

// TaskMessageBrokerRepository defines the messaging broker notifying about new Task records.
type TaskMessageBrokerRepository interface {
	Created(ctx context.Context, task internal.Task) error
}

//go:generate counterfeiter -o servicetesting/save_gate.gen.go . SaveGate

// SaveGate prevents the same draft from being saved concurrently by different processes.
type SaveGate interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}
