package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/sanLimbu/taskphotos/internal"
)

const photoContentType = "image/jpeg"

// Submission turns a Draft into a persisted Task: photos are uploaded first, then the Task
// document is written. Blobs written before a failure are deleted on a best-effort basis.
type Submission struct {
	logger    *zap.Logger
	repo      TaskRepository
	blobs     BlobStore
	images    ImageReader
	picker    ImagePicker
	msgBroker TaskMessageBrokerRepository
	gate      SaveGate
	now       func() time.Time

	uploaded counter
	created  counter
}

// SubmissionOption configures optional Submission collaborators.
type SubmissionOption func(*Submission)

// WithMessageBroker publishes an event after each created Task.
func WithMessageBroker(b TaskMessageBrokerRepository) SubmissionOption {
	return func(s *Submission) {
		s.msgBroker = b
	}
}

// WithSaveGate guards drafts with an ID against concurrent saves across processes.
func WithSaveGate(g SaveGate) SubmissionOption {
	return func(s *Submission) {
		s.gate = g
	}
}

// WithClock replaces the wall clock used for deriving storage keys.
func WithClock(now func() time.Time) SubmissionOption {
	return func(s *Submission) {
		s.now = now
	}
}

// NewSubmission ...
func NewSubmission(logger *zap.Logger, repo TaskRepository, blobs BlobStore, images ImageReader, picker ImagePicker, opts ...SubmissionOption) *Submission {
	s := &Submission{
		logger:   logger,
		repo:     repo,
		blobs:    blobs,
		images:   images,
		picker:   picker,
		now:      time.Now,
		uploaded: newCounter("taskphotos.photos.uploaded", "Number of photos written to the blob store"),
		created:  newCounter("taskphotos.tasks.created", "Number of task documents created"),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// CollectImages asks for access to source and appends the picked images to the draft. When access
// is denied the draft is left untouched.
func (s *Submission) CollectImages(ctx context.Context, draft *internal.Draft, source internal.ImageSource) error {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Submission.CollectImages")
	defer span.End()

	span.SetAttributes(attribute.String("image.source", string(source)))

	if err := source.Validate(); err != nil {
		return err
	}

	granted, err := s.picker.RequestPermission(ctx, source)
	if err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "picker.RequestPermission")
	}

	if !granted {
		return internal.NewErrorf(internal.ErrorCodePermissionDenied, "%s", source.PermissionMessage())
	}

	refs, err := s.picker.Pick(ctx, source)
	if err != nil {
		var ierr *internal.Error
		if errors.As(err, &ierr) && ierr.Code() == internal.ErrorCodePermissionDenied {
			return internal.WrapErrorf(err, internal.ErrorCodePermissionDenied, "%s", source.PermissionMessage())
		}

		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "picker.Pick")
	}

	draft.AddImages(refs...)

	return nil
}

// UploadAll uploads images in order and returns their retrieval URLs in the same order. The first
// failure aborts the remaining uploads.
func (s *Submission) UploadAll(ctx context.Context, images []internal.ImageRef) ([]string, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Submission.UploadAll")
	defer span.End()

	urls, _, err := s.uploadAll(ctx, images)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "upload failed")

		return nil, err
	}

	return urls, nil
}

func (s *Submission) uploadAll(ctx context.Context, images []internal.ImageRef) ([]string, []string, error) {
	urls := make([]string, 0, len(images))
	keys := make([]string, 0, len(images))

	for i, ref := range images {
		key := fmt.Sprintf("tasks/%d-%d.jpg", s.now().UnixMilli(), i)

		data, err := s.images.Read(ctx, ref)
		if err != nil {
			return urls, keys, internal.WrapErrorf(err, internal.ErrorCodeTransfer, "read image %d", i)
		}

		if err := s.blobs.Put(ctx, key, data, photoContentType); err != nil {
			return urls, keys, internal.WrapErrorf(err, internal.ErrorCodeTransfer, "upload image %d", i)
		}

		keys = append(keys, key)

		url, err := s.blobs.URL(ctx, key)
		if err != nil {
			return urls, keys, internal.WrapErrorf(err, internal.ErrorCodeTransfer, "resolve url for image %d", i)
		}

		urls = append(urls, url)

		s.uploaded.add(ctx, 1)
	}

	return urls, keys, nil
}

// SaveTask validates the draft, uploads its images and creates the Task. Validation happens before
// anything leaves the process. The draft's saving flag is set for the duration of the call.
func (s *Submission) SaveTask(ctx context.Context, draft *internal.Draft) (internal.Task, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Submission.SaveTask")
	defer span.End()

	params, err := draft.Params()
	if err != nil {
		return internal.Task{}, err
	}

	if err := draft.BeginSave(); err != nil {
		return internal.Task{}, err
	}

	var saved bool
	defer func() { draft.EndSave(saved) }()

	if s.gate != nil && draft.ID != "" {
		ok, err := s.gate.Acquire(ctx, draft.ID)
		if err != nil {
			return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "gate.Acquire")
		}

		if !ok {
			return internal.Task{}, internal.NewErrorf(internal.ErrorCodeConflict, "Task is already being saved")
		}

		defer func() {
			if err := s.gate.Release(context.WithoutCancel(ctx), draft.ID); err != nil {
				s.logger.Warn("Couldn't release save gate", zap.String("draft", draft.ID), zap.Error(err))
			}
		}()
	}

	photos, keys, err := s.uploadAll(ctx, draft.Images())
	if err != nil {
		s.discard(ctx, keys)
		span.RecordError(err)

		return internal.Task{}, err
	}

	params.Photos = photos

	if user, ok := internal.UserFromContext(ctx); ok {
		params.CreatedBy = &user
	}

	task, err := s.repo.Create(ctx, params)
	if err != nil {
		s.discard(ctx, keys)
		span.RecordError(err)

		return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodePersistence, "repo.Create")
	}

	saved = true

	s.created.add(ctx, 1, attribute.String("priority", task.Priority.String()))

	if s.msgBroker != nil {
		if err := s.msgBroker.Created(ctx, task); err != nil {
			s.logger.Warn("Couldn't publish created event", zap.String("task", task.ID), zap.Error(err))
		}
	}

	s.logger.Info("Task saved", zap.String("task", task.ID), zap.Int("photos", len(task.Photos)))

	return task, nil
}

func (s *Submission) discard(ctx context.Context, keys []string) {
	ctx = context.WithoutCancel(ctx)

	for _, key := range keys {
		if err := s.blobs.Delete(ctx, key); err != nil {
			s.logger.Warn("Couldn't delete orphaned photo", zap.String("key", key), zap.Error(err))
		}
	}
}
