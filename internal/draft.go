package internal

import (
	"sync"
)

// MaxDraftImages bounds the photos attached to a single Draft.
const MaxDraftImages = 12

// ImageRef points to an image that has not been uploaded yet: a filesystem path, a file:// URI or an
// http(s):// URL.
type ImageRef string

// ImageSource indicates where images are collected from.
type ImageSource string

const (
	ImageSourceGallery ImageSource = "gallery"
	ImageSourceCamera  ImageSource = "camera"
)

// Validate ...
func (s ImageSource) Validate() error {
	switch s {
	case ImageSourceGallery, ImageSourceCamera:
		return nil
	}

	return NewErrorf(ErrorCodeInvalidArgument, "unknown image source %q", string(s))
}

// PermissionMessage is shown when access to the source is denied.
func (s ImageSource) PermissionMessage() string {
	if s == ImageSourceCamera {
		return "Please allow camera access."
	}

	return "Please allow photo library access."
}

// Draft is a task under construction. It is never persisted, a successful save consumes it.
type Draft struct {
	// ID optionally identifies the draft across processes, used for gating concurrent saves.
	ID          string
	Title       string
	Description string
	// Priority is the raw text entered by the user, see ParsePriority.
	Priority string

	mu       sync.Mutex
	images   []ImageRef
	saving   bool
	consumed bool
}

// AddImages appends refs keeping at most MaxDraftImages, the earliest ones win.
func (d *Draft) AddImages(refs ...ImageRef) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, ref := range refs {
		if len(d.images) == MaxDraftImages {
			return
		}

		d.images = append(d.images, ref)
	}
}

// Images returns a copy of the collected references in selection order.
func (d *Draft) Images() []ImageRef {
	d.mu.Lock()
	defer d.mu.Unlock()

	res := make([]ImageRef, len(d.images))
	copy(res, d.images)

	return res
}

// Saving indicates whether a save is in progress.
func (d *Draft) Saving() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.saving
}

// BeginSave sets the saving flag, failing if it is already set or the draft was already saved.
func (d *Draft) BeginSave() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.consumed {
		return NewErrorf(ErrorCodeConflict, "Task was already saved")
	}

	if d.saving {
		return NewErrorf(ErrorCodeConflict, "Task is already being saved")
	}

	d.saving = true

	return nil
}

// EndSave clears the saving flag, succeeded marks the draft as consumed.
func (d *Draft) EndSave(succeeded bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.saving = false
	d.consumed = d.consumed || succeeded
}

// Params validates the draft and converts it into the values persisted for the Task. Photos and
// CreatedBy are filled in by the caller.
func (d *Draft) Params() (CreateParams, error) {
	params := CreateParams{
		Title:       d.Title,
		Description: d.Description,
		Status:      StatusPending,
		Priority:    PriorityLow,
	}

	if err := params.Validate(); err != nil {
		return CreateParams{}, err
	}

	priority, err := ParsePriority(d.Priority)
	if err != nil {
		return CreateParams{}, err
	}

	params.Priority = priority

	return params, nil
}
