package internal

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Priority indicates how urgent a Task is.
type Priority int8

const (
	PriorityNone Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
)

// ParsePriority converts free text into a Priority. Matching ignores case and surrounding
// whitespace, blank input means PriorityLow and anything else is rejected.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	}

	return PriorityNone, NewErrorf(ErrorCodeInvalidArgument, "Priority must be one of Low, Medium or High")
}

// String returns the persisted representation.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	}

	return ""
}

// Validate ...
func (p Priority) Validate() error {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return nil
	}

	return NewErrorf(ErrorCodeInvalidArgument, "unknown value")
}

// Status is the lifecycle state of a Task. Values are compared exactly, "finished" is not StatusFinished.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusFinished Status = "Finished"
)

// Task is an activity created from a Draft, optionally documented with photos.
type Task struct {
	ID          string
	Title       string
	Description string
	Priority    Priority
	Status      Status
	Photos      []string
	CreatedBy   *string
	CreatedAt   time.Time
}

// CreateParams defines the arguments used for creating Task records.
type CreateParams struct {
	Title       string
	Description string
	Priority    Priority
	Status      Status
	Photos      []string
	CreatedBy   *string
}

// Validate indicates whether the fields are valid or not.
func (c CreateParams) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return NewErrorf(ErrorCodeInvalidArgument, "Please enter a title")
	}

	if err := validation.ValidateStruct(&c,
		validation.Field(&c.Priority),
		validation.Field(&c.Status, validation.Required),
		validation.Field(&c.Photos, validation.Length(0, MaxDraftImages), validation.Each(validation.Required)),
	); err != nil {
		return WrapErrorf(err, ErrorCodeInvalidArgument, "invalid values")
	}

	return nil
}
