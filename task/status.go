package task

import (
	"errors"
	"fmt"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusDeleted   Status = "deleted"
)

// ErrInvalidStatus is returned by ParseStatus for unknown status names.
var ErrInvalidStatus = errors.New("invalid status")

// ParseStatus converts a user-supplied status name into a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusCompleted, StatusDeleted:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

func (s Status) String() string {
	return string(s)
}
