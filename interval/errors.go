package interval

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig reports a rate table or task list that cannot be scheduled.
	// It is fatal at startup.
	ErrInvalidConfig = errors.New("invalid scheduler configuration")

	// ErrUnknownRate is returned when a bucket is requested for a rate that was
	// not part of the registry's rate set.
	ErrUnknownRate = errors.New("unknown rate")

	// ErrHistoryRange is returned by History.At for offsets outside the window.
	ErrHistoryRange = errors.New("history offset out of range")
)

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// TaskError records one failed task invocation. Failures are contained to the
// invocation; the cycle carries on with the next task.
type TaskError struct {
	Task    string // task name
	Hz      int    // bucket the task ran in
	Tick    int64  // active tick number (1-based) at which it failed
	Counter int    // counter value at that tick
	Err     error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("task %s (%dHz) failed at tick %d (counter %d): %v", e.Task, e.Hz, e.Tick, e.Counter, e.Err)
}

func (e *TaskError) Unwrap() error {
	return e.Err
}
