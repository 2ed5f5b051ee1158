package locks

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotHolder is returned when release is attempted by an agent that is
	// not the live holder of the lock.
	ErrNotHolder = errors.New("not lock holder")

	// ErrWaitTimeout is returned when a blocking acquire exceeded its wait
	// deadline without being granted the lock.
	ErrWaitTimeout = errors.New("lock wait timeout")

	// ErrStorageUnavailable is returned on transient database failures.
	// Retryable by the caller.
	ErrStorageUnavailable = errors.New("lock storage unavailable")
)

// ContendedError reports a failed non-blocking acquire. Contention is a
// first-class outcome; this type exists so callers can read holder details.
type ContendedError struct {
	ResourceID string
	HeldBy     string
	ExpiresAt  time.Time
}

func (e *ContendedError) Error() string {
	return fmt.Sprintf("resource %q is held by %q until %s",
		e.ResourceID, e.HeldBy, e.ExpiresAt.Format(time.RFC3339))
}

// IsContended checks whether err is a contention outcome.
func IsContended(err error) bool {
	var ce *ContendedError
	return errors.As(err, &ce)
}
