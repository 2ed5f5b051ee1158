package models

import "time"

// AcquireResult is the outcome of a lock acquisition attempt. Contention is
// a first-class outcome here, not an error.
type AcquireResult struct {
	Acquired  bool          `json:"acquired"`
	WaitTime  time.Duration `json:"wait_ms"`
	HeldBy    string        `json:"held_by,omitempty"`
	ExpiresAt time.Time     `json:"expires_at,omitempty"`
}

// LockStatus is the point-in-time view of a resource lock.
type LockStatus struct {
	ResourceID       string    `json:"resource_id"`
	Locked           bool      `json:"locked"`
	Holder           string    `json:"holder,omitempty"`
	ExpiresAt        time.Time `json:"expires_at,omitempty"`
	SecondsRemaining float64   `json:"seconds_remaining"`
	Waiters          int       `json:"waiters"`
}

// LockOp is the kind of operation recorded in lock history.
type LockOp string

// Lock history operations.
const (
	LockOpAcquire      LockOp = "acquire"
	LockOpRelease      LockOp = "release"
	LockOpTimeout      LockOp = "timeout"
	LockOpForceRelease LockOp = "force_release"
)
