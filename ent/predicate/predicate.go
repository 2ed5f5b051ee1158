// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ApprovalRequest is the predicate function for approvalrequest builders.
type ApprovalRequest func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// LockHistory is the predicate function for lockhistory builders.
type LockHistory func(*sql.Selector)

// LockWaitQueue is the predicate function for lockwaitqueue builders.
type LockWaitQueue func(*sql.Selector)

// ResourceLock is the predicate function for resourcelock builders.
type ResourceLock func(*sql.Selector)

// TaskIssueMapping is the predicate function for taskissuemapping builders.
type TaskIssueMapping func(*sql.Selector)

// Workflow is the predicate function for workflow builders.
type Workflow func(*sql.Selector)
