package workflow

import "errors"

var (
	// ErrTemplate indicates a structurally invalid template or an
	// unresolvable placeholder; the workflow fails immediately with the
	// diagnostic.
	ErrTemplate = errors.New("template error")

	// ErrTemplateNotFound indicates a reference to an unregistered template.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrNotPaused indicates a resume on a workflow that is not awaiting a
	// decision.
	ErrNotPaused = errors.New("workflow is not paused")
)
