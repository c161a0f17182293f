package reconcile

import "errors"

var (
	// ErrAborted wraps every failure that stops a run before any mutation.
	ErrAborted = errors.New("reconciliation aborted")

	// ErrHadFailures is returned by callers that map a run with failed items
	// to a process-level failure.
	ErrHadFailures = errors.New("reconciliation finished with failures")
)
