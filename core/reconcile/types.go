package reconcile

import (
	"time"

	"emoji-sync/core/index"
)

// State is a step of a reconciliation run.
type State string

const (
	StateStart      State = "start"
	StateIdentify   State = "identify"
	StateListed     State = "listed"
	StateDiffed     State = "diffed"
	StateDeleting   State = "deleting"
	StateCreating   State = "creating"
	StateReindexing State = "reindexing"
	StateDone       State = "done"
	StateAborted    State = "aborted"
)

// Spec holds the parameters of one run.
type Spec struct {
	// Dir is the local emoji directory.
	Dir string

	// GenerateIndex enables the index pair after applying.
	GenerateIndex bool

	// Credential is the bot token. An empty credential aborts the run
	// before any network call.
	Credential string

	// DryRun stops after the plan is computed. Nothing is mutated or written.
	DryRun bool
}

// DiffResult is the partition of local and remote names.
type DiffResult struct {
	// ToCreate holds local names missing remotely.
	ToCreate []string `json:"to_create"`

	// ToDelete holds remote names missing locally.
	ToDelete []string `json:"to_delete"`

	// Kept holds names present on both sides.
	Kept []string `json:"kept"`
}

// Operation is the kind of remote mutation applied to one item.
type Operation string

const (
	// OpDelete removes a remote emoji.
	OpDelete Operation = "delete"
	// OpCreate uploads a local file as a new emoji.
	OpCreate Operation = "create"
)

// ItemResult is the outcome of applying one operation to one name.
type ItemResult struct {
	// Op is the operation attempted.
	Op Operation `json:"op"`

	// Name is the emoji name.
	Name string `json:"name"`

	// ID is the remote id deleted or assigned; empty on failure.
	ID string `json:"id,omitempty"`

	// Err is the failure, nil on success.
	Err error `json:"-"`
}

// OK reports whether the operation succeeded.
func (r ItemResult) OK() bool {
	return r.Err == nil
}

// Outcome summarizes a run.
type Outcome struct {
	// RunID identifies the run in logs and history.
	RunID string `json:"run_id"`

	// State is the last state reached.
	State State `json:"state"`

	// Plan is the computed diff; empty if the run aborted.
	Plan DiffResult `json:"plan"`

	// Created counts successful creates.
	Created int `json:"created"`

	// Deleted counts successful deletes.
	Deleted int `json:"deleted"`

	// Failed counts failed creates and deletes.
	Failed int `json:"failed"`

	// Kept counts names present on both sides before applying.
	Kept int `json:"kept"`

	// Items holds every attempted operation in execution order.
	Items []ItemResult `json:"items"`

	// Index is the generated pair, nil if no index was written.
	Index *index.Artifacts `json:"-"`

	// StartedAt and FinishedAt bound the run.
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// HadFailures reports whether any item failed. This is the process-level
// failure signal; an aborted run is reported through the returned error.
func (o *Outcome) HadFailures() bool {
	return o.Failed > 0
}

// Aborted reports whether the run stopped before reconciling.
func (o *Outcome) Aborted() bool {
	return o.State == StateAborted
}

// Duration returns the wall time of the run.
func (o *Outcome) Duration() time.Duration {
	return o.FinishedAt.Sub(o.StartedAt)
}

func (o *Outcome) record(item ItemResult) {
	o.Items = append(o.Items, item)
	switch {
	case item.Err != nil:
		o.Failed++
	case item.Op == OpDelete:
		o.Deleted++
	case item.Op == OpCreate:
		o.Created++
	}
}
