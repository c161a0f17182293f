// Package history keeps a ledger of reconciliation runs in MySQL.
//
// Store implements reconcile.Recorder: the engine hands it every outcome
// that reached reindexing or aborted. Recording is best effort; the sync
// command only logs a warning when it fails.
//
// # Table
//
// Runs are stored in emoji_sync_runs with the run id, the final state, the
// per-operation counts and the error text of the run, if any.
package history
