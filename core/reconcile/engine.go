package reconcile

import (
	"context"
	"fmt"
	"time"

	"emoji-sync/core/discord"
	"emoji-sync/core/index"
	"emoji-sync/core/inventory"
	"emoji-sync/core/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ClientFactory builds a remote client for a credential.
type ClientFactory func(credential string) discord.Client

// IndexWriter persists the index pair for a remote list.
type IndexWriter interface {
	Write(dir string, emojis []discord.Emoji) (*index.Artifacts, error)
}

// Publisher mirrors a written index pair somewhere else.
type Publisher interface {
	Publish(ctx context.Context, artifacts *index.Artifacts) error
}

// Recorder persists the outcome of a run.
type Recorder interface {
	Record(ctx context.Context, outcome *Outcome, runErr error) error
}

// Deps bundles the collaborators of an Engine.
// Publisher and Recorder are optional.
type Deps struct {
	Clients   ClientFactory
	Scanner   *inventory.Scanner
	Writer    IndexWriter
	Publisher Publisher
	Recorder  Recorder
	Logger    *zap.Logger
}

// Engine runs reconciliations. Runs must not overlap for the same directory
// or application.
type Engine struct {
	clients   ClientFactory
	scanner   *inventory.Scanner
	writer    IndexWriter
	publisher Publisher
	recorder  Recorder
	logger    *zap.Logger
	now       func() time.Time
}

// NewEngine creates an engine from its dependencies.
func NewEngine(d Deps) *Engine {
	l := d.Logger
	if l == nil {
		l = zap.NewNop()
	}
	return &Engine{
		clients:   d.Clients,
		scanner:   d.Scanner,
		writer:    d.Writer,
		publisher: d.Publisher,
		recorder:  d.Recorder,
		logger:    l,
		now:       time.Now,
	}
}

// Run performs one reconciliation.
//
// The returned error wraps ErrAborted when the run stopped before any
// mutation. A non-nil error with a non-aborted outcome means applying finished
// but the index could not be refreshed or written. Per-item failures are not
// errors; check Outcome.HadFailures.
func (e *Engine) Run(ctx context.Context, spec Spec) (*Outcome, error) {
	outcome := &Outcome{
		RunID:     uuid.NewString(),
		State:     StateStart,
		Items:     []ItemResult{},
		StartedAt: e.now(),
	}
	log := logger.WithRunID(e.logger, outcome.RunID)

	log.Info("Starting reconciliation",
		zap.String("dir", spec.Dir),
		zap.Bool("generate_index", spec.GenerateIndex),
		zap.Bool("credential_loaded", spec.Credential != ""),
		zap.Bool("dry_run", spec.DryRun),
	)

	assets, err := e.scanner.Scan(spec.Dir)
	if err != nil {
		return e.abort(ctx, outcome, fmt.Errorf("scan %s: %w", spec.Dir, err))
	}
	localNames := inventory.Names(assets)
	log.Info("Local inventory", zap.Int("count", len(localNames)), zap.Strings("names", localNames))

	if spec.Credential == "" {
		return e.abort(ctx, outcome, &discord.AuthError{Message: "missing bot token"})
	}

	outcome.State = StateIdentify
	client := e.clients(spec.Credential)

	appID, err := client.Identity(ctx)
	if err != nil {
		return e.abort(ctx, outcome, err)
	}
	remote, err := client.List(ctx, appID)
	if err != nil {
		return e.abort(ctx, outcome, err)
	}
	outcome.State = StateListed
	remoteNames := discord.Names(remote)
	log.Info("Remote inventory", zap.String("app_id", appID), zap.Int("count", len(remoteNames)), zap.Strings("names", remoteNames))

	plan := Diff(localNames, remoteNames)
	outcome.State = StateDiffed
	outcome.Plan = plan
	outcome.Kept = len(plan.Kept)
	log.Info("Plan",
		zap.Int("to_create", len(plan.ToCreate)),
		zap.Strings("create", plan.ToCreate),
		zap.Int("to_delete", len(plan.ToDelete)),
		zap.Strings("delete", plan.ToDelete),
		zap.Int("kept", len(plan.Kept)),
	)

	if spec.DryRun {
		outcome.FinishedAt = e.now()
		log.Info("Dry-run mode: no changes were made")
		return outcome, nil
	}

	a := &applier{client: client, appID: appID, scanner: e.scanner, logger: log}

	outcome.State = StateDeleting
	for _, item := range a.deleteAll(ctx, plan.ToDelete, remote) {
		outcome.record(item)
	}

	outcome.State = StateCreating
	for _, item := range a.createAll(ctx, plan.ToCreate, assets) {
		outcome.record(item)
	}

	outcome.State = StateReindexing
	runErr := e.reindex(ctx, log, client, appID, spec, outcome)
	if runErr == nil {
		outcome.State = StateDone
	}
	outcome.FinishedAt = e.now()

	log.Info("Reconciliation finished",
		zap.Int("kept", outcome.Kept),
		zap.Int("created", outcome.Created),
		zap.Int("deleted", outcome.Deleted),
		zap.Int("failed", outcome.Failed),
		zap.Duration("duration", outcome.Duration()),
	)

	e.recordOutcome(ctx, log, outcome, runErr)
	return outcome, runErr
}

// reindex fetches the remote list again and regenerates the index from it.
func (e *Engine) reindex(ctx context.Context, log *zap.Logger, client discord.Client, appID string, spec Spec, outcome *Outcome) error {
	final, err := client.List(ctx, appID)
	if err != nil {
		return fmt.Errorf("refresh remote list: %w", err)
	}
	if !spec.GenerateIndex {
		return nil
	}

	artifacts, err := e.writer.Write(spec.Dir, final)
	if err != nil {
		return err
	}
	outcome.Index = artifacts
	log.Info("Index written",
		zap.String("list", artifacts.ListPath),
		zap.String("declaration", artifacts.DeclarationPath),
		zap.Int("entries", len(artifacts.Entries)),
	)

	if e.publisher != nil {
		if err := e.publisher.Publish(ctx, artifacts); err != nil {
			log.Warn("Index publish failed", zap.Error(err))
		} else {
			log.Info("Index published")
		}
	}
	return nil
}

func (e *Engine) abort(ctx context.Context, outcome *Outcome, cause error) (*Outcome, error) {
	outcome.State = StateAborted
	outcome.FinishedAt = e.now()
	err := fmt.Errorf("%w: %w", ErrAborted, cause)
	e.recordOutcome(ctx, logger.WithRunID(e.logger, outcome.RunID), outcome, err)
	return outcome, err
}

func (e *Engine) recordOutcome(ctx context.Context, log *zap.Logger, outcome *Outcome, runErr error) {
	if e.recorder == nil {
		return
	}
	if err := e.recorder.Record(ctx, outcome, runErr); err != nil {
		log.Warn("Failed to record run history", zap.Error(err))
	}
}
