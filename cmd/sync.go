package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"emoji-sync/core/config"
	"emoji-sync/core/database"
	"emoji-sync/core/discord"
	"emoji-sync/core/index"
	"emoji-sync/core/inventory"
	"emoji-sync/core/reconcile"
	"emoji-sync/core/storage"
	"emoji-sync/feature/history"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dryRunSync bool
	dirSync    string
)

// syncCmd reconciles the application's emojis with the local directory.
var syncCmd = &cobra.Command{
	Use:     "sync",
	Aliases: []string{"build"},
	Short:   "Upload new emojis, delete removed ones and regenerate the index",
	Long: `Reconcile the application's emojis with the local emoji directory.

Files whose name is not registered are uploaded, registered emojis without a
local file are deleted, and list.json plus emojis.d.ts are regenerated from
the registered set.

Examples:
  # Show what would change
  emoji-sync sync --dry-run

  # Apply
  SYNC_TOKEN=... emoji-sync sync`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&dryRunSync, "dry-run", false, "Compute and log the plan without changing anything")
	syncCmd.Flags().StringVar(&dirSync, "dir", "", "Emoji directory (overrides sync.dir)")
	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, l, err := loadRuntime()
	if err != nil {
		return err
	}
	defer l.Sync()

	if dirSync != "" {
		cfg.Sync.Dir = dirSync
	}

	fs := afero.NewOsFs()
	engine := reconcile.NewEngine(reconcile.Deps{
		Clients: func(token string) discord.Client {
			return discord.NewClient(cfg.Discord, token)
		},
		Scanner:   inventory.NewScanner(fs, cfg.Sync.Ignore),
		Writer:    index.NewWriter(fs),
		Publisher: newPublisher(cfg, l),
		Recorder:  newRecorder(ctx, cfg, l),
		Logger:    l,
	})

	spec := cfg.Sync.Spec()
	spec.DryRun = dryRunSync

	outcome, err := engine.Run(ctx, spec)
	if err != nil {
		return err
	}
	if outcome.HadFailures() {
		return fmt.Errorf("%w: %d of %d operations failed", reconcile.ErrHadFailures, outcome.Failed, len(outcome.Items))
	}
	return nil
}

// newPublisher returns the index publisher when storage is enabled. A nil
// reconcile.Publisher interface is returned otherwise.
func newPublisher(cfg *config.Config, l *zap.Logger) reconcile.Publisher {
	if !cfg.Storage.Enabled {
		return nil
	}
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		l.Warn("Index publishing disabled", zap.Error(err))
		return nil
	}
	l.Info("Index publishing enabled",
		zap.String("endpoint", cfg.Storage.Endpoint),
		zap.String("bucket", cfg.Storage.Bucket),
	)
	return index.NewPublisher(client, cfg.Storage.Bucket, cfg.Storage.Prefix)
}

// newRecorder returns the run history store when the database is enabled.
func newRecorder(ctx context.Context, cfg *config.Config, l *zap.Logger) reconcile.Recorder {
	store, err := openHistory(ctx, cfg)
	if err != nil {
		l.Warn("Optional run history unavailable", zap.Error(err))
		return nil
	}
	if store == nil {
		return nil
	}
	return store
}

// openHistory connects and migrates the history store. It returns nil, nil
// when the database is disabled.
func openHistory(ctx context.Context, cfg *config.Config) (*history.Store, error) {
	if !cfg.Database.Enabled {
		return nil, nil
	}
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}
	store := history.NewStore(db)
	if err := store.Migrate(ctx); err != nil {
		return nil, err
	}
	return store, nil
}
