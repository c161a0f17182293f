package cmd

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var limitHistory int

// historyCmd lists recorded runs.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List the most recent sync runs",
	Long:  `Lists runs recorded in the emoji_sync_runs table. Requires database.enabled.`,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&limitHistory, "limit", "n", 10, "Number of runs to show")
	RootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, err := loadRuntime()
	if err != nil {
		return err
	}
	defer l.Sync()

	store, err := openHistory(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open run history: %w", err)
	}
	if store == nil {
		return errors.New("run history is disabled; set DATABASE_ENABLED=true")
	}

	runs, err := store.Recent(ctx, limitHistory)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STARTED\tRUN\tSTATE\tKEPT\tCREATED\tDELETED\tFAILED\tDURATION\tERROR")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%s\t%s\n",
			r.StartedAt.Format("2006-01-02 15:04:05"),
			r.RunID,
			r.State,
			r.Kept,
			r.Created,
			r.Deleted,
			r.Failed,
			r.Duration().Round(time.Millisecond),
			r.Error,
		)
	}
	return w.Flush()
}
