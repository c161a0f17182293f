package cmd

import (
	"fmt"
	"os"

	"emoji-sync/core/workspace"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	writeConfigSetup bool
	forceSetup       bool
)

// setupCmd prepares the current project.
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the emoji directory and wire the generated files into the project",
	Long: `Create the emoji directory, add the generated list.json to an existing .gitignore
and the generated emojis.d.ts to an existing tsconfig.json.

With --write-config a starter emoji-sync.yaml is written; otherwise the
environment (SYNC_TOKEN/TOKEN, SYNC_DIR/EMOJIS_DIR) is used.`,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().BoolVar(&writeConfigSetup, "write-config", false, "Write a starter emoji-sync.yaml")
	setupCmd.Flags().BoolVar(&forceSetup, "force", false, "Replace an existing emoji-sync.yaml")
	RootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	cfg, l, err := loadRuntime()
	if err != nil {
		return err
	}
	defer l.Sync()

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}
	ws := workspace.New(afero.NewOsFs(), root)
	dir := cfg.Sync.Dir

	steps := []func() (workspace.Step, error){
		func() (workspace.Step, error) { return ws.EnsureDir(dir) },
		func() (workspace.Step, error) { return ws.EnsureGitignore(dir) },
		func() (workspace.Step, error) { return ws.EnsureTsconfigInclude(dir) },
	}
	if writeConfigSetup {
		steps = append(steps, func() (workspace.Step, error) { return ws.WriteConfig(dir, forceSetup) })
	}

	for _, step := range steps {
		result, err := step()
		if err != nil {
			return err
		}
		l.Info("Setup step", zap.String("path", result.Path), zap.String("change", string(result.Change)))
	}

	if !writeConfigSetup {
		l.Info("Using environment variables for configuration (SYNC_TOKEN or TOKEN, SYNC_DIR or EMOJIS_DIR)")
	}
	l.Info("Setup complete")
	return nil
}
