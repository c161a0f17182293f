package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"emoji-sync/core/loader"
	"emoji-sync/core/logger"
	"emoji-sync/core/middleware/auth"
	"emoji-sync/core/middleware/rayid"
	"emoji-sync/feature/registry"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd serves the generated index over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generated emoji index over HTTP",
	Long:  `Starts the HTTP server exposing list.json lookups. POST /emojis/reload re-reads the index after a sync.`,
	RunE:  runServe,
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logg, err := loadRuntime()
	if err != nil {
		return err
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	if !cfg.Server.IsValidPort() {
		return fmt.Errorf("invalid server port %q", cfg.Server.Port)
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	mgr := loader.NewManager()
	mgr.Register(registry.NewFeature(afero.NewOsFs(), cfg.Sync.Dir, logg))

	// RayID first so every later log line carries it
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))
	if cfg.Server.ApiKey == "" {
		logg.Warn("API key not set; the registry API is unauthenticated")
	}

	if err := mgr.LoadAll(app); err != nil {
		return fmt.Errorf("failed to load features: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info("Starting server", zap.String("port", cfg.Server.Port))
		errCh <- app.Listen(cfg.Server.Address())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	logg.Info("Shutting down server...")
	return app.Shutdown()
}
