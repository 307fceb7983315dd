package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"dj-launcher/core/config"
	"dj-launcher/core/logger"
	"dj-launcher/feature/serve"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the serve command
	serveDir  string
	servePort int
)

// serveCmd serves the serve-root in-process instead of spawning an external
// file server. Useful on machines without python3.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the project's serve-root with the built-in static server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveDir, "dir", "", "Target directory (overrides config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Server port (overrides config)")

	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("dir") {
		cfg.Launch.Dir = serveDir
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = servePort
	}
	if !cfg.Server.IsValidPort() {
		return fmt.Errorf("invalid port %d: must be in range 1-65535", cfg.Server.Port)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	root := filepath.Join(cfg.Launch.Dir, cfg.Launch.ServeRoot)
	if info, statErr := os.Stat(root); statErr != nil || !info.IsDir() {
		return fmt.Errorf("serve-root not found: %s", root)
	}

	app := serve.NewApp(root)

	go func() {
		l.Info("Starting built-in server",
			zap.String("dir", root),
			zap.String("url", cfg.Server.URL()),
		)
		if err := app.Listen(cfg.Server.Addr()); err != nil {
			l.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	l.Info("Shutting down server...")
	return app.Shutdown()
}
