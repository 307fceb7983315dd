package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"dj-launcher/core/browser"
	"dj-launcher/core/config"
	"dj-launcher/core/git"
	"dj-launcher/core/logger"
	"dj-launcher/core/process"
	"dj-launcher/feature/launcher"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the launch command
	launchClone     bool
	launchRepo      string
	launchBranch    string
	launchDir       string
	launchPort      int
	launchYes       bool
	launchNoBrowser bool
)

// launchCmd starts the full launch sequence: optional clone, server spawn,
// browser open, and blocking wait until interrupt.
var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Clone (optionally), start the file server, and open the browser",
	Long: `Launch the DJ-App locally.

Validates the project layout, spawns the static file server rooted at the
serve-root, opens the default browser at the server URL, and blocks until
Ctrl-C. On interrupt the server is terminated and awaited before exit.

Examples:
  # Serve an existing checkout
  dj-launcher launch

  # Clone the repository first, then serve it
  dj-launcher launch --clone

  # Clone a custom fork on a custom port
  dj-launcher launch --clone --repo https://github.com/me/DJ-app.git --port 3000`,
	RunE: runLaunch,
}

func init() {
	launchCmd.Flags().BoolVar(&launchClone, "clone", false, "Clone the repository before launching")
	launchCmd.Flags().StringVar(&launchRepo, "repo", "", "Repository URL to clone (overrides config)")
	launchCmd.Flags().StringVar(&launchBranch, "branch", "", "Branch to clone (overrides config)")
	launchCmd.Flags().StringVar(&launchDir, "dir", "", "Target directory (overrides config)")
	launchCmd.Flags().IntVar(&launchPort, "port", 0, "File server port (overrides config)")
	launchCmd.Flags().BoolVar(&launchYes, "yes", false, "Auto-confirm the overwrite prompt (non-interactive)")
	launchCmd.Flags().BoolVar(&launchNoBrowser, "no-browser", false, "Do not open the browser")

	RootCmd.AddCommand(launchCmd)
}

func runLaunch(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyLaunchFlags(cmd, cfg)

	if !cfg.Server.IsValidPort() {
		return fmt.Errorf("invalid port %d: must be in range 1-65535", cfg.Server.Port)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()
	l = logger.WithLaunchID(l)
	zap.ReplaceGlobals(l)

	var confirm launcher.Confirmer = launcher.StdinConfirmer{}
	if launchYes {
		confirm = launcher.AutoConfirmer{}
	}

	var opener browser.Opener = browser.NewSystemOpener()
	if launchNoBrowser {
		opener = noopOpener{}
	}

	lnch := launcher.New(
		cfg.Launch,
		cfg.Git,
		cfg.Server,
		git.NewCLIClient(),
		process.NewExecBackend(),
		opener,
		confirm,
		l,
	)

	// Interrupt (Ctrl-C) or SIGTERM cancels the context, which unblocks the
	// wait phase and triggers server termination.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := lnch.Run(ctx, launchClone); err != nil {
		return err
	}

	l.Info("Goodbye!")
	return nil
}

// applyLaunchFlags overrides loaded configuration with explicitly set flags.
func applyLaunchFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("repo") {
		cfg.Git.URL = launchRepo
	}
	if cmd.Flags().Changed("branch") {
		cfg.Git.Branch = launchBranch
	}
	if cmd.Flags().Changed("dir") {
		cfg.Launch.Dir = launchDir
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = launchPort
	}
}

// noopOpener satisfies browser.Opener when --no-browser is set.
type noopOpener struct{}

func (noopOpener) Open(url string) error {
	zap.L().Info("Browser suppressed", zap.String("url", url))
	return nil
}
