package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"dj-launcher/core/config"
	"dj-launcher/core/git"
	"dj-launcher/core/logger"
	"dj-launcher/feature/launcher"

	"github.com/spf13/cobra"
)

var (
	// Flags for the clone command
	cloneRepo   string
	cloneBranch string
	cloneDir    string
	cloneYes    bool
)

// cloneCmd performs only the clone step, without starting the server.
var cloneCmd = &cobra.Command{
	Use:   "clone",
	Short: "Clone the repository without launching the server",
	RunE:  runClone,
}

func init() {
	cloneCmd.Flags().StringVar(&cloneRepo, "repo", "", "Repository URL to clone (overrides config)")
	cloneCmd.Flags().StringVar(&cloneBranch, "branch", "", "Branch to clone (overrides config)")
	cloneCmd.Flags().StringVar(&cloneDir, "dir", "", "Target directory (overrides config)")
	cloneCmd.Flags().BoolVar(&cloneYes, "yes", false, "Auto-confirm the overwrite prompt (non-interactive)")

	RootCmd.AddCommand(cloneCmd)
}

func runClone(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("repo") {
		cfg.Git.URL = cloneRepo
	}
	if cmd.Flags().Changed("branch") {
		cfg.Git.Branch = cloneBranch
	}
	if cmd.Flags().Changed("dir") {
		cfg.Launch.Dir = cloneDir
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()
	l = logger.WithLaunchID(l)

	var confirm launcher.Confirmer = launcher.StdinConfirmer{}
	if cloneYes {
		confirm = launcher.AutoConfirmer{}
	}

	lnch := launcher.New(
		cfg.Launch,
		cfg.Git,
		cfg.Server,
		git.NewCLIClient(),
		nil, // no server is spawned by this command
		nil,
		confirm,
		l,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := lnch.CloneRepository(ctx); err != nil {
		return err
	}
	return lnch.ValidateLayout()
}
