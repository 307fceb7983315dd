package launcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"dj-launcher/core/browser"
	"dj-launcher/core/git"
	"dj-launcher/core/process"
	"dj-launcher/feature/serve"

	"go.uber.org/zap"
)

// Launcher orchestrates the full launch sequence: optional clone, layout
// validation, server spawn, browser open, and signal-driven shutdown.
// All collaborators are injected; the Launcher holds no global state.
type Launcher struct {
	cfg     Config
	repo    git.Config
	srv     serve.Config
	client  git.Client
	backend process.Backend
	opener  browser.Opener
	confirm Confirmer
	logger  *zap.Logger
}

// New creates a new Launcher.
func New(cfg Config, repo git.Config, srv serve.Config, client git.Client, backend process.Backend, opener browser.Opener, confirm Confirmer, logger *zap.Logger) *Launcher {
	return &Launcher{
		cfg:     cfg,
		repo:    repo,
		srv:     srv,
		client:  client,
		backend: backend,
		opener:  opener,
		confirm: confirm,
		logger:  logger,
	}
}

// CloneRepository clones the configured repository into the target directory.
// If the directory already exists the user chooses between overwriting it and
// reusing it; reuse skips the clone and is not an error.
func (l *Launcher) CloneRepository(ctx context.Context) error {
	l.logger.Info("Cloning repository",
		zap.String("url", l.repo.URL),
		zap.String("branch", l.repo.Branch),
		zap.String("dir", l.cfg.Dir),
	)

	if _, err := os.Stat(l.cfg.Dir); err == nil {
		prompt := fmt.Sprintf("Directory %q already exists. Delete it and clone again? (y/N): ", l.cfg.Dir)
		if !l.confirm.Confirm(prompt) {
			l.logger.Info("Reusing existing directory", zap.String("dir", l.cfg.Dir))
			return nil
		}
		if err := os.RemoveAll(l.cfg.Dir); err != nil {
			return fmt.Errorf("failed to remove existing directory: %w", err)
		}
		l.logger.Info("Removed existing directory", zap.String("dir", l.cfg.Dir))
	}

	if err := l.client.Clone(ctx, l.repo.URL, l.repo.Branch, l.cfg.Dir); err != nil {
		return err
	}
	l.logger.Info("Repository cloned", zap.String("dir", l.cfg.Dir))
	return nil
}

// ValidateLayout checks that the serve-root subdirectory exists.
func (l *Launcher) ValidateLayout() error {
	root := l.serveRoot()
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrServeRootMissing, root)
	}
	return nil
}

// StartServer spawns the static file server rooted at the serve-root and
// confirms it survives the readiness window. On failure the returned handle
// is nil and no process is left running.
func (l *Launcher) StartServer() (*process.Handle, error) {
	root := l.serveRoot()
	l.logger.Info("Starting server",
		zap.Int("port", l.srv.Port),
		zap.String("dir", root),
		zap.String("url", l.srv.URL()),
	)

	handle := process.NewHandle(l.backend)
	spec := process.Spec{
		Path: l.srv.Command,
		Args: l.srv.CommandArgs(),
		Dir:  root,
	}
	if err := handle.Start(spec); err != nil {
		return nil, err
	}
	if err := handle.ConfirmRunning(l.srv.ReadyAttempts, l.srv.ReadyInterval()); err != nil {
		return nil, err
	}
	return handle, nil
}

// OpenBrowser opens the server URL in the default browser. Best-effort:
// failures are logged with the URL for manual use and never propagate.
func (l *Launcher) OpenBrowser() {
	url := l.srv.URL()
	if err := l.opener.Open(url); err != nil {
		l.logger.Warn("Could not open browser automatically; open it manually",
			zap.String("url", url),
			zap.Error(err),
		)
		return
	}
	l.logger.Info("Browser opened", zap.String("url", url))
}

// Run performs the full launch sequence and then blocks until the context is
// cancelled (interrupt) or the server exits on its own. On interrupt the
// server receives a termination request and Run blocks until it has exited,
// so no orphaned process survives the launcher.
func (l *Launcher) Run(ctx context.Context, shouldClone bool) error {
	if shouldClone {
		if err := l.CloneRepository(ctx); err != nil {
			return err
		}
	} else if _, err := os.Stat(l.cfg.Dir); err != nil {
		return fmt.Errorf("%w: %s (use --clone to fetch it)", ErrProjectDirMissing, l.cfg.Dir)
	}

	if err := l.ValidateLayout(); err != nil {
		return err
	}

	handle, err := l.StartServer()
	if err != nil {
		return err
	}

	l.OpenBrowser()
	l.logger.Info("Server is running; press Ctrl-C to stop", zap.String("url", l.srv.URL()))

	select {
	case <-ctx.Done():
		l.logger.Info("Shutting down server...")
		if err := handle.Terminate(); err != nil {
			return err
		}
		l.logger.Info("Server stopped")
		return nil
	case <-handle.Done():
		// The server ended on its own; reap it and treat as normal completion.
		_ = handle.Wait()
		l.logger.Info("Server exited", zap.String("stderr", handle.Stderr()))
		return nil
	}
}

func (l *Launcher) serveRoot() string {
	return filepath.Join(l.cfg.Dir, l.cfg.ServeRoot)
}
