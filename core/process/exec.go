package process

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"syscall"
)

// ExecBackend implements Backend using os/exec.
type ExecBackend struct{}

// NewExecBackend creates a Backend that spawns real OS processes.
func NewExecBackend() *ExecBackend {
	return &ExecBackend{}
}

// Start spawns the process described by spec and begins reaping it in the
// background.
func (b *ExecBackend) Start(spec Spec) (Proc, error) {
	if _, err := exec.LookPath(spec.Path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrToolMissing, err)
	}

	cmd := exec.Command(spec.Path, spec.Args...)
	cmd.Dir = spec.Dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrToolMissing, err)
		}
		return nil, err
	}

	p := &execProc{
		cmd:    cmd,
		stderr: &stderr,
		done:   make(chan struct{}),
	}

	// Reaper goroutine: commits the wait result before closing done, so any
	// reader unblocked by Done observes a committed result.
	go func() {
		err := cmd.Wait()
		p.mu.Lock()
		p.waitErr = err
		p.mu.Unlock()
		close(p.done)
	}()

	return p, nil
}

// execProc wraps one spawned os/exec command.
type execProc struct {
	cmd    *exec.Cmd
	stderr *bytes.Buffer
	done   chan struct{}
	// mu guards waitErr.
	mu      sync.Mutex
	waitErr error
}

func (p *execProc) Alive() bool {
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}

func (p *execProc) Terminate() error {
	return p.cmd.Process.Signal(syscall.SIGTERM)
}

func (p *execProc) Wait() error {
	<-p.done
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.waitErr
}

func (p *execProc) Done() <-chan struct{} {
	return p.done
}

// Stderr returns the captured standard error output. The buffer is complete
// once Done is closed; callers should not read it while the process runs.
func (p *execProc) Stderr() string {
	return strings.TrimSpace(p.stderr.String())
}
