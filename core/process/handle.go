package process

import (
	"fmt"
	"sync"
	"time"
)

// Handle owns exactly one supervised child process and tracks its lifecycle
// through the state machine:
//
//	NotStarted -> Starting -> Running -> Terminating -> Terminated
//
// Starting can also transition directly to Terminated when the process dies
// before ConfirmRunning observes it alive for the full readiness window.
type Handle struct {
	backend Backend

	// mu guards state and proc.
	mu    sync.Mutex
	state State
	proc  Proc
}

// NewHandle creates a Handle in the NotStarted state.
func NewHandle(backend Backend) *Handle {
	return &Handle{
		backend: backend,
		state:   StateNotStarted,
	}
}

// State returns the current lifecycle state.
func (h *Handle) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Start spawns the process described by spec and moves to Starting.
// Legal only in NotStarted; a spawn failure leaves the Handle in NotStarted.
func (h *Handle) Start(spec Spec) error {
	h.mu.Lock()
	if h.state != StateNotStarted {
		state := h.state
		h.mu.Unlock()
		return fmt.Errorf("%w: Start in state %s", ErrInvalidTransition, state)
	}
	h.mu.Unlock()

	proc, err := h.backend.Start(spec)
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.proc = proc
	h.state = StateStarting
	h.mu.Unlock()
	return nil
}

// ConfirmRunning polls process liveness for attempts intervals of the given
// duration. If the process survives the full window, the Handle moves to
// Running. If it exits within the window, the Handle moves to Terminated and
// ErrExitedEarly is returned with captured diagnostics.
// Legal only in Starting.
func (h *Handle) ConfirmRunning(attempts int, interval time.Duration) error {
	h.mu.Lock()
	if h.state != StateStarting {
		state := h.state
		h.mu.Unlock()
		return fmt.Errorf("%w: ConfirmRunning in state %s", ErrInvalidTransition, state)
	}
	proc := h.proc
	h.mu.Unlock()

	for i := 0; i < attempts; i++ {
		select {
		case <-proc.Done():
			_ = proc.Wait()
			h.mu.Lock()
			h.state = StateTerminated
			h.mu.Unlock()
			if diag := proc.Stderr(); diag != "" {
				return fmt.Errorf("%w: %s", ErrExitedEarly, diag)
			}
			return ErrExitedEarly
		case <-time.After(interval):
		}
	}

	h.mu.Lock()
	h.state = StateRunning
	h.mu.Unlock()
	return nil
}

// Terminate sends a termination request and blocks until the process has
// exited, guaranteeing no orphan. Legal in Running; a no-op once Terminated.
func (h *Handle) Terminate() error {
	h.mu.Lock()
	switch h.state {
	case StateTerminated:
		h.mu.Unlock()
		return nil
	case StateRunning:
		h.state = StateTerminating
	default:
		state := h.state
		h.mu.Unlock()
		return fmt.Errorf("%w: Terminate in state %s", ErrInvalidTransition, state)
	}
	proc := h.proc
	h.mu.Unlock()

	// The signal can race a natural exit; either way the wait below reaps.
	_ = proc.Terminate()
	_ = proc.Wait()

	h.mu.Lock()
	h.state = StateTerminated
	h.mu.Unlock()
	return nil
}

// Done returns a channel closed once the process has exited. Legal only after
// Start has succeeded.
func (h *Handle) Done() <-chan struct{} {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.proc.Done()
}

// Wait blocks until the process exits on its own and moves the Handle to
// Terminated. Legal only after Start has succeeded.
func (h *Handle) Wait() error {
	h.mu.Lock()
	proc := h.proc
	h.mu.Unlock()
	if proc == nil {
		return fmt.Errorf("%w: Wait before Start", ErrInvalidTransition)
	}

	err := proc.Wait()
	h.mu.Lock()
	h.state = StateTerminated
	h.mu.Unlock()
	return err
}

// Stderr returns the diagnostics captured from the child process, if any.
func (h *Handle) Stderr() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.proc == nil {
		return ""
	}
	return h.proc.Stderr()
}
