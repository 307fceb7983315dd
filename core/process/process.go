package process

import "errors"

// ErrToolMissing is returned when the server binary is not on PATH.
var ErrToolMissing = errors.New("server command not found")

// ErrExitedEarly is returned when the child process exits before the
// readiness poll declares it running.
var ErrExitedEarly = errors.New("server exited early")

// ErrInvalidTransition is returned when a Handle method is called in a state
// that does not permit it.
var ErrInvalidTransition = errors.New("invalid process state transition")

// State is the lifecycle state of a supervised process.
type State string

const (
	StateNotStarted  State = "not_started"
	StateStarting    State = "starting"
	StateRunning     State = "running"
	StateTerminating State = "terminating"
	StateTerminated  State = "terminated"
)

// Spec describes the command a Backend should supervise.
type Spec struct {
	// Path is the command to run (looked up on PATH if not absolute).
	Path string
	// Args are the command arguments, excluding the command itself.
	Args []string
	// Dir is the working directory for the child process.
	Dir string
}

// Proc is a live child process owned by a Handle.
//
// Done is closed when the process has exited and its result is committed;
// Stderr is only guaranteed complete once Done is closed.
type Proc interface {
	// Alive reports whether the process is still running.
	Alive() bool
	// Terminate sends a termination request to the process. It does not wait.
	Terminate() error
	// Wait blocks until the process exits and returns its exit error, if any.
	Wait() error
	// Done returns a channel closed once the process has exited.
	Done() <-chan struct{}
	// Stderr returns the captured standard error output.
	Stderr() string
}

// Backend spawns child processes. The production implementation is
// ExecBackend; tests substitute an in-memory fake.
type Backend interface {
	// Start spawns the process described by spec.
	// Returns ErrToolMissing if the command binary is absent.
	Start(spec Spec) (Proc, error)
}
