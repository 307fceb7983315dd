// Package process supervises a single child OS process through an explicit
// state machine.
//
// The launcher owns the static file server as an independent OS process, not a
// thread. This package models that ownership as a Handle with the lifecycle:
//
//	NotStarted -> Starting -> Running -> Terminating -> Terminated
//
// Starting moves to Running only once a bounded readiness poll has observed
// the process alive for the whole window; it moves straight to Terminated
// (with ErrExitedEarly) if the process dies first.
//
// # Backend
//
// Spawning is abstracted behind the Backend interface. ExecBackend is the
// production implementation over os/exec; tests inject an in-memory fake so
// every state transition can be driven deterministically without real
// subprocesses.
//
// # Guarantees
//
//   - A Handle owns at most one Proc for its lifetime.
//   - Terminate blocks until the child has exited, so the program never leaves
//     an orphaned server behind.
//   - Stderr diagnostics are complete once the process is Terminated.
package process
