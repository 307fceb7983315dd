// Package launcher implements the launch orchestration feature.
//
// A Launcher sequences the steps needed to get the app running locally:
//  1. Optionally clone the repository (with an overwrite-or-reuse prompt when
//     the target directory already exists).
//  2. Validate that the serve-root subdirectory is present.
//  3. Spawn the static file server as a child process and confirm it survives
//     a bounded readiness window.
//  4. Open the default browser at the server URL (best-effort).
//  5. Block until interrupted, then terminate the server and wait for its
//     exit before returning.
//
// # Components
//
//   - Launcher: the orchestrator; every collaborator (git client, process
//     backend, browser opener, confirmer, logger) is injected so each step can
//     be exercised in tests without real subprocesses.
//   - Confirmer: the injectable yes/no prompt used for the overwrite decision.
//
// # Failure Policy
//
// Every step failure aborts the sequence immediately; nothing is retried.
// The sole exception is the browser step, which logs and continues.
package launcher
