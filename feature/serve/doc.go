// Package serve provides the static file server configuration and a built-in
// Fiber-based server.
//
// The launcher normally spawns an external file-serving command (by default
// python3 -m http.server) as a child process; this package owns that command's
// configuration, port validation, and readiness poll settings.
//
// # Built-in Mode
//
// For machines without a suitable external tool, NewApp builds an in-process
// Fiber app that serves the serve-root directly. It is exposed through the
// `serve` subcommand and shut down gracefully on interrupt.
//
// # Configuration
//
// The Config struct defines the port (validated against 1-65535), the external
// command and its argument template, and the bounded readiness poll
// (ready_attempts x ready_interval_ms) that replaces a fixed startup sleep.
package serve
