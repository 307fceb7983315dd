package serve

import (
	"strconv"
	"strings"
	"time"
)

// Config holds configuration for the static file server.
type Config struct {
	// Port is the port the server listens on (1-65535).
	Port int `mapstructure:"port" default:"8000"`
	// Command is the external file-serving binary to spawn.
	Command string `mapstructure:"command" default:"python3"`
	// Args are the arguments for Command; {port} is replaced with Port.
	Args string `mapstructure:"args" default:"-m http.server {port}"`
	// ReadyAttempts is how many liveness polls to run after spawning.
	ReadyAttempts int `mapstructure:"ready_attempts" default:"5"`
	// ReadyIntervalMS is the delay between liveness polls, in milliseconds.
	ReadyIntervalMS int `mapstructure:"ready_interval_ms" default:"400"`
}

// IsValidPort checks if the configured port is in the valid range.
func (c Config) IsValidPort() bool {
	return c.Port >= 1 && c.Port <= 65535
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// URL returns the local URL the server is reachable at.
func (c Config) URL() string {
	return "http://localhost:" + strconv.Itoa(c.Port)
}

// CommandArgs returns the expanded argument list for the external server
// command, with {port} substituted.
func (c Config) CommandArgs() []string {
	return strings.Fields(strings.ReplaceAll(c.Args, "{port}", strconv.Itoa(c.Port)))
}

// ReadyInterval returns the liveness poll interval as a duration.
func (c Config) ReadyInterval() time.Duration {
	return time.Duration(c.ReadyIntervalMS) * time.Millisecond
}
