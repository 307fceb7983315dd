package serve_test

import (
	"testing"
	"time"

	"dj-launcher/feature/serve"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidPort(t *testing.T) {
	tests := []struct {
		name string
		port int
		want bool
	}{
		{"Default", 8000, true},
		{"LowerBound", 1, true},
		{"UpperBound", 65535, true},
		{"Zero", 0, false},
		{"Negative", -1, false},
		{"TooHigh", 65536, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := serve.Config{Port: tt.port}
			assert.Equal(t, tt.want, c.IsValidPort())
		})
	}
}

func TestConfig_CommandArgs(t *testing.T) {
	c := serve.Config{Port: 3000, Command: "python3", Args: "-m http.server {port}"}
	assert.Equal(t, []string{"-m", "http.server", "3000"}, c.CommandArgs())
}

func TestConfig_URLAndAddr(t *testing.T) {
	c := serve.Config{Port: 8000}
	assert.Equal(t, "http://localhost:8000", c.URL())
	assert.Equal(t, ":8000", c.Addr())
}

func TestConfig_ReadyInterval(t *testing.T) {
	c := serve.Config{ReadyAttempts: 5, ReadyIntervalMS: 400}
	assert.Equal(t, 400*time.Millisecond, c.ReadyInterval())
}
