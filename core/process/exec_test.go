package process

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecBackend_ToolMissing(t *testing.T) {
	b := NewExecBackend()

	_, err := b.Start(Spec{Path: "definitely-not-a-real-server-binary"})
	assert.ErrorIs(t, err, ErrToolMissing)
}

func TestExecBackend_SpawnAndTerminate(t *testing.T) {
	b := NewExecBackend()

	proc, err := b.Start(Spec{Path: "sleep", Args: []string{"30"}})
	require.NoError(t, err)
	assert.True(t, proc.Alive())

	require.NoError(t, proc.Terminate())

	select {
	case <-proc.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("process did not exit after termination request")
	}
	assert.False(t, proc.Alive())
}

func TestExecBackend_CapturesStderr(t *testing.T) {
	b := NewExecBackend()

	proc, err := b.Start(Spec{Path: "sh", Args: []string{"-c", "echo boom >&2; exit 3"}})
	require.NoError(t, err)

	waitErr := proc.Wait()
	assert.Error(t, waitErr)
	assert.Equal(t, "boom", proc.Stderr())
}
