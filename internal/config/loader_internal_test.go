package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"
)

func TestConfigChangeNeverBlocks(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), DefaultConfigFile)
	require.NoError(t, os.WriteFile(configFile, []byte("fps: 30\n"), 0o600))

	event := fsnotify.Event{Name: configFile, Op: fsnotify.Write}

	changes := make(chan Config, 1)
	loader := NewLoader(changes, configFile)

	loader.onConfigChange(event)
	// The buffer is full, the second reload is dropped.
	loader.onConfigChange(event)

	require.Equal(t, 30, (<-changes).FPS)
	require.Empty(t, changes)

	// No reader at all, as after the ui has exited.
	abandoned := NewLoader(make(chan Config), configFile)
	done := make(chan struct{})

	go func() {
		abandoned.onConfigChange(event)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("config change blocked without a reader")
	}
}

func TestConfigChangeIgnoresOtherOps(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), DefaultConfigFile)
	require.NoError(t, os.WriteFile(configFile, []byte("fps: 30\n"), 0o600))

	changes := make(chan Config, 1)
	NewLoader(changes, configFile).onConfigChange(fsnotify.Event{Name: configFile, Op: fsnotify.Chmod})

	require.Empty(t, changes)
}
