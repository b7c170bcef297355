package pidfile_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/featherlane/henhouse-go/internal/infrastructure/pidfile"
)

func TestAcquireWritesOwnPID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daemon.pid")
	p := pidfile.New(path)

	require.NoError(t, p.Acquire())
	defer p.Release()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	require.NoError(t, err)
	assert.Equal(t, os.Getpid(), pid)
}

func TestAcquire_RejectsRunningInstance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daemon.pid")

	// The test process itself is definitely running.
	require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf("%d\n", os.Getpid())), 0o644))

	err := pidfile.New(path).Acquire()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already running")
}

func TestAcquire_ReclaimsStaleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daemon.pid")

	// PID 1 is never signallable from an unprivileged test; use an absurd
	// PID that cannot exist instead.
	require.NoError(t, os.WriteFile(path, []byte("999999999\n"), 0o644))

	p := pidfile.New(path)
	require.NoError(t, p.Acquire())
	defer p.Release()
}

func TestAcquire_ReclaimsGarbageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daemon.pid")
	require.NoError(t, os.WriteFile(path, []byte("not a pid"), 0o644))

	p := pidfile.New(path)
	require.NoError(t, p.Acquire())
	defer p.Release()
}

func TestRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daemon.pid")
	p := pidfile.New(path)

	require.NoError(t, p.Acquire())
	require.NoError(t, p.Release())
	assert.NoFileExists(t, path)

	// Releasing a missing file is not an error.
	assert.NoError(t, p.Release())
}
