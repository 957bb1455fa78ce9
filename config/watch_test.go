package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trickstertwo/xlogq"
)

func TestWatch_ReloadsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.yaml")
	require.NoError(t, os.WriteFile(path, []byte("level: info\n"), 0o600))

	l, err := xlogq.NewBuilder().WithMode(xlogq.ModeManualPoll).Build()
	require.NoError(t, err)
	require.Equal(t, xlogq.LevelInfo, l.MinLevel())

	w, err := Watch(path, ApplyLevel(l), func(err error) { t.Errorf("watch: %v", err) })
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("level: error\n"), 0o600))
	require.Eventually(t, func() bool { return l.MinLevel() == xlogq.LevelError },
		5*time.Second, 20*time.Millisecond)
	assert.False(t, l.Enabled(xlogq.LevelWarn))
}

func TestWatch_InvalidReloadReportsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.yaml")
	require.NoError(t, os.WriteFile(path, []byte("level: info\n"), 0o600))

	errs := make(chan error, 4)
	changed := make(chan Config, 4)
	w, err := Watch(path, func(c Config) { changed <- c }, func(err error) { errs <- err })
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("level: loud\n"), 0o600))
	select {
	case err := <-errs:
		assert.Contains(t, err.Error(), "loud")
	case c := <-changed:
		t.Fatalf("unexpected reload: %+v", c)
	case <-time.After(5 * time.Second):
		t.Fatal("no error reported")
	}
}

func TestWatch_CloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.yaml")
	w, err := Watch(path, nil, nil)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}

func TestWatch_MissingDirectory(t *testing.T) {
	_, err := Watch(filepath.Join(t.TempDir(), "nope", "log.yaml"), nil, nil)
	assert.Error(t, err)
}
