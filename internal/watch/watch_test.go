package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethanolivertroy/depaudit/internal/models"
	"github.com/ethanolivertroy/depaudit/internal/workspace"
)

func newWatcher(t *testing.T, root string) *Watcher {
	t.Helper()
	ignore, err := workspace.NewMatcher(models.DefaultIgnore)
	require.NoError(t, err)
	w, err := New(root, ignore, 50*time.Millisecond, nil)
	require.NoError(t, err)
	t.Cleanup(func() { w.Close() })
	return w
}

func TestSkipsIgnoredDirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "lib"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "node_modules", "lodash"), 0755))

	w := newWatcher(t, root)

	assert.ElementsMatch(t, []string{
		root,
		filepath.Join(root, "src"),
		filepath.Join(root, "src", "lib"),
	}, w.Watched())
}

func TestIgnoredPaths(t *testing.T) {
	root := t.TempDir()
	w := newWatcher(t, root)

	assert.True(t, w.ignored(filepath.Join(root, "node_modules", "x", "index.js")))
	assert.True(t, w.ignored(filepath.Join(root, ".git", "HEAD")))
	assert.False(t, w.ignored(filepath.Join(root, "index.js")))
	assert.False(t, w.ignored(root))
}

func TestRunTriggersOnChange(t *testing.T) {
	root := t.TempDir()
	w := newWatcher(t, root)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runs := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() { runs <- struct{}{} })
	}()

	require.NoError(t, os.WriteFile(filepath.Join(root, "index.js"), []byte("require('lodash')\n"), 0644))

	select {
	case <-runs:
	case <-time.After(5 * time.Second):
		t.Fatal("no run after file change")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestSkippedFilesDoNotRetrigger(t *testing.T) {
	root := t.TempDir()
	report := filepath.Join(root, "report.json")
	w := newWatcher(t, root)
	w.Skip(report)

	assert.True(t, w.ignored(report))
	assert.False(t, w.ignored(filepath.Join(root, "index.js")))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() {
			runs.Add(1)
			_ = os.WriteFile(report, []byte(`{"missing": []}`), 0644)
		})
	}()

	require.NoError(t, os.WriteFile(filepath.Join(root, "index.js"), []byte("require('lodash')\n"), 0644))
	require.Eventually(t, func() bool { return runs.Load() >= 1 }, 5*time.Second, 10*time.Millisecond)

	// writing the report must not start another analysis
	time.Sleep(500 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
