package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownFilter(t *testing.T) {
	assert.True(t, MarkdownFilter("notes/value-objects.md"))
	assert.False(t, MarkdownFilter("notes/value-objects.md.swp"))
	assert.False(t, MarkdownFilter("main.go"))
}

func TestWatcher_EmitsDebouncedBatch(t *testing.T) {
	dir := t.TempDir()

	fw, err := NewFileWatcher(50 * time.Millisecond)
	require.NoError(t, err)
	defer fw.Stop()

	fw.AddFilter(MarkdownFilter)
	require.NoError(t, fw.AddPath(dir))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fw.Start(ctx)

	// a burst of writes lands in one batch
	path := filepath.Join(dir, "note.md")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("two"), 0o644))

	select {
	case batch := <-fw.Events():
		require.NotEmpty(t, batch)
		assert.Equal(t, path, batch[0].Path)
	case <-time.After(2 * time.Second):
		t.Fatal("no batch arrived")
	}
}

func TestWatcher_FilterSuppressesEvents(t *testing.T) {
	dir := t.TempDir()

	fw, err := NewFileWatcher(30 * time.Millisecond)
	require.NoError(t, err)
	defer fw.Stop()

	fw.AddFilter(MarkdownFilter)
	require.NoError(t, fw.AddPath(dir))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fw.Start(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644))

	select {
	case batch := <-fw.Events():
		t.Fatalf("unexpected batch: %v", batch)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_AddRecursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	fw, err := NewFileWatcher(30 * time.Millisecond)
	require.NoError(t, err)
	defer fw.Stop()

	require.NoError(t, fw.AddRecursive(dir))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fw.Start(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(sub, "deep.md"), []byte("x"), 0o644))

	select {
	case batch := <-fw.Events():
		require.NotEmpty(t, batch)
	case <-time.After(2 * time.Second):
		t.Fatal("no batch for nested file")
	}
}
