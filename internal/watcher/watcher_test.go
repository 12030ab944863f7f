package watcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherTriggersOnChange(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0755))

	changed := make(chan struct{}, 8)
	w, err := New(50*time.Millisecond, func() {
		changed <- struct{}{}
	}, func(name string) bool { return strings.HasPrefix(name, ".") })
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, root)
	}()

	// Give the watch set time to register before generating events.
	time.Sleep(200 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "a.bin"), []byte{1}, 0644))
	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no rebuild after file write")
	}

	// A directory created while watching joins the watch set.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "later"), 0755))
	time.Sleep(200 * time.Millisecond)
	drain(changed)

	require.NoError(t, os.WriteFile(filepath.Join(root, "later", "b.bin"), []byte{2}, 0644))
	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no rebuild after write in new directory")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
}

func drain(ch chan struct{}) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}
