package deck

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	w, err := NewWatcher(path, zaptest.NewLogger(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	updated := sample + `
  - id: three
    title: Third
`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	select {
	case u := <-w.Updates():
		require.NoError(t, u.Err)
		require.Len(t, u.Deck.Slides, 3)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload")
	}

	require.NoError(t, os.WriteFile(path, []byte("title: broken\n"), 0o644))
	select {
	case u := <-w.Updates():
		require.ErrorIs(t, u.Err, ErrInvalidDeck)
		require.Nil(t, u.Deck)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload error")
	}
}

func TestWatcherStopsOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w.Run(ctx)

	_, ok := <-w.Updates()
	require.False(t, ok)
}
