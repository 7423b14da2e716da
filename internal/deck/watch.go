package deck

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Update carries a reloaded deck or the error that prevented loading it.
type Update struct {
	Deck *Deck
	Err  error
}

// Watcher reloads a deck file when it changes on disk. The parent directory
// is watched so editors that replace the file on save are handled.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *zap.Logger
	fsw      *fsnotify.Watcher
	updates  chan Update
}

func NewWatcher(path string, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("deck path: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("new watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{
		path:     abs,
		debounce: 150 * time.Millisecond,
		logger:   logger,
		fsw:      fsw,
		updates:  make(chan Update, 1),
	}, nil
}

// Updates is closed when Run returns.
func (w *Watcher) Updates() <-chan Update { return w.updates }

// Run processes file events until ctx is cancelled. Bursts of events are
// coalesced into a single reload.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.updates)
	defer w.fsw.Close()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("deck watcher error", zap.Error(err))
		case <-fire:
			fire = nil
			d, err := LoadFile(w.path)
			if err != nil {
				w.logger.Warn("deck reload failed", zap.String("path", w.path), zap.Error(err))
			} else {
				w.logger.Info("deck reloaded", zap.String("path", w.path), zap.Int("slides", len(d.Slides)))
			}
			select {
			case w.updates <- Update{Deck: d, Err: err}:
			case <-ctx.Done():
				return
			}
		}
	}
}
