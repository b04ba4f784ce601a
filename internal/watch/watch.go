// Package watch notifies about changes to the config file.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/flo-cli/flo/internal/log"
)

// Reason says why a refresh was triggered.
type Reason int

const (
	// ConfigChanged means the watched file was written, created, removed or renamed.
	ConfigChanged Reason = iota
	// Tick means the polling interval elapsed.
	Tick
)

func (r Reason) String() string {
	if r == ConfigChanged {
		return "config changed"
	}
	return "tick"
}

// settle collapses the burst of events editors emit for a single save.
const settle = 100 * time.Millisecond

// File calls onChange whenever path changes, and every interval when
// interval is positive (worktrees can change without the config file
// changing). It blocks until ctx is cancelled.
//
// The parent directory is watched so the file may be created, deleted or
// replaced atomically while watching. When the parent does not exist yet,
// the nearest existing ancestor is watched instead and the watch moves
// down as directories appear. If nothing can be watched, File falls back
// to polling on interval.
func File(ctx context.Context, path string, interval time.Duration, onChange func(Reason)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer w.Close()

	l := log.FromContext(ctx)
	target := filepath.Clean(path)
	parent := filepath.Dir(target)

	watched := nearestDir(parent)
	if err := w.Add(watched); err != nil {
		l.Debug("file watch unavailable, polling only", "path", watched, "err", err)
		watched = ""
	} else if watched != parent {
		l.Debug("config directory missing, watching ancestor", "dir", parent, "watching", watched)
	}

	var tick <-chan time.Time
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	debounce := time.NewTimer(settle)
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			name := filepath.Clean(event.Name)
			if name != target {
				if watched != parent && event.Has(fsnotify.Create) && within(parent, name) {
					watched = rewatch(w, watched, parent, l)
					if _, err := os.Stat(target); err == nil {
						debounce.Reset(settle)
					}
				}
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				debounce.Reset(settle)
			}

		case <-debounce.C:
			onChange(ConfigChanged)

		case <-tick:
			onChange(Tick)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			l.Debug("watch error", "path", path, "err", err)
		}
	}
}

// nearestDir returns dir or its closest existing ancestor.
func nearestDir(dir string) string {
	for {
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			return dir
		}
		up := filepath.Dir(dir)
		if up == dir {
			return dir
		}
		dir = up
	}
}

// within reports whether name is dir or one of its ancestors.
func within(dir, name string) bool {
	return dir == name || strings.HasPrefix(dir, name+string(filepath.Separator))
}

// rewatch moves the watch from old to the nearest existing directory on
// the way to dir.
func rewatch(w *fsnotify.Watcher, old, dir string, l *log.Logger) string {
	next := nearestDir(dir)
	if next == old {
		return old
	}
	if err := w.Add(next); err != nil {
		l.Debug("watch error", "path", next, "err", err)
		return old
	}
	_ = w.Remove(old)
	l.Debug("watching", "dir", next)
	return next
}
