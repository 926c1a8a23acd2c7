package game

import (
	"context"
	"os"
	"time"
)

// FileWatcher polls file modification times and triggers a callback on change.
// Files that do not exist yet are picked up once they appear.
type FileWatcher struct {
	Paths     []string
	Interval  time.Duration
	onChange  func(string) // called with path that changed
	lastMTime map[string]time.Time
}

// NewFileWatcher creates a watcher for given paths and interval.
func NewFileWatcher(paths []string, interval time.Duration, onChange func(string)) *FileWatcher {
	return &FileWatcher{
		Paths:     paths,
		Interval:  interval,
		onChange:  onChange,
		lastMTime: make(map[string]time.Time),
	}
}

// Run polls until ctx is done.
func (w *FileWatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()
	w.scanAll(true)
	for {
		select {
		case <-ticker.C:
			w.scanAll(false)
		case <-ctx.Done():
			return
		}
	}
}

// scanAll records mtimes and invokes onChange for files that changed,
// appeared or disappeared since the last scan. Priming only records.
func (w *FileWatcher) scanAll(prime bool) {
	for _, p := range w.Paths {
		last, seen := w.lastMTime[p]
		fi, err := os.Stat(p)
		if err != nil {
			if seen {
				delete(w.lastMTime, p)
				w.notify(p, prime)
			}
			continue
		}
		mt := fi.ModTime()
		if !seen || !mt.Equal(last) {
			w.lastMTime[p] = mt
			if seen || !prime {
				w.notify(p, prime)
			}
		}
	}
}

func (w *FileWatcher) notify(p string, prime bool) {
	if !prime && w.onChange != nil {
		w.onChange(p)
	}
}
