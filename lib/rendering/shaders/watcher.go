package shaders

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jhenstridge/go-inotify"
)

// Watcher reports shader files written in a directory. Events are
// collected on a background goroutine and drained by the render loop,
// which is the only place where programs may be rebuilt.
type Watcher struct {
	watcher *inotify.Watcher
	changes chan string
}

func Watch(dir string) (*Watcher, error) {
	watcher, err := inotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create inotify watcher: %w", err)
	}

	_, err = watcher.Watch(dir)
	if err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("could not watch %s: %w", dir, err)
	}

	w := &Watcher{
		watcher: watcher,
		changes: make(chan string, 64),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	logger := slog.With(slog.String("module", "shaders"))
	for ev := range w.watcher.Event {
		if ev.Mask&(inotify.IN_CLOSE_WRITE|inotify.IN_MOVED_TO) == 0 {
			continue
		}
		logger.Debug(fmt.Sprintf("%s changed", ev.Name))
		select {
		case w.changes <- ev.Name:
		default:
			// full; a reload is already pending
		}
	}
}

// Pending returns the files changed since the last call without
// blocking when there are none. Editors write in bursts, so once a
// change arrives it waits a little for the rest of the burst.
func (w *Watcher) Pending() []string {
	var changed []string
	select {
	case name := <-w.changes:
		changed = append(changed, name)
	default:
		return nil
	}

	settle := time.NewTimer(50 * time.Millisecond)
	defer settle.Stop()
	for {
		select {
		case name := <-w.changes:
			changed = append(changed, name)
		case <-settle.C:
			return changed
		}
	}
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}
