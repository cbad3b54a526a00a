package profile

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce coalesces the burst of filesystem events editors emit for
// a single save.
const reloadDebounce = 200 * time.Millisecond

// Watcher monitors a profile file and invokes a callback with the reloaded
// profile after each change.
type Watcher struct {
	path     string
	fsw      *fsnotify.Watcher
	onChange func(*Profile)
	log      *slog.Logger

	done chan struct{}
	wg   sync.WaitGroup
}

// Watch starts watching path. onChange runs on the watcher's goroutine with
// each successfully reloaded profile; reload errors are logged and skipped.
// A nil logger discards diagnostics.
func Watch(path string, onChange func(*Profile), log *slog.Logger) (*Watcher, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory, not the file: editors replace files on save and
	// a watch on the old inode would go stale.
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		fsw:      fsw,
		onChange: onChange,
		log:      log,
		done:     make(chan struct{}),
	}

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var pending *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
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
			if pending == nil {
				pending = time.NewTimer(reloadDebounce)
				fire = pending.C
			} else {
				pending.Reset(reloadDebounce)
			}

		case <-fire:
			pending = nil
			fire = nil
			p, err := Load(w.path)
			if err != nil {
				w.log.Warn("profile reload failed", "path", w.path, "error", err)
				continue
			}
			w.log.Debug("profile reloaded", "path", w.path, "mode", p.Mode)
			w.onChange(p)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("profile watcher error", "error", err)
		}
	}
}
