package gallery

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/isc-ctu/esnresizer/pkg/imageio"
	"github.com/isc-ctu/esnresizer/util/log"
)

// watchSettle coalesces bursts of events into one callback.
const watchSettle = 150 * time.Millisecond

// Watcher calls back when supported images appear in or vanish from a folder.
type Watcher struct {
	fsw      *fsnotify.Watcher
	onChange func()
	timer    *time.Timer
	wg       sync.WaitGroup

	mu     sync.Mutex // held while onChange runs
	closed bool
}

// Watch starts watching dir. onChange runs on a background goroutine and
// must not wait for the goroutine that calls Close.
func Watch(dir string, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{fsw: fsw, onChange: onChange}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !relevant(ev) {
				continue
			}
			log.Debugf("watcher: %s", ev)
			if w.timer != nil {
				w.timer.Stop()
			}
			w.timer = time.AfterFunc(watchSettle, w.fire)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("watcher: %v", err)
		}
	}
}

func (w *Watcher) fire() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.onChange()
}

func relevant(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return imageio.IsSupported(ev.Name)
}

// Close stops the watcher. No callback starts after Close returns, and one
// already running has finished.
func (w *Watcher) Close() error {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	if w.timer != nil {
		w.timer.Stop()
	}
	return err
}
