package logsink

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a logger configuration file and signals when it is
// rewritten, so that the owning application can reload the
// configuration and rebuild its logger.
type Watcher struct {
	FilePath string

	inner   *fsnotify.Watcher
	watched string
	signal  chan struct{}
	done    chan struct{}
}

// Initialize starts watching the configuration file.
func (w *Watcher) Initialize() error {
	if _, err := os.Stat(w.FilePath); err != nil {
		return wrapOther("cannot access configuration", err)
	}

	// resolve symlinks and watch the parent directory; a watch on the
	// file node itself is lost when the file is deleted and recreated.
	watched, err := filepath.EvalSymlinks(w.FilePath)
	if err != nil {
		return wrapOther("cannot access configuration", err)
	}
	w.watched, err = filepath.Abs(watched)
	if err != nil {
		return wrapOther("cannot access configuration", err)
	}

	w.inner, err = fsnotify.NewWatcher()
	if err != nil {
		return wrapOther("cannot create watcher", err)
	}

	err = w.inner.Add(filepath.Dir(w.watched))
	if err != nil {
		w.inner.Close()
		return wrapOther("cannot watch configuration", err)
	}

	w.signal = make(chan struct{})
	w.done = make(chan struct{})
	go w.run()

	return nil
}

// Close closes a Watcher.
func (w *Watcher) Close() {
	go func() {
		for range w.signal {
		}
	}()
	w.inner.Close()
	<-w.done
}

func (w *Watcher) matches(event fsnotify.Event) bool {
	return (event.Op&(fsnotify.Write|fsnotify.Create)) != 0 &&
		filepath.Clean(event.Name) == w.watched
}

func (w *Watcher) run() {
	defer close(w.done)

outer:
	for {
		select {
		case event, ok := <-w.inner.Events:
			if !ok {
				break outer
			}
			if !w.matches(event) {
				continue
			}

			// a single rewrite generates a burst of events; wait for
			// the burst to settle and deliver one signal
		settle:
			for {
				time.Sleep(100 * time.Millisecond)

				drained := false
			drain:
				for {
					select {
					case _, ok := <-w.inner.Events:
						if !ok {
							break outer
						}
						drained = true
					default:
						break drain
					}
				}

				if !drained {
					break settle
				}
			}

			w.signal <- struct{}{}

		case <-w.inner.Errors:
			break outer
		}
	}

	close(w.signal)
}

// Watch returns a channel that receives a signal when the configuration
// file has changed.
func (w *Watcher) Watch() chan struct{} {
	return w.signal
}
