package assets

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/raytrace-demo/internal/logger"
)

// Watcher reports writes to a set of files. It watches their directories
// rather than the files so that editors that save by renaming a temporary
// file are still seen.
type Watcher struct {
	fs       *fsnotify.Watcher
	onChange func(path string)
	changes  chan string
	done     chan struct{}
	wg       sync.WaitGroup

	mu    sync.Mutex
	files map[string]bool
	dirs  map[string]bool
}

// NewWatcher starts a watcher. onChange, if not nil, runs on the watcher
// goroutine before a change is delivered on Changes.
func NewWatcher(onChange func(path string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	w := &Watcher{
		fs:       fsw,
		onChange: onChange,
		changes:  make(chan string, 16),
		done:     make(chan struct{}),
		files:    make(map[string]bool),
		dirs:     make(map[string]bool),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Add starts watching path.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[abs] = true
	if !w.dirs[dir] {
		if err := w.fs.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		w.dirs[dir] = true
	}
	return nil
}

// Changes delivers changed file paths as they were given to Add, made
// absolute. Changes arriving while the buffer is full are dropped.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

func (w *Watcher) tracked(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.files[path]
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case e, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			path := filepath.Clean(e.Name)
			if !w.tracked(path) {
				continue
			}
			if w.onChange != nil {
				w.onChange(path)
			}
			select {
			case w.changes <- path:
			default:
				logger.Debug("dropping file change, consumer is behind", zap.String("path", path))
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			logger.Warn("file watcher error", zap.Error(err))
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() {
	select {
	case <-w.done:
		return
	default:
	}
	close(w.done)
	w.fs.Close()
	w.wg.Wait()
}
