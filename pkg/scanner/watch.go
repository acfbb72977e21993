package scanner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/openmediastation/mediaserver/pkg/addon"
	"github.com/openmediastation/mediaserver/pkg/library"
	"github.com/openmediastation/mediaserver/pkg/logger"
)

const DefaultDebounce = 2 * time.Second

// debouncer calls fn once events stop arriving for the quiet period
type debouncer struct {
	quiet time.Duration
	fn    func()

	mu    sync.Mutex
	timer *time.Timer
}

func newDebouncer(quiet time.Duration, fn func()) *debouncer {
	return &debouncer{quiet: quiet, fn: fn}
}

func (d *debouncer) touch() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, d.fn)
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
}

// Watch triggers a rescan after changes below the media root settle for debounce.
// It blocks until ctx is done.
func (s *Scanner) Watch(ctx context.Context, debounce time.Duration) error {
	w, err := newWatcher(ctx, s.mediaRoot)
	if err != nil {
		return err
	}
	defer w.Close()

	return s.watchLoop(ctx, w, debounce)
}

// newWatcher watches root and every directory below it
func newWatcher(ctx context.Context, root string) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := addRecursive(ctx, w, root); err != nil {
		w.Close()
		return nil, err
	}

	return w, nil
}

func addRecursive(ctx context.Context, w *fsnotify.Watcher, root string) error {
	log := logger.FromCtx(ctx)

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			// unreadable directories are not watched
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && hidden(d.Name()) {
			return fs.SkipDir
		}

		if err := w.Add(path); err != nil {
			log.Warnw("failed to watch directory", "path", path, "error", err)
		}
		return nil
	})
}

func (s *Scanner) watchLoop(ctx context.Context, w *fsnotify.Watcher, debounce time.Duration) error {
	log := logger.FromCtx(ctx)
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	d := newDebouncer(debounce, s.Trigger)
	defer d.stop()

	log.Infow("watching media root", "path", s.mediaRoot, "debounce", debounce)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if relevant(ctx, w, event) {
				log.Debugw("media change", "path", event.Name, "op", event.Op.String())
				d.touch()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warnw("watcher error", "error", err)
		}
	}
}

// relevant reports whether event may change the inventory. New directories are
// watched as they appear.
func relevant(ctx context.Context, w *fsnotify.Watcher, event fsnotify.Event) bool {
	name := filepath.Base(event.Name)
	if hidden(name) || strings.HasSuffix(name, ".tmp") || strings.HasSuffix(name, ".part") {
		return false
	}

	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := addRecursive(ctx, w, event.Name); err != nil {
				logger.FromCtx(ctx).Warnw("failed to watch new directory", "path", event.Name, "error", err)
			}
			return true
		}
	}

	// removed directories have no extension
	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		if filepath.Ext(name) == "" {
			return true
		}
	}

	return library.IsMediaFile(name) || addon.IsAddonFile(name)
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
