package app

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

type reloader interface {
	Reload(ctx context.Context) error
}

// storeWatcher reloads repository caches when their collection files
// change on disk. The files are plain JSON and get edited by hand; a
// reload after our own atomic save is redundant but harmless.
type storeWatcher struct {
	w    *fsnotify.Watcher
	done chan struct{}
}

func watchStoreDir(log *zap.Logger, dir string, targets map[string]reloader) (*storeWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}

	sw := &storeWatcher{w: w, done: make(chan struct{})}
	go func() {
		defer close(sw.done)
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				name := filepath.Base(ev.Name)
				r, ok := targets[name]
				if !ok {
					continue
				}
				if err := r.Reload(context.Background()); err != nil {
					log.Warn("store reload failed", zap.String("file", name), zap.Error(err))
					continue
				}
				log.Debug("store reloaded", zap.String("file", name), zap.String("op", ev.Op.String()))
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("store watcher error", zap.Error(err))
			}
		}
	}()
	return sw, nil
}

func (s *storeWatcher) Close() error {
	err := s.w.Close()
	<-s.done
	return err
}
