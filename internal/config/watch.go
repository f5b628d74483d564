package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Watcher reloads a config file whenever it is written or replaced.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
}

// NewWatcher watches the directory holding path, since editors often save
// by renaming a temporary file over the original.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s", path)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create watcher")
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, errors.Wrapf(err, "watch %s", filepath.Dir(abs))
	}
	return &Watcher{path: abs, watcher: w}, nil
}

// Run blocks until ctx ends. Each successful reload is passed to onChange;
// read or parse failures go to onError and the previous config stays in
// effect.
func (w *Watcher) Run(ctx context.Context, onChange func(*Config), onError func(error)) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return errors.New("config watcher events channel closed")
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				if onError != nil {
					onError(err)
				}
				continue
			}
			onChange(cfg)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return errors.New("config watcher errors channel closed")
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}

func (w *Watcher) Close() error { return w.watcher.Close() }
