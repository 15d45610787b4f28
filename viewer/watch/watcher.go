// CLASSIFICATION: COMMUNITY
// Filename: watcher.go v0.2
// Author: Lukas Bower
// Date Modified: 2026-10-19
// License: SPDX-License-Identifier: MIT OR Apache-2.0

// Package watch reports changes below the sandbox root.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// Logger receives one line per filesystem event.
type Logger interface {
	Printf(format string, v ...any)
}

// Watcher follows a directory tree with fsnotify.
type Watcher struct {
	root   string
	log    Logger
	fw     *fsnotify.Watcher
	events atomic.Int64
}

// New starts watching root and every directory below it.
func New(root string, log Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", root, err)
	}
	w := &Watcher{root: root, log: log, fw: fw}
	if err := w.addTree(root); err != nil {
		fw.Close()
		return nil, err
	}
	return w, nil
}

// Events returns the number of events observed so far.
func (w *Watcher) Events() int64 { return w.events.Load() }

// Run logs events until ctx is done, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fw.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			w.events.Add(1)
			w.log.Printf("sandbox %s %s", ev.Op, w.rel(ev.Name))
			if ev.Has(fsnotify.Create) {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					if err := w.addTree(ev.Name); err != nil {
						w.log.Printf("watch %s: %v", w.rel(ev.Name), err)
					}
				}
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			w.log.Printf("watch error: %v", err)
		}
	}
}

func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

func (w *Watcher) rel(name string) string {
	if r, err := filepath.Rel(w.root, name); err == nil {
		return r
	}
	return name
}
