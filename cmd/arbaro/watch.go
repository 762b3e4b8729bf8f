// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// watch generates the output, and then again whenever the parameter
// file changes, until interrupted.
func watch(c *Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return watchContext(ctx, c, nil)
}

// watchContext runs the watch loop until ctx is done. done, when not
// nil, receives the result of each generation.
func watchContext(ctx context.Context, c *Config, done chan<- error) error {
	if c.Params == "" {
		return errors.New("arbaro: watch requires a parameter file")
	}
	fn, err := homedir.Expand(c.Params)
	if err != nil {
		return err
	}
	fn, err = filepath.Abs(fn)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// editors often replace the file, so watch its directory
	if err := w.Add(filepath.Dir(fn)); err != nil {
		return err
	}
	regen := func() {
		err := generate(c)
		if err != nil {
			slog.Error("arbaro: generating", "params", fn, "err", err)
		}
		if done != nil {
			select {
			case done <- err:
			case <-ctx.Done():
			}
		}
	}
	regen()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != fn {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				slog.Info("arbaro: parameters changed", "params", fn)
				regen()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("arbaro: watching", "params", fn, "err", err)
		}
	}
}
