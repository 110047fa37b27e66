package cli

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/matzehuels/commitgraph/pkg/errors"
	"github.com/matzehuels/commitgraph/pkg/pipeline"
)

// watchDebounce collapses the burst of events an editor save produces.
const watchDebounce = 200 * time.Millisecond

// watch renders job, then re-renders after every change to its input
// until ctx is canceled. Render failures are reported and watching goes on.
func (c *CLI) watch(ctx context.Context, runner *pipeline.Runner, job renderJob) error {
	logger := loggerFromContext(ctx)

	target, err := filepath.Abs(job.input)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %s", job.input)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "start file watcher")
	}
	defer w.Close()

	// Editors often replace the file instead of writing it, so watch the
	// directory and filter by name.
	if err := w.Add(filepath.Dir(target)); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "watch %s", filepath.Dir(target))
	}

	var spin *spinner
	render := func() {
		if spin != nil {
			spin.Stop()
		}
		if _, err := renderOnce(ctx, runner, job); err != nil && ctx.Err() == nil {
			printError("%s", errors.UserMessage(err))
		}
		spin = newSpinner(ctx, "watching "+job.input+" for changes")
		spin.Start()
	}

	render()
	err = watchLoop(ctx, w.Events, w.Errors, target, watchDebounce, render, func(err error) {
		logger.Warn("file watcher", "error", err)
	})
	if spin != nil {
		spin.Stop()
		if spin.Canceled() {
			printInfo("Stopped watching %s", job.input)
		}
	}
	return err
}

// watchLoop calls fire once events for target have been quiet for delay.
// It returns nil when ctx ends and an error when the watcher closes.
func watchLoop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, target string, delay time.Duration, fire func(), onError func(error)) error {
	timer := time.NewTimer(delay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return errors.New(errors.ErrCodeInternal, "file watcher closed")
			}
			if !relevant(ev, target) {
				continue
			}
			loggerFromContext(ctx).Debug("file event", "op", ev.Op.String(), "path", ev.Name)
			timer.Reset(delay)
		case err, ok := <-errs:
			if !ok {
				return errors.New(errors.ErrCodeInternal, "file watcher closed")
			}
			onError(err)
		case <-timer.C:
			fire()
		}
	}
}

func relevant(ev fsnotify.Event, target string) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	name, err := filepath.Abs(ev.Name)
	return err == nil && name == target
}
