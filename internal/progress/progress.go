// Package progress runs long service operations that the UI observes and
// the user may cancel.
package progress

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"vboxmanager/pkg/logging"
)

// ErrCanceled is returned by tasks stopped through Cancel or their
// parent context. Callers treat it as a silent outcome.
var ErrCanceled = errors.New("operation canceled")

// Reporter lets an operation publish its completion percentage.
type Reporter func(percent int, description string)

// Func is the body of a task.
type Func func(ctx context.Context, report Reporter) error

// Task is a running operation with a progress handle.
type Task struct {
	ID    string
	Title string

	cancel  context.CancelFunc
	done    chan struct{}
	percent atomic.Int32

	mu          sync.RWMutex
	description string
	err         error
}

// Start launches fn on its own goroutine.
func Start(parent context.Context, title string, fn Func) *Task {
	ctx, cancel := context.WithCancel(parent)
	t := &Task{
		ID:     uuid.NewString(),
		Title:  title,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go t.run(ctx, fn)
	return t
}

func (t *Task) run(ctx context.Context, fn Func) {
	defer close(t.done)
	defer t.cancel()

	err := fn(ctx, t.report)
	switch {
	case err == nil && ctx.Err() != nil:
		err = ErrCanceled
	case err != nil && (errors.Is(err, context.Canceled) || ctx.Err() != nil):
		err = ErrCanceled
	case err != nil:
		err = fmt.Errorf("%s: %w", t.Title, err)
	}
	if err == nil {
		t.percent.Store(100)
	} else if !errors.Is(err, ErrCanceled) {
		logging.Debug("Progress", "Task %q failed: %v", t.Title, err)
	}

	t.mu.Lock()
	t.err = err
	t.mu.Unlock()
}

func (t *Task) report(percent int, description string) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	t.percent.Store(int32(percent))
	t.mu.Lock()
	t.description = description
	t.mu.Unlock()
}

// Cancel requests the task to stop. It is safe to call more than once.
func (t *Task) Cancel() { t.cancel() }

// Done is closed when the task has finished.
func (t *Task) Done() <-chan struct{} { return t.done }

// Percent returns the last reported completion percentage.
func (t *Task) Percent() int { return int(t.percent.Load()) }

// Description returns the last reported operation description.
func (t *Task) Description() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.description
}

// Err returns the outcome once Done is closed, nil before.
func (t *Task) Err() error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.err
}

// Wait blocks until the task finishes or ctx is done. A done ctx cancels
// the task and waits for it to unwind.
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
	case <-ctx.Done():
		t.Cancel()
		<-t.done
	}
	return t.Err()
}

// Run starts fn and waits for it.
func Run(ctx context.Context, title string, fn Func) error {
	return Start(ctx, title, fn).Wait(ctx)
}

// IsCanceled reports whether err is a user cancellation.
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}
