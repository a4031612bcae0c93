package manager

import (
	"context"
	"errors"
	"slices"

	"vboxmanager/internal/progress"
	"vboxmanager/internal/vmservice"
	"vboxmanager/pkg/logging"
)

// Task is a long running operation the window shows with a progress
// indicator until it completes.
type Task struct {
	*progress.Task
	Title string
}

// Tasks returns the operations still running.
func (c *Controller) Tasks() []*Task { return c.tasks }

// runTask starts fn in the background. Once fn returns, done runs on the
// UI goroutine with its result and failures are reported to the user.
func (c *Controller) runTask(title string, fn progress.Func, done func(err error)) *Task {
	t := &Task{Task: progress.Start(c.ctx, title, fn), Title: title}
	c.tasks = append(c.tasks, t)
	logging.Debug(subsystem, "Started task %q", title)
	c.notify()

	go func() {
		<-t.Done()
		c.loop.Post(func() { c.finishTask(t, done) })
	}()
	return t
}

func (c *Controller) finishTask(t *Task, done func(err error)) {
	c.tasks = slices.DeleteFunc(c.tasks, func(other *Task) bool { return other == t })
	err := t.Err()
	if c.closed {
		return
	}
	c.report(t.Title, err)
	if done != nil {
		done(err)
	}
	c.update()
}

// report shows err to the user. Canceled operations are not errors.
func (c *Controller) report(title string, err error) {
	if err == nil {
		return
	}
	if progress.IsCanceled(err) || errors.Is(err, context.Canceled) {
		logging.Debug(subsystem, "%s canceled", title)
		return
	}
	logging.Error(subsystem, err, "%s failed", title)
	c.ui.Notify(Notice{Title: title, Err: err})
}

// FormatNotice renders a notice the way message boxes show it.
func FormatNotice(n Notice) string {
	if n.Err == nil {
		return n.Title
	}
	return n.Title + "\n\n" + vmservice.FormatError(n.Err)
}
