package vmitem

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"vboxmanager/internal/defs"
	"vboxmanager/internal/uiloop"
	"vboxmanager/internal/vmservice"
	"vboxmanager/pkg/logging"
)

const cloudSubsystem = "CloudItem"

// DefaultRefreshInterval is the delay of a delayed or periodic refresh.
const DefaultRefreshInterval = 10 * time.Second

// CloudRefresher fetches the current state of one cloud VM.
type CloudRefresher interface {
	RefreshCloudMachine(ctx context.Context, id uuid.UUID) (vmservice.CloudMachine, error)
}

// RefreshGroup deduplicates concurrent refreshes of the same key.
// *singleflight.Group implements it.
type RefreshGroup interface {
	DoChan(key string, fn func() (any, error)) <-chan singleflight.Result
}

// refreshes is shared by items that do not bring their own group so two
// rows showing the same cloud VM issue one request.
var refreshes singleflight.Group

// Cloud is a cloud VM row. Fake rows are placeholders shown while a
// profile is listed; real rows wrap a cloud machine handle and own a
// single refresh task.
type Cloud struct {
	attrs
	kind Kind

	fakeState FakeState
	fakeError string

	handle   *vmservice.CloudMachine
	svc      CloudRefresher
	loop     uiloop.Poster
	group    RefreshGroup
	interval time.Duration

	subscribed bool
	scheduled  bool
	running    bool
	closed     bool
	generation int
	timer      *time.Timer
	cancel     context.CancelFunc
	done       chan struct{}
	lastErr    error

	onFinished []func(*Cloud)
	onError    func(*Cloud, error)
}

// CloudOption customizes a real cloud item.
type CloudOption func(*Cloud)

// WithRefreshInterval overrides DefaultRefreshInterval.
func WithRefreshInterval(d time.Duration) CloudOption {
	return func(c *Cloud) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithSingleFlight makes the item deduplicate refreshes through g.
func WithSingleFlight(g RefreshGroup) CloudOption {
	return func(c *Cloud) { c.group = g }
}

// WithErrorHandler is called once for every failed refresh.
func WithErrorHandler(fn func(*Cloud, error)) CloudOption {
	return func(c *Cloud) { c.onError = fn }
}

// NewCloudFake creates a placeholder row.
func NewCloudFake(state FakeState, errorMessage string) *Cloud {
	c := &Cloud{kind: KindCloudFake, fakeState: state, fakeError: errorMessage}
	c.Recache(context.Background())
	return c
}

// NewCloudReal wraps m. Refresh results are delivered through loop.
func NewCloudReal(m vmservice.CloudMachine, svc CloudRefresher, loop uiloop.Poster, opts ...CloudOption) *Cloud {
	c := &Cloud{
		kind:     KindCloudReal,
		handle:   &m,
		svc:      svc,
		loop:     loop,
		group:    &refreshes,
		interval: DefaultRefreshInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Recache(context.Background())
	return c
}

func (c *Cloud) Kind() Kind { return c.kind }

// FakeState is NotApplicable for real rows.
func (c *Cloud) FakeState() FakeState { return c.fakeState }

// SetFakeState moves a placeholder between Loading and Done.
func (c *Cloud) SetFakeState(state FakeState, errorMessage string) {
	if c.kind != KindCloudFake {
		return
	}
	c.fakeState = state
	c.fakeError = errorMessage
	c.Recache(context.Background())
}

// Handle returns the cloud machine, nil for fake rows.
func (c *Cloud) Handle() *vmservice.CloudMachine { return c.handle }

// State returns the cached cloud state.
func (c *Cloud) State() defs.CloudMachineState {
	if c.handle == nil || !c.accessible {
		return defs.CloudMachineStateStopped
	}
	return c.handle.State
}

// LastError is the error of the most recent failed refresh.
func (c *Cloud) LastError() error { return c.lastErr }

// OnRefreshFinished registers fn to run after every completed refresh.
func (c *Cloud) OnRefreshFinished(fn func(*Cloud)) {
	c.onFinished = append(c.onFinished, fn)
}

// Recache derives every attribute from the handle or the fake state.
func (c *Cloud) Recache(context.Context) {
	switch c.kind {
	case KindCloudFake:
		c.id = uuid.Nil
		c.name = ""
		c.accessible = c.fakeError == ""
		c.accessError = c.fakeError
		c.osTypeID = osTypeOther
		switch c.fakeState {
		case FakeStateLoading:
			c.stateName = "Loading ..."
			c.stateIcon = iconLoading
		case FakeStateDone:
			c.stateName = "Empty"
			c.stateIcon = iconNew
		default:
			c.stateName = ""
			c.stateIcon = ""
		}
		c.accessLevel = defs.ConfigurationAccessLevelNull
	case KindCloudReal:
		c.id = c.handle.ID
		c.name = c.handle.Name
		c.accessible = c.handle.Accessible
		c.accessError = ""
		if c.handle.AccessError != nil {
			c.accessError = vmservice.FormatError(c.handle.AccessError)
		}
		if c.accessible {
			c.osTypeID = c.handle.OSTypeID
			c.stateName = c.handle.State.String()
			c.stateIcon = cloudStateIcons[c.handle.State]
			c.accessLevel = defs.ConfigurationAccessLevelFull
		} else {
			c.osTypeID = osTypeOther
			c.stateName = inaccessible
			c.stateIcon = iconAborted
			c.accessLevel = defs.ConfigurationAccessLevelNull
		}
	}
	c.hasDetails = true
	c.RecachePixmap()
	c.toolTip = c.buildToolTip()
}

var cloudStateIcons = map[defs.CloudMachineState]string{
	defs.CloudMachineStateProvisioning:  ":/state_running_16px.png",
	defs.CloudMachineStateRunning:       ":/state_running_16px.png",
	defs.CloudMachineStateStarting:      ":/state_running_16px.png",
	defs.CloudMachineStateStopping:      ":/state_running_16px.png",
	defs.CloudMachineStateStopped:       ":/state_saved_16px.png",
	defs.CloudMachineStateCreatingImage: ":/state_saving_16px.png",
	defs.CloudMachineStateTerminating:   ":/state_discarding_16px.png",
	defs.CloudMachineStateTerminated:    ":/state_aborted_16px.png",
}

func (c *Cloud) RecachePixmap() {
	if c.kind == KindCloudFake && c.fakeState == FakeStateLoading {
		c.pixmap = pixmapCloud
		return
	}
	c.pixmap = osPixmap(c.osTypeID)
}

func (c *Cloud) buildToolTip() string {
	switch {
	case c.kind == KindCloudFake:
		return c.stateName
	case !c.accessible:
		return fmt.Sprintf("%s %s", c.name, inaccessible)
	default:
		return fmt.Sprintf("%s\n%s", c.name, c.stateName)
	}
}

func (c *Cloud) real() bool { return c.kind == KindCloudReal }

func (c *Cloud) cloudState() defs.CloudMachineState {
	if c.handle == nil {
		return defs.CloudMachineStateInvalid
	}
	return c.handle.State
}

func (c *Cloud) IsEditable() bool  { return c.accessible && c.real() }
func (c *Cloud) IsRemovable() bool { return c.accessible && c.real() }

func (c *Cloud) IsSaved() bool {
	return c.accessible && c.cloudState() == defs.CloudMachineStateStopped
}

func (c *Cloud) IsPoweredOff() bool {
	s := c.cloudState()
	return c.accessible && (s == defs.CloudMachineStateStopped || s == defs.CloudMachineStateTerminated)
}

func (c *Cloud) IsStarted() bool { return c.IsRunning() || c.IsPaused() }

func (c *Cloud) IsRunning() bool {
	return c.accessible && c.cloudState() == defs.CloudMachineStateRunning
}

func (c *Cloud) IsRunningHeadless() bool { return c.IsRunning() }
func (c *Cloud) IsPaused() bool          { return false }
func (c *Cloud) IsStuck() bool           { return false }
func (c *Cloud) CanBeSwitchedTo() bool   { return false }

// UpdateInfoAsync schedules a refresh after the refresh interval when
// delayed, otherwise at once. With subscribe the item keeps refreshing
// after every completion until StopAsyncUpdates. It does nothing for
// fake rows or while a refresh is already pending.
func (c *Cloud) UpdateInfoAsync(delayed, subscribe bool) {
	if !c.real() || c.closed {
		return
	}
	if subscribe {
		c.subscribed = true
	}
	if c.scheduled || c.running {
		return
	}
	var delay time.Duration
	if delayed {
		delay = c.interval
	}
	c.schedule(delay)
}

// Subscribed reports whether periodic refresh is on.
func (c *Cloud) Subscribed() bool { return c.subscribed }

// Refreshing reports whether a refresh is scheduled or running.
func (c *Cloud) Refreshing() bool { return c.scheduled || c.running }

// StopAsyncUpdates ends periodic refresh. A pending refresh is dropped;
// a running one completes without scheduling a successor.
func (c *Cloud) StopAsyncUpdates() {
	c.subscribed = false
	c.unschedule()
}

// WaitForAsyncInfoUpdateFinished stops periodic refresh and returns a
// channel closed once the running refresh, if any, has returned. The
// caller keeps pumping the UI loop while it waits.
func (c *Cloud) WaitForAsyncInfoUpdateFinished() <-chan struct{} {
	c.StopAsyncUpdates()
	if c.running {
		return c.done
	}
	done := make(chan struct{})
	close(done)
	return done
}

// Close cancels outstanding work and blocks until the running refresh
// has returned. The item must not be used afterwards.
func (c *Cloud) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.StopAsyncUpdates()
	if c.running {
		c.cancel()
		<-c.done
	}
}

func (c *Cloud) schedule(delay time.Duration) {
	c.generation++
	gen := c.generation
	c.scheduled = true
	c.timer = time.AfterFunc(delay, func() {
		c.loop.Post(func() { c.start(gen) })
	})
}

func (c *Cloud) unschedule() {
	if !c.scheduled {
		return
	}
	c.scheduled = false
	c.generation++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Cloud) start(gen int) {
	if !c.scheduled || gen != c.generation || c.closed {
		return
	}
	c.scheduled = false
	c.timer = nil
	c.running = true

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	done := make(chan struct{})
	c.done = done
	id := c.handle.ID

	logging.Debug(cloudSubsystem, "Refreshing cloud machine %s", id)
	go func() {
		defer cancel()
		ch := c.group.DoChan(id.String(), func() (any, error) {
			return c.svc.RefreshCloudMachine(context.WithoutCancel(ctx), id)
		})
		var (
			m   vmservice.CloudMachine
			err error
		)
		select {
		case res := <-ch:
			err = res.Err
			if err == nil {
				m = res.Val.(vmservice.CloudMachine)
			}
		case <-ctx.Done():
			err = ctx.Err()
		}
		close(done)
		c.loop.Post(func() { c.finish(m, err) })
	}()
}

func (c *Cloud) finish(m vmservice.CloudMachine, err error) {
	c.running = false
	c.cancel = nil
	if c.closed {
		return
	}

	switch {
	case err == nil:
		c.lastErr = nil
		if m.Provider == "" {
			m.Provider = c.handle.Provider
		}
		if m.Profile == "" {
			m.Profile = c.handle.Profile
		}
		c.handle = &m
	case errors.Is(err, context.Canceled):
		logging.Debug(cloudSubsystem, "Refresh of %s canceled", c.id)
	default:
		c.lastErr = err
		logging.Machine(logging.LevelError, cloudSubsystem, c.name, c.id.String(), err, "Failed to refresh cloud machine")
		if c.onError != nil {
			c.onError(c, err)
		}
	}

	c.Recache(context.Background())
	for _, fn := range c.onFinished {
		fn(c)
	}
	if c.subscribed {
		c.schedule(c.interval)
	}
}
