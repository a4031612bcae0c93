// Package manager is the controller of the VirtualBox Manager window. It
// owns the VM list and the selection, keeps the action pool's menus and
// enablement in step with them, runs machine operations and decides which
// sub-dialogs are live.
//
// A Controller belongs to the UI goroutine. Background work posts its
// results through the uiloop.Poster given in Options.
package manager

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"vboxmanager/internal/actionpool"
	"vboxmanager/internal/defs"
	"vboxmanager/internal/events"
	"vboxmanager/internal/extradata"
	"vboxmanager/internal/tools"
	"vboxmanager/internal/uiloop"
	"vboxmanager/internal/vmitem"
	"vboxmanager/internal/vmservice"
	"vboxmanager/pkg/logging"
)

const subsystem = "Manager"

// cloudListLimit bounds the concurrent profile listings of a reload.
const cloudListLimit = 4

// ErrMissingDependency is wrapped by failures caused by a file or setting
// the operation needs but cannot find.
var ErrMissingDependency = errors.New("missing dependency")

// Clipboard receives copied console commands.
type Clipboard interface {
	WriteAll(text string) error
}

// Desktop opens things outside the application.
type Desktop interface {
	OpenURL(url string) error
	OpenInFileManager(path string) error
	CreateMachineShortcut(settingsFile, dir, name string, id uuid.UUID) error
	Execute(path string, args []string) error
}

// Options wire a Controller. Service, Loop, Pool, Tools and UI are
// required.
type Options struct {
	Service   vmservice.Service
	Store     *extradata.Store
	Loop      uiloop.Poster
	Pool      *actionpool.Pool
	Tools     *tools.Model
	UI        UI
	Clipboard Clipboard
	Desktop   Desktop
	// Fs is where public keys, URLs and saved logs are looked up.
	Fs afero.Fs
	// ShortcutDir receives machine shortcuts. Defaults to ~/Desktop.
	ShortcutDir          string
	CloudRefreshInterval time.Duration
}

// profileKey names one cloud profile.
type profileKey struct {
	provider string
	profile  string
}

// Controller coordinates the manager window.
type Controller struct {
	ctx    context.Context
	cancel context.CancelFunc

	svc           vmservice.Service
	store         *extradata.Store
	loop          uiloop.Poster
	pool          *actionpool.Pool
	tools         *tools.Model
	ui            UI
	clipboard     Clipboard
	desktop       Desktop
	fs            afero.Fs
	shortcutDir   string
	cloudInterval time.Duration
	refreshes     singleflight.Group

	items     []vmitem.Item
	fakes     map[*vmitem.Cloud]profileKey
	selection Selection
	// currentStateSelected is false while the snapshot pane has a
	// snapshot other than the current state selected.
	currentStateSelected bool
	shiftHeld            bool

	groupSaves    int
	cloudUpdating int

	shown bool
	urls  []string

	tasks   []*Task
	dialogs dialogState

	sub            *events.Subscription
	changeHandlers []func()
	closed         bool
}

// New wires the controller and binds it to the pool's actions. Call
// Reload to read the machines.
func New(opts Options) (*Controller, error) {
	switch {
	case opts.Service == nil:
		return nil, fmt.Errorf("manager: service is required")
	case opts.Pool == nil:
		return nil, fmt.Errorf("manager: action pool is required")
	case opts.Tools == nil:
		return nil, fmt.Errorf("manager: tools model is required")
	case opts.UI == nil:
		return nil, fmt.Errorf("manager: UI is required")
	}
	if opts.Loop == nil {
		opts.Loop = uiloop.Immediate{}
	}
	if opts.Store == nil {
		opts.Store = extradata.NewMemory()
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.ShortcutDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			opts.ShortcutDir = filepath.Join(home, "Desktop")
		}
	}
	if opts.CloudRefreshInterval <= 0 {
		opts.CloudRefreshInterval = vmitem.DefaultRefreshInterval
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		ctx:                  ctx,
		cancel:               cancel,
		svc:                  opts.Service,
		store:                opts.Store,
		loop:                 opts.Loop,
		pool:                 opts.Pool,
		tools:                opts.Tools,
		ui:                   opts.UI,
		clipboard:            opts.Clipboard,
		desktop:              opts.Desktop,
		fs:                   opts.Fs,
		shortcutDir:          opts.ShortcutDir,
		cloudInterval:        opts.CloudRefreshInterval,
		fakes:                make(map[*vmitem.Cloud]profileKey),
		selection:            GlobalSelection(),
		currentStateSelected: true,
		dialogs:              newDialogState(opts.Service, opts.Fs),
	}

	c.bindActions()
	c.pool.OnMenuPrepare(c.prepareMenu)
	c.tools.OnSelectionChanged(c.handleToolTypeChange)
	c.subscribe()
	c.update()
	return c, nil
}

// Close stops background work, closes the sub-dialogs and drops the event
// subscription. Running cloud refreshes are waited for.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	if c.sub != nil {
		c.svc.Events().Unsubscribe(c.sub)
		c.sub = nil
	}
	for _, t := range c.tasks {
		t.Cancel()
	}
	c.cancel()
	c.dialogs.logs.CloseAll()
	c.dialogs.logPane.CloseAll()
	c.closeItems(c.items)
	c.items = nil
	logging.Debug(subsystem, "Controller closed")
}

// OnChanged registers fn to run after the items, the selection or the
// action appearance changed.
func (c *Controller) OnChanged(fn func()) {
	c.changeHandlers = append(c.changeHandlers, fn)
}

func (c *Controller) notify() {
	for _, fn := range c.changeHandlers {
		fn()
	}
}

// Items returns the VM rows in chooser order.
func (c *Controller) Items() []vmitem.Item { return c.items }

// Selection returns the current chooser selection.
func (c *Controller) Selection() Selection { return c.selection }

// Pool returns the action pool the controller drives.
func (c *Controller) Pool() *actionpool.Pool { return c.pool }

// Tools returns the tools model.
func (c *Controller) Tools() *tools.Model { return c.tools }

// Reload reads the local machines at once and starts listing the VMs of
// every cloud profile in the background. Each profile shows a loading row
// until its listing arrives.
func (c *Controller) Reload(ctx context.Context) error {
	machines, err := c.svc.Machines(ctx)
	if err != nil {
		return fmt.Errorf("failed to list machines: %w", err)
	}
	providers, err := c.svc.CloudProviders(ctx)
	if err != nil {
		logging.Error(subsystem, err, "Failed to list cloud providers")
		providers = nil
	}

	old := c.items
	c.items = make([]vmitem.Item, 0, len(machines))
	clear(c.fakes)
	for _, m := range machines {
		c.items = append(c.items, vmitem.NewLocal(c.svc, m))
	}

	var keys []profileKey
	for _, p := range providers {
		for _, prof := range p.Profiles {
			key := profileKey{provider: p.ShortName, profile: prof.Name}
			fake := vmitem.NewCloudFake(vmitem.FakeStateLoading, "")
			c.fakes[fake] = key
			c.items = append(c.items, fake)
			keys = append(keys, key)
		}
	}
	c.closeItems(old)
	c.selection = c.selection.retain(c.items)
	logging.Info(subsystem, "Loaded %d local machines and %d cloud profiles", len(machines), len(keys))

	if len(keys) > 0 {
		c.cloudUpdating++
		go c.listCloudMachines(keys)
	}
	c.update()
	return nil
}

type cloudListing struct {
	key      profileKey
	machines []vmservice.CloudMachine
	err      error
}

// listCloudMachines runs off the UI goroutine.
func (c *Controller) listCloudMachines(keys []profileKey) {
	results := make([]cloudListing, len(keys))
	g, ctx := errgroup.WithContext(c.ctx)
	g.SetLimit(cloudListLimit)
	for i, key := range keys {
		g.Go(func() error {
			ms, err := c.svc.CloudMachines(ctx, key.provider, key.profile)
			results[i] = cloudListing{key: key, machines: ms, err: err}
			return nil
		})
	}
	_ = g.Wait()
	c.loop.Post(func() {
		c.cloudUpdating--
		if c.closed {
			return
		}
		for _, res := range results {
			c.applyCloudListing(res)
		}
		c.update()
	})
}

func (c *Controller) applyCloudListing(res cloudListing) {
	var fake *vmitem.Cloud
	for f, key := range c.fakes {
		if key == res.key {
			fake = f
			break
		}
	}
	if fake == nil {
		return
	}
	switch {
	case res.err != nil:
		logging.Error(subsystem, res.err, "Failed to list machines of %s/%s", res.key.provider, res.key.profile)
		fake.SetFakeState(vmitem.FakeStateDone, vmservice.FormatError(res.err))
		return
	case len(res.machines) == 0:
		fake.SetFakeState(vmitem.FakeStateDone, "")
		return
	}

	rows := make([]vmitem.Item, 0, len(res.machines))
	for _, m := range res.machines {
		if m.Provider == "" {
			m.Provider = res.key.provider
		}
		if m.Profile == "" {
			m.Profile = res.key.profile
		}
		rows = append(rows, c.newCloudItem(m))
	}
	i := slices.Index(c.items, vmitem.Item(fake))
	c.items = slices.Replace(c.items, i, i+1, rows...)
	delete(c.fakes, fake)
}

func (c *Controller) newCloudItem(m vmservice.CloudMachine) *vmitem.Cloud {
	item := vmitem.NewCloudReal(m, c.svc, c.loop,
		vmitem.WithRefreshInterval(c.cloudInterval),
		vmitem.WithSingleFlight(&c.refreshes),
		vmitem.WithErrorHandler(func(it *vmitem.Cloud, err error) {
			logging.Machine(logging.LevelWarn, subsystem, it.Name(), it.ID().String(), err, "Cloud machine is unreachable")
		}),
	)
	item.OnRefreshFinished(func(*vmitem.Cloud) {
		if !c.closed {
			c.update()
		}
	})
	return item
}

func (c *Controller) closeItems(items []vmitem.Item) {
	for _, it := range items {
		if cl, ok := it.(*vmitem.Cloud); ok {
			cl.Close()
		}
	}
}

// Item returns the row of a machine id.
func (c *Controller) Item(id uuid.UUID) vmitem.Item {
	if id == uuid.Nil {
		return nil
	}
	for _, it := range c.items {
		if it.ID() == id {
			return it
		}
	}
	return nil
}

// CloudProfile returns the profile a cloud row belongs to.
func (c *Controller) CloudProfile(it vmitem.Item) (provider, profile string, ok bool) {
	cl, isCloud := it.(*vmitem.Cloud)
	if !isCloud {
		return "", "", false
	}
	if key, fake := c.fakes[cl]; fake {
		return key.provider, key.profile, true
	}
	if h := cl.Handle(); h != nil {
		return h.Provider, h.Profile, true
	}
	return "", "", false
}

// SetSelection applies a chooser selection. Cloud rows leaving the
// selection stop refreshing; rows entering it start periodic refresh.
func (c *Controller) SetSelection(sel Selection) {
	prev := c.selection
	c.selection = sel

	for _, it := range prev.Items {
		if cl, ok := it.(*vmitem.Cloud); ok && cl.Kind() == vmitem.KindCloudReal && !slices.Contains(sel.Items, it) {
			cl.StopAsyncUpdates()
		}
	}
	for _, it := range sel.Items {
		if cl, ok := it.(*vmitem.Cloud); ok && cl.Kind() == vmitem.KindCloudReal && !slices.Contains(prev.Items, it) {
			cl.UpdateInfoAsync(true, true)
		}
	}

	if sel.Global {
		c.tools.SetClass(defs.ToolClassGlobal)
	} else {
		c.tools.SetClass(defs.ToolClassMachine)
	}
	c.update()
}

// SetCurrentStateItemSelected tells whether the snapshot pane has the
// current state row selected.
func (c *Controller) SetCurrentStateItemSelected(selected bool) {
	if c.currentStateSelected == selected {
		return
	}
	c.currentStateSelected = selected
	c.update()
}

// SetShiftHeld records the keyboard modifier consulted when Start is
// triggered without an explicit launch mode.
func (c *Controller) SetShiftHeld(held bool) { c.shiftHeld = held }

// GroupSavingInProgress reports whether group memberships are being
// written.
func (c *Controller) GroupSavingInProgress() bool { return c.groupSaves > 0 }

// CloudUpdateInProgress reports whether cloud profiles are being listed.
func (c *Controller) CloudUpdateInProgress() bool { return c.cloudUpdating > 0 }

func (c *Controller) update() {
	c.updateActionsVisibility()
	c.updateActionsAppearance()
	c.notify()
}
