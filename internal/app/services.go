package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"

	"vboxmanager/internal/actionpool"
	"vboxmanager/internal/desktop"
	"vboxmanager/internal/events"
	"vboxmanager/internal/extradata"
	"vboxmanager/internal/manager"
	"vboxmanager/internal/tools"
	"vboxmanager/internal/uiloop"
	"vboxmanager/internal/vmservice/memory"
	"vboxmanager/pkg/logging"
)

// queueSize is the initial capacity of the UI queue.
const queueSize = 256

// Services holds everything the manager window is built from
type Services struct {
	Fs        afero.Fs
	Bus       *events.DefaultBus
	VM        *memory.Service
	Store     *extradata.Store
	Queue     *uiloop.Queue
	Pool      *actionpool.Pool
	Tools     *tools.Model
	Desktop   *desktop.System
	Clipboard desktop.Clipboard
}

// InitializeServices opens the persisted settings, loads the VM inventory
// and creates the action pool and tools model.
func InitializeServices(ctx context.Context, cfg *Config, fsys afero.Fs) (*Services, error) {
	settings := cfg.Settings
	if settings == nil {
		return nil, errors.New("settings are not loaded")
	}

	bus := events.NewBus()
	inv, err := loadInventory(fsys, settings.Inventory)
	if err != nil {
		return nil, err
	}
	vm, err := memory.New(inv, bus)
	if err != nil {
		return nil, fmt.Errorf("failed to start the VM service: %w", err)
	}

	store, err := extradata.Open(ctx, fsys, settings.ExtraDataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open extra-data: %w", err)
	}

	q := uiloop.NewQueue(queueSize)
	pool := actionpool.New(actionpool.Options{
		Flavor:              actionpool.FlavorManager,
		Mac:                 settings.IsMac(),
		Loop:                q,
		Store:               store,
		UpdateCheckDisabled: !settings.UpdateChecks(),
	})

	tm := tools.New(store)
	tm.Init()

	return &Services{
		Fs:      fsys,
		Bus:     bus,
		VM:      vm,
		Store:   store,
		Queue:   q,
		Pool:    pool,
		Tools:   tm,
		Desktop: desktop.NewSystem(fsys),
	}, nil
}

// loadInventory reads the inventory file. A missing file means an empty
// machine list.
func loadInventory(fsys afero.Fs, path string) (*memory.Inventory, error) {
	if path == "" {
		return nil, nil
	}
	inv, err := memory.LoadInventory(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		logging.Info("Bootstrap", "No inventory at %s, starting without machines", path)
		return nil, nil
	}
	return inv, err
}

// Close stops the UI queue and the event bus. Refreshes finishing after
// this point are dropped.
func (s *Services) Close() {
	s.Queue.Close()
	metrics := s.Bus.Metrics()
	logging.Debug("Bootstrap", "Event bus published %d events, delivered %d", metrics.EventsPublished, metrics.EventsDelivered)
	s.Bus.Close()
}

// NewController builds the manager controller driving ui.
func (s *Services) NewController(cfg *Config, ui manager.UI) (*manager.Controller, error) {
	return manager.New(manager.Options{
		Service:              s.VM,
		Store:                s.Store,
		Loop:                 s.Queue,
		Pool:                 s.Pool,
		Tools:                s.Tools,
		UI:                   ui,
		Clipboard:            s.Clipboard,
		Desktop:              s.Desktop,
		Fs:                   s.Fs,
		CloudRefreshInterval: cfg.Settings.CloudRefreshInterval,
	})
}
