package app

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"vboxmanager/internal/manager"
	"vboxmanager/internal/tui/controller"
	"vboxmanager/internal/tui/design"
	"vboxmanager/internal/tui/model"
	"vboxmanager/internal/vmitem"
	"vboxmanager/pkg/logging"
)

// settleTimeout bounds how long CLI mode waits for background work.
const settleTimeout = 30 * time.Second

// runCLIMode loads the machine list without a window, handles the URLs
// given on the command line and prints the list to w.
func runCLIMode(ctx context.Context, cfg *Config, services *Services, w io.Writer) error {
	logging.Info("CLI", "Running in no-TUI mode.")

	ui := &headlessUI{}
	c, err := services.NewController(cfg, ui)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.Reload(ctx); err != nil {
		return fmt.Errorf("failed to load machines: %w", err)
	}
	c.QueueURLs(cfg.URLs...)
	c.Shown()
	settled := services.Queue.RunUntil(func() bool {
		return len(c.Tasks()) == 0 && !c.CloudUpdateInProgress() && len(c.PendingURLs()) == 0
	}, settleTimeout)
	if !settled {
		logging.Warn("CLI", "Background work did not finish within %s", settleTimeout)
	}

	if err := WriteMachineList(w, c); err != nil {
		return err
	}
	return ui.err
}

// WriteMachineList prints the chooser items of c as a table.
func WriteMachineList(w io.Writer, c *manager.Controller) error {
	items := c.Items()
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No virtual machines.")
		return err
	}
	now := time.Now()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tSTATE\tGROUP\tOS TYPE\tSINCE")
	for _, it := range items {
		group, since := "", ""
		switch v := it.(type) {
		case *vmitem.Local:
			if gs := v.Groups(); len(gs) > 0 {
				group = gs[0]
			}
			if it.Accessible() {
				since = v.LastStateChangeText(now)
			}
		case *vmitem.Cloud:
			if provider, profile, ok := c.CloudProfile(v); ok {
				group = provider + "/" + profile
			}
		}
		if group == "" {
			group = "/"
		}
		state := it.StateName()
		if !it.Accessible() {
			state = "Inaccessible"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", it.Name(), state, group, it.OSTypeID(), since)
	}
	return tw.Flush()
}

// headlessUI answers the controller without a window. Questions are
// declined and windows cannot be opened; failures are logged and the
// first one is returned from the run.
type headlessUI struct {
	err error
}

func (u *headlessUI) Confirm(p manager.Prompt, answer func(ok bool)) {
	logging.Info("CLI", "Declining %q", p.Title)
	answer(false)
}

func (u *headlessUI) AskText(p manager.Prompt, _ string, _ func(string)) {
	logging.Info("CLI", "Skipping input %q", p.Title)
}

func (u *headlessUI) Open(r manager.Request) {
	logging.Info("CLI", "Cannot open %s without a window", r.Kind)
	if r.Done != nil {
		r.Done()
	}
}

func (u *headlessUI) Notify(n manager.Notice) {
	if n.Err == nil {
		logging.Info("CLI", "%s", n.Title)
		return
	}
	logging.Error("CLI", n.Err, "%s", n.Title)
	if u.err == nil {
		u.err = fmt.Errorf("%s: %w", n.Title, n.Err)
	}
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, cfg *Config, services *Services) error {
	logging.Info("CLI", "Starting TUI mode...")

	// Initialize design system for TUI (dark mode by default)
	design.Initialize(true)

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(cfg.LogLevel())
	defer logging.CloseTUIChannel()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	changed := make(chan struct{}, 1)
	if err := services.Store.Watch(ctx, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}); err != nil {
		logging.Warn("TUI-Lifecycle", "Not watching extra-data for changes: %v", err)
	}

	m := model.InitializeModel(model.Options{
		Queue:            services.Queue,
		Store:            services.Store,
		LogChannel:       logChan,
		ExtraDataChanged: changed,
		Version:          cfg.Version,
	})
	c, err := services.NewController(cfg, m)
	if err != nil {
		logging.Error("TUI-Lifecycle", err, "Error creating the manager")
		return err
	}
	if err := c.Reload(ctx); err != nil {
		c.Close()
		return fmt.Errorf("failed to load machines: %w", err)
	}
	c.QueueURLs(cfg.URLs...)
	m.Attach(c)

	// Run the TUI until user exits
	p := controller.NewProgram(m)
	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		c.Close()
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")

	return nil
}
