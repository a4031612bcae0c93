package manager

import (
	"slices"

	"vboxmanager/internal/events"
	"vboxmanager/internal/vmitem"
	"vboxmanager/pkg/logging"
)

// subscribe listens for the service notifications that change VM rows.
// The bus calls handlers on the publisher's goroutine, so every event is
// handed over to the UI loop.
func (c *Controller) subscribe() {
	filter := events.FilterByType(
		events.TypeMachineStateChange,
		events.TypeMachineDataChange,
		events.TypeMachineRegistered,
		events.TypeSessionStateChange,
		events.TypeSnapshotTaken,
		events.TypeSnapshotDeleted,
		events.TypeSnapshotChanged,
		events.TypeSnapshotRestored,
		events.TypeCloudMachineState,
		events.TypeMediumEnumerated,
	)
	c.sub = c.svc.Events().Subscribe(filter, func(e events.Event) {
		c.loop.Post(func() { c.handleEvent(e) })
	})
}

func (c *Controller) handleEvent(e events.Event) {
	if c.closed {
		return
	}
	logging.Debug(subsystem, "Handling %s", e)

	switch e.Type {
	case events.TypeMachineRegistered:
		if e.Registered {
			c.addMachine(e)
		} else {
			c.dropMachine(e)
		}
	case events.TypeCloudMachineState:
		if cl, ok := c.Item(e.MachineID).(*vmitem.Cloud); ok {
			cl.UpdateInfoAsync(false, false)
		}
	case events.TypeMediumEnumerated:
		for _, it := range c.items {
			if it.Kind() == vmitem.KindLocal && !it.Accessible() {
				it.Recache(c.ctx)
			}
		}
	default:
		if it := c.Item(e.MachineID); it != nil {
			it.Recache(c.ctx)
		}
	}
	c.update()
}

func (c *Controller) addMachine(e events.Event) {
	if c.Item(e.MachineID) != nil {
		return
	}
	m, err := c.svc.Machine(c.ctx, e.MachineID)
	if err != nil {
		logging.Error(subsystem, err, "Failed to read registered machine %s", e.MachineID)
		return
	}
	// Local rows stay ahead of the cloud rows.
	i := slices.IndexFunc(c.items, func(it vmitem.Item) bool { return it.Kind() != vmitem.KindLocal })
	if i < 0 {
		i = len(c.items)
	}
	c.items = slices.Insert(c.items, i, vmitem.Item(vmitem.NewLocal(c.svc, m)))
	logging.Info(subsystem, "Machine %s registered", m.Name)
}

func (c *Controller) dropMachine(e events.Event) {
	it, ok := c.Item(e.MachineID).(*vmitem.Local)
	if !ok {
		return
	}
	c.items = slices.DeleteFunc(c.items, func(other vmitem.Item) bool { return other == vmitem.Item(it) })
	c.selection = c.selection.retain(c.items)
	if _, open := c.dialogs.logs.Viewer(it.HardwareUUID()); open {
		c.CloseLogViewer(it.HardwareUUID())
	}
	logging.Machine(logging.LevelInfo, subsystem, it.Name(), it.ID().String(), nil, "Machine unregistered")
}
