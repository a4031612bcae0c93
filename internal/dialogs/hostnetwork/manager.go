// Package hostnetwork is the host-only network manager: a tree of host-only
// interfaces with their DHCP servers and a details editor applying
// address changes through the VM service.
package hostnetwork

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"golang.org/x/sync/errgroup"

	"vboxmanager/internal/actionpool"
	"vboxmanager/internal/dialogs"
	"vboxmanager/internal/extradata"
	"vboxmanager/internal/progress"
	"vboxmanager/internal/vmservice"
	"vboxmanager/pkg/logging"
)

const subsystem = "HostNetworkManager"

// ErrNoCurrentItem is returned by operations that need a selected network.
var ErrNoCurrentItem = errors.New("no host network selected")

// Manager holds the network tree and its details editor. It belongs to the
// UI goroutine.
type Manager struct {
	svc   vmservice.Network
	pool  *actionpool.Pool
	store *extradata.Store

	items   []*Item
	current int
	editor  *dialogs.Editor[Data]

	detailsVisible  bool
	detailsHandlers []func(visible bool)
}

// New returns an empty manager. Call Load to read the networks.
func New(svc vmservice.Network, pool *actionpool.Pool, store *extradata.Store) *Manager {
	m := &Manager{
		svc:     svc,
		pool:    pool,
		store:   store,
		current: -1,
		editor: dialogs.NewEditor(
			func(a, b Data) bool { return a == b },
			nil,
			Data.Validate,
		),
	}
	m.loadSettings()
	return m
}

func (m *Manager) loadSettings() {
	expanded := false
	if m.store != nil {
		expanded = m.store.DetailsExpanded(extradata.KeyHostNetworkManagerDetails)
	}
	if a := m.pool.Action(actionpool.NetworkDetails); a != nil {
		a.SetChecked(expanded)
	}
	m.detailsVisible = expanded
}

// Items returns the tree rows.
func (m *Manager) Items() []*Item { return m.items }

// Current returns the selected row, or nil.
func (m *Manager) Current() *Item {
	if m.current < 0 || m.current >= len(m.items) {
		return nil
	}
	return m.items[m.current]
}

// Editor is the details editor bound to the current row.
func (m *Manager) Editor() *dialogs.Editor[Data] { return m.editor }

// DetailsVisible reports whether the details pane is expanded.
func (m *Manager) DetailsVisible() bool { return m.detailsVisible }

// OnDetailsVisibilityChanged registers fn for expand/collapse changes.
func (m *Manager) OnDetailsVisibilityChanged(fn func(visible bool)) {
	m.detailsHandlers = append(m.detailsHandlers, fn)
}

// Load reads the host-only interfaces and their DHCP servers, replacing the
// tree. The first row becomes current.
func (m *Manager) Load(ctx context.Context) error {
	m.items = nil
	m.current = -1

	var (
		hosts   []vmservice.HostInterface
		servers []vmservice.DHCPServer
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		hosts, err = m.svc.HostInterfaces(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		servers, err = m.svc.DHCPServers(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		m.handleCurrentItemChange()
		return fmt.Errorf("cannot acquire host network interfaces: %w", err)
	}

	byNetwork := make(map[string]vmservice.DHCPServer, len(servers))
	for _, s := range servers {
		byNetwork[s.NetworkName] = s
	}

	var errs []error
	for _, h := range hosts {
		if !h.HostOnly {
			continue
		}
		server, ok := byNetwork[h.NetworkName]
		if !ok {
			var err error
			if server, err = m.svc.CreateDHCPServer(ctx, h.NetworkName); err != nil {
				errs = append(errs, fmt.Errorf("cannot create DHCP server for %s: %w", h.NetworkName, err))
			}
		}
		m.items = append(m.items, newItem(h, server))
	}
	logging.Debug(subsystem, "Loaded %d host-only networks", len(m.items))

	if len(m.items) > 0 {
		m.current = 0
	}
	m.handleCurrentItemChange()
	return errors.Join(errs...)
}

// Refresh reloads the tree keeping the selected network when it still
// exists.
func (m *Manager) Refresh(ctx context.Context) error {
	var name string
	if it := m.Current(); it != nil {
		name = it.Name()
	}
	err := m.Load(ctx)
	if name != "" {
		if i := m.indexOf(name); i >= 0 {
			m.SetCurrent(i)
		}
	}
	return err
}

func (m *Manager) indexOf(name string) int {
	return slices.IndexFunc(m.items, func(it *Item) bool { return it.Name() == name })
}

// SetCurrent selects row i. Out of range values clear the selection.
func (m *Manager) SetCurrent(i int) {
	if i < 0 || i >= len(m.items) {
		i = -1
	}
	m.current = i
	m.handleCurrentItemChange()
}

// Reset reverts the details editor to the selected row.
func (m *Manager) Reset() {
	m.handleCurrentItemChange()
}

func (m *Manager) handleCurrentItemChange() {
	it := m.Current()
	if a := m.pool.Action(actionpool.NetworkRemove); a != nil {
		a.SetEnabled(it != nil)
	}
	if a := m.pool.Action(actionpool.NetworkDetails); a != nil {
		a.SetEnabled(it != nil)
	}
	if it != nil {
		m.editor.Load(it.Data)
		return
	}
	m.editor.Clear()
	m.SetDetailsVisible(false)
}

// SetDetailsVisible expands or collapses the details pane and remembers
// the choice.
func (m *Manager) SetDetailsVisible(visible bool) {
	if m.store != nil {
		if err := m.store.SetFlag(extradata.KeyHostNetworkManagerDetails, visible); err != nil {
			logging.Error(subsystem, err, "Failed to save details visibility")
		}
	}
	if a := m.pool.Action(actionpool.NetworkDetails); a != nil {
		a.SetChecked(visible)
	}
	m.detailsVisible = visible
	for _, fn := range m.detailsHandlers {
		fn(visible)
	}
}

// findInterface looks the interface up by name since ids are not stable
// across a service restart.
func (m *Manager) findInterface(ctx context.Context, name string) (vmservice.HostInterface, error) {
	hosts, err := m.svc.HostInterfaces(ctx)
	if err != nil {
		return vmservice.HostInterface{}, fmt.Errorf("cannot find host network interface %s: %w", name, err)
	}
	for _, h := range hosts {
		if h.Name == name {
			return h, nil
		}
	}
	return vmservice.HostInterface{}, fmt.Errorf("cannot find host network interface %s: %w", name, vmservice.ErrNotFound)
}

// dhcpServer finds the server of network, creating it when missing.
func (m *Manager) dhcpServer(ctx context.Context, network string) (vmservice.DHCPServer, error) {
	server, err := m.svc.FindDHCPServer(ctx, network)
	if err == nil {
		return server, nil
	}
	server, err = m.svc.CreateDHCPServer(ctx, network)
	if err != nil {
		return vmservice.DHCPServer{}, fmt.Errorf("cannot create DHCP server for %s: %w", network, err)
	}
	return server, nil
}

// Apply writes the edited details of the current row. The interface is
// switched to dynamic configuration when DHCP is chosen, otherwise its
// static IPv4 and, where supported, IPv6 addresses are set. The DHCP
// server is enabled and configured separately.
func (m *Manager) Apply(ctx context.Context) error {
	it := m.Current()
	if it == nil {
		return ErrNoCurrentItem
	}
	if err := m.editor.Err(); err != nil {
		return err
	}
	oldData := it.Data
	newData := m.editor.Data()

	iface, err := m.findInterface(ctx, oldData.Interface.Name)
	if err != nil {
		return err
	}

	var errs []error
	if err := m.applyInterface(ctx, iface, oldData.Interface, newData.Interface); err != nil {
		errs = append(errs, fmt.Errorf("cannot save host network interface parameters: %w", err))
	} else if err := m.applyDHCPServer(ctx, iface.NetworkName, oldData.DHCPServer, newData.DHCPServer); err != nil {
		errs = append(errs, err)
	}

	if err := m.reloadItem(ctx, it); err != nil {
		errs = append(errs, err)
	}
	m.handleCurrentItemChange()
	return errors.Join(errs...)
}

func (m *Manager) applyInterface(ctx context.Context, iface vmservice.HostInterface, oldData, newData InterfaceData) error {
	if newData.DHCPEnabled {
		if !oldData.DHCPEnabled {
			return m.svc.EnableDynamicIPConfig(ctx, iface.ID)
		}
		return nil
	}
	if oldData.DHCPEnabled || newData.Address != oldData.Address || newData.Mask != oldData.Mask {
		if err := m.svc.EnableStaticIPConfig(ctx, iface.ID, newData.Address, newData.Mask); err != nil {
			return err
		}
	}
	if newData.IPv6Supported &&
		(oldData.DHCPEnabled || newData.Address6 != oldData.Address6 || newData.PrefixLength6 != oldData.PrefixLength6) {
		prefix := 0
		if newData.PrefixLength6 != "" {
			n, err := strconv.Atoi(newData.PrefixLength6)
			if err != nil {
				return fmt.Errorf("invalid IPv6 prefix length %q: %w", newData.PrefixLength6, err)
			}
			prefix = n
		}
		return m.svc.EnableStaticIPConfigV6(ctx, iface.ID, newData.Address6, prefix)
	}
	return nil
}

func (m *Manager) applyDHCPServer(ctx context.Context, network string, oldData, newData DHCPServerData) error {
	if _, err := m.dhcpServer(ctx, network); err != nil {
		return err
	}
	if newData.Enabled != oldData.Enabled {
		if err := m.svc.SetDHCPServerEnabled(ctx, network, newData.Enabled); err != nil {
			return fmt.Errorf("cannot save DHCP server parameters: %w", err)
		}
	}
	if newData.Enabled &&
		(newData.Address != oldData.Address || newData.Mask != oldData.Mask ||
			newData.LowerAddress != oldData.LowerAddress || newData.UpperAddress != oldData.UpperAddress) {
		if err := m.svc.SetDHCPServerConfiguration(ctx, network,
			newData.Address, newData.Mask, newData.LowerAddress, newData.UpperAddress); err != nil {
			return fmt.Errorf("cannot save DHCP server parameters: %w", err)
		}
	}
	return nil
}

// reloadItem refreshes it in place from the service.
func (m *Manager) reloadItem(ctx context.Context, it *Item) error {
	iface, err := m.findInterface(ctx, it.Name())
	if err != nil {
		return err
	}
	server, err := m.dhcpServer(ctx, iface.NetworkName)
	*it = *newItem(iface, server)
	return err
}

// SetDHCPChecked handles a click on the DHCP column of row i. Enabling a
// server that has no usable address plan configures one derived from the
// interface address.
func (m *Manager) SetDHCPChecked(ctx context.Context, i int, checked bool) error {
	if i < 0 || i >= len(m.items) {
		return ErrNoCurrentItem
	}
	it := m.items[i]
	oldData := it.Data
	if oldData.DHCPServer.Enabled == checked {
		return nil
	}

	iface, err := m.findInterface(ctx, oldData.Interface.Name)
	if err != nil {
		return err
	}
	if _, err := m.dhcpServer(ctx, iface.NetworkName); err != nil {
		return err
	}

	var errs []error
	if err := m.svc.SetDHCPServerEnabled(ctx, iface.NetworkName, !oldData.DHCPServer.Enabled); err != nil {
		errs = append(errs, fmt.Errorf("cannot save DHCP server parameters: %w", err))
	} else if !oldData.DHCPServer.Enabled && oldData.DHCPServer.unconfigured() {
		p, err := Proposal(oldData.Interface.Address, oldData.Interface.Mask)
		if err == nil {
			err = m.svc.SetDHCPServerConfiguration(ctx, iface.NetworkName, p.Address, p.Mask, p.LowerAddress, p.UpperAddress)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("cannot save DHCP server parameters: %w", err))
		}
	}

	if err := m.reloadItem(ctx, it); err != nil {
		errs = append(errs, err)
	}
	m.handleCurrentItemChange()
	return errors.Join(errs...)
}

// Create adds a host-only interface with a DHCP server and selects it.
func (m *Manager) Create(ctx context.Context) error {
	var iface vmservice.HostInterface
	err := progress.Run(ctx, "Adding network ...", func(ctx context.Context, report progress.Reporter) error {
		var err error
		iface, err = m.svc.CreateHostOnlyInterface(ctx)
		return err
	})
	if err != nil {
		if progress.IsCanceled(err) {
			return err
		}
		return fmt.Errorf("cannot create host network interface: %w", err)
	}

	server, serverErr := m.dhcpServer(ctx, iface.NetworkName)
	m.items = append(m.items, newItem(iface, server))
	m.SetCurrent(len(m.items) - 1)
	logging.Info(subsystem, "Created host network %s", iface.Name)
	return serverErr
}

// Remove deletes the current interface and its DHCP server. The caller
// asks the user for confirmation first.
func (m *Manager) Remove(ctx context.Context) error {
	it := m.Current()
	if it == nil {
		return ErrNoCurrentItem
	}
	name := it.Name()

	iface, err := m.findInterface(ctx, name)
	if err != nil {
		return err
	}

	var errs []error
	if _, err := m.svc.FindDHCPServer(ctx, iface.NetworkName); err == nil {
		if err := m.svc.RemoveDHCPServer(ctx, iface.NetworkName); err != nil {
			errs = append(errs, fmt.Errorf("cannot remove DHCP server of %s: %w", name, err))
		}
	}

	err = progress.Run(ctx, "Removing network ...", func(ctx context.Context, report progress.Reporter) error {
		return m.svc.RemoveHostOnlyInterface(ctx, iface.ID)
	})
	if err != nil {
		if !progress.IsCanceled(err) {
			err = fmt.Errorf("cannot remove host network interface %s: %w", name, err)
		}
		return errors.Join(append(errs, err)...)
	}

	m.items = slices.Delete(m.items, m.current, m.current+1)
	m.SetCurrent(min(m.current, len(m.items)-1))
	logging.Info(subsystem, "Removed host network %s", name)
	return errors.Join(errs...)
}
