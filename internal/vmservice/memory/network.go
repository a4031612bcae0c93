package memory

import (
	"context"
	"fmt"
	"net/netip"

	"github.com/google/uuid"

	"vboxmanager/internal/events"
	"vboxmanager/internal/vmservice"
)

func (s *Service) HostInterfaces(ctx context.Context) ([]vmservice.HostInterface, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure("HostInterfaces"); err != nil {
		return nil, err
	}
	return append([]vmservice.HostInterface(nil), s.hosts...), nil
}

// host must be called with s.mu held.
func (s *Service) host(member string, id uuid.UUID) (*vmservice.HostInterface, error) {
	for i := range s.hosts {
		if s.hosts[i].ID == id {
			return &s.hosts[i], nil
		}
	}
	return nil, notFound(member, "host network interface", id)
}

func (s *Service) CreateHostOnlyInterface(ctx context.Context) (vmservice.HostInterface, error) {
	if err := ctx.Err(); err != nil {
		return vmservice.HostInterface{}, err
	}
	s.mu.Lock()
	if err := s.takeFailure("CreateHostOnlyNetworkInterface"); err != nil {
		s.mu.Unlock()
		return vmservice.HostInterface{}, err
	}
	name := fmt.Sprintf("vboxnet%d", s.nextIndex)
	h := vmservice.HostInterface{
		ID:          uuid.New(),
		Name:        name,
		NetworkName: networkName(name),
		HostOnly:    true,
		IPv4Address: fmt.Sprintf("192.168.%d.1", 56+s.nextIndex),
		IPv4Mask:    "255.255.255.0",
	}
	s.nextIndex++
	s.hosts = append(s.hosts, h)
	s.mu.Unlock()

	s.publishNetwork(h.Name)
	return h, nil
}

func (s *Service) RemoveHostOnlyInterface(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	for i, h := range s.hosts {
		if h.ID != id {
			continue
		}
		if !h.HostOnly {
			s.mu.Unlock()
			return &vmservice.Error{
				Component:  "HostWrap",
				Interface:  "IHost",
				Member:     "RemoveHostOnlyNetworkInterface",
				ResultCode: vmservice.ResultInvalidArg,
				Message:    fmt.Sprintf("Host network interface '%s' is not host-only", h.Name),
			}
		}
		s.hosts = append(s.hosts[:i], s.hosts[i+1:]...)
		s.mu.Unlock()
		s.publishNetwork(h.Name)
		return nil
	}
	s.mu.Unlock()
	return notFound("RemoveHostOnlyNetworkInterface", "host network interface", id)
}

func (s *Service) updateHost(ctx context.Context, member string, id uuid.UUID, fn func(h *vmservice.HostInterface) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	if err := s.takeFailure(member); err != nil {
		s.mu.Unlock()
		return err
	}
	h, err := s.host(member, id)
	if err == nil {
		err = fn(h)
	}
	var name string
	if h != nil {
		name = h.Name
	}
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.publishNetwork(name)
	return nil
}

func invalidAddress(member, addr string) error {
	return &vmservice.Error{
		Component:  "HostNetworkInterfaceWrap",
		Interface:  "IHostNetworkInterface",
		Member:     member,
		ResultCode: vmservice.ResultInvalidArg,
		Message:    fmt.Sprintf("Invalid address '%s'", addr),
	}
}

func (s *Service) EnableDynamicIPConfig(ctx context.Context, id uuid.UUID) error {
	return s.updateHost(ctx, "EnableDynamicIPConfig", id, func(h *vmservice.HostInterface) error {
		h.DHCPEnabled = true
		return nil
	})
}

func (s *Service) EnableStaticIPConfig(ctx context.Context, id uuid.UUID, address, mask string) error {
	return s.updateHost(ctx, "EnableStaticIPConfig", id, func(h *vmservice.HostInterface) error {
		if a, err := netip.ParseAddr(address); err != nil || !a.Is4() {
			return invalidAddress("EnableStaticIPConfig", address)
		}
		if m, err := netip.ParseAddr(mask); err != nil || !m.Is4() {
			return invalidAddress("EnableStaticIPConfig", mask)
		}
		h.DHCPEnabled = false
		h.IPv4Address = address
		h.IPv4Mask = mask
		return nil
	})
}

func (s *Service) EnableStaticIPConfigV6(ctx context.Context, id uuid.UUID, address string, prefixLength int) error {
	return s.updateHost(ctx, "EnableStaticIPConfigV6", id, func(h *vmservice.HostInterface) error {
		if !h.IPv6Supported {
			return &vmservice.Error{
				Component:  "HostNetworkInterfaceWrap",
				Interface:  "IHostNetworkInterface",
				Member:     "EnableStaticIPConfigV6",
				ResultCode: vmservice.ResultInvalidState,
				Message:    "IPv6 is not supported on this interface",
			}
		}
		if a, err := netip.ParseAddr(address); err != nil || !a.Is6() {
			return invalidAddress("EnableStaticIPConfigV6", address)
		}
		h.DHCPEnabled = false
		h.IPv6Address = address
		h.IPv6PrefixLength = prefixLength
		return nil
	})
}

func (s *Service) DHCPServers(ctx context.Context) ([]vmservice.DHCPServer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure("DHCPServers"); err != nil {
		return nil, err
	}
	out := make([]vmservice.DHCPServer, 0, len(s.dhcp))
	for _, h := range s.hosts {
		if d, ok := s.dhcp[h.NetworkName]; ok {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (s *Service) FindDHCPServer(ctx context.Context, network string) (vmservice.DHCPServer, error) {
	if err := ctx.Err(); err != nil {
		return vmservice.DHCPServer{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.dhcp[network]
	if !ok {
		return vmservice.DHCPServer{}, notFound("FindDHCPServerByNetworkName", "DHCP server", network)
	}
	return *d, nil
}

func (s *Service) CreateDHCPServer(ctx context.Context, network string) (vmservice.DHCPServer, error) {
	if err := ctx.Err(); err != nil {
		return vmservice.DHCPServer{}, err
	}
	s.mu.Lock()
	if err := s.takeFailure("CreateDHCPServer"); err != nil {
		s.mu.Unlock()
		return vmservice.DHCPServer{}, err
	}
	if _, ok := s.dhcp[network]; ok {
		s.mu.Unlock()
		return vmservice.DHCPServer{}, &vmservice.Error{
			Component:  "VirtualBoxWrap",
			Interface:  "IVirtualBox",
			Member:     "CreateDHCPServer",
			ResultCode: vmservice.ResultInvalidArg,
			Message:    fmt.Sprintf("A DHCP server already exists for network '%s'", network),
		}
	}
	d := &vmservice.DHCPServer{NetworkName: network}
	s.dhcp[network] = d
	s.mu.Unlock()

	s.publishDHCP(network)
	return *d, nil
}

func (s *Service) RemoveDHCPServer(ctx context.Context, network string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	if err := s.takeFailure("RemoveDHCPServer"); err != nil {
		s.mu.Unlock()
		return err
	}
	if _, ok := s.dhcp[network]; !ok {
		s.mu.Unlock()
		return notFound("RemoveDHCPServer", "DHCP server", network)
	}
	delete(s.dhcp, network)
	s.mu.Unlock()

	s.publishDHCP(network)
	return nil
}

func (s *Service) updateDHCP(ctx context.Context, member, network string, fn func(d *vmservice.DHCPServer) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	if err := s.takeFailure(member); err != nil {
		s.mu.Unlock()
		return err
	}
	d, ok := s.dhcp[network]
	if !ok {
		s.mu.Unlock()
		return notFound(member, "DHCP server", network)
	}
	if err := fn(d); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	s.publishDHCP(network)
	return nil
}

func (s *Service) SetDHCPServerEnabled(ctx context.Context, network string, enabled bool) error {
	return s.updateDHCP(ctx, "SetEnabled", network, func(d *vmservice.DHCPServer) error {
		d.Enabled = enabled
		return nil
	})
}

func (s *Service) SetDHCPServerConfiguration(ctx context.Context, network, address, mask, lower, upper string) error {
	return s.updateDHCP(ctx, "SetConfiguration", network, func(d *vmservice.DHCPServer) error {
		for _, a := range []string{address, mask, lower, upper} {
			if ip, err := netip.ParseAddr(a); err != nil || !ip.Is4() {
				return invalidAddress("SetConfiguration", a)
			}
		}
		d.Address, d.Mask, d.LowerIP, d.UpperIP = address, mask, lower, upper
		return nil
	})
}

func (s *Service) publishNetwork(name string) {
	e := events.New(events.TypeHostNetworkChange, source)
	e.Name = name
	s.bus.Publish(e)
}

func (s *Service) publishDHCP(network string) {
	e := events.New(events.TypeDHCPServerChange, source)
	e.Name = network
	s.bus.Publish(e)
}
