package hostnetwork

import (
	"encoding/binary"
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"

	"vboxmanager/internal/vmservice"
)

// Column identifies a column of the network tree.
type Column int

const (
	ColumnName Column = iota
	ColumnIPv4
	ColumnIPv6
	ColumnDHCP
	ColumnMax
)

var columnTitles = [ColumnMax]string{
	ColumnName: "Name",
	ColumnIPv4: "IPv4 Address/Mask",
	ColumnIPv6: "IPv6 Address/Mask",
	ColumnDHCP: "DHCP Server",
}

// Title returns the header text of c.
func (c Column) Title() string {
	if c < 0 || c >= ColumnMax {
		return ""
	}
	return columnTitles[c]
}

// InterfaceData is the editable part of a host-only interface.
type InterfaceData struct {
	Name          string
	DHCPEnabled   bool
	Address       string
	Mask          string
	IPv6Supported bool
	Address6      string
	PrefixLength6 string
}

// DHCPServerData is the editable part of the interface's DHCP server.
type DHCPServerData struct {
	Enabled      bool
	Address      string
	Mask         string
	LowerAddress string
	UpperAddress string
}

// Data is what the details editor shows for one network.
type Data struct {
	Interface  InterfaceData
	DHCPServer DHCPServerData
}

// Validate checks the addresses the user typed before Apply is offered.
func (d Data) Validate() error {
	if !d.Interface.DHCPEnabled {
		if err := checkIPv4("IPv4 address", d.Interface.Address); err != nil {
			return err
		}
		if err := checkIPv4("IPv4 network mask", d.Interface.Mask); err != nil {
			return err
		}
		if d.Interface.IPv6Supported && d.Interface.Address6 != "" {
			if a, err := netip.ParseAddr(d.Interface.Address6); err != nil || !a.Is6() {
				return fmt.Errorf("invalid IPv6 address %q", d.Interface.Address6)
			}
			if n, err := strconv.Atoi(d.Interface.PrefixLength6); err != nil || n < 0 || n > 128 {
				return fmt.Errorf("invalid IPv6 prefix length %q", d.Interface.PrefixLength6)
			}
		}
	}
	if d.DHCPServer.Enabled {
		for _, f := range []struct{ what, value string }{
			{"DHCP server address", d.DHCPServer.Address},
			{"DHCP server mask", d.DHCPServer.Mask},
			{"DHCP lower address bound", d.DHCPServer.LowerAddress},
			{"DHCP upper address bound", d.DHCPServer.UpperAddress},
		} {
			if err := checkIPv4(f.what, f.value); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkIPv4(what, value string) error {
	if a, err := netip.ParseAddr(value); err != nil || !a.Is4() {
		return fmt.Errorf("invalid %s %q", what, value)
	}
	return nil
}

// Item is one row of the network tree.
type Item struct {
	Data

	ID          uuid.UUID
	NetworkName string
}

func newItem(h vmservice.HostInterface, server vmservice.DHCPServer) *Item {
	return &Item{
		ID:          h.ID,
		NetworkName: h.NetworkName,
		Data: Data{
			Interface: InterfaceData{
				Name:          h.Name,
				DHCPEnabled:   h.DHCPEnabled,
				Address:       h.IPv4Address,
				Mask:          h.IPv4Mask,
				IPv6Supported: h.IPv6Supported,
				Address6:      h.IPv6Address,
				PrefixLength6: strconv.Itoa(h.IPv6PrefixLength),
			},
			DHCPServer: DHCPServerData{
				Enabled:      server.Enabled,
				Address:      server.Address,
				Mask:         server.Mask,
				LowerAddress: server.LowerIP,
				UpperAddress: server.UpperIP,
			},
		},
	}
}

// Name returns the interface name.
func (it *Item) Name() string { return it.Interface.Name }

// Text returns the cell text of column c.
func (it *Item) Text(c Column) string {
	switch c {
	case ColumnName:
		return it.Interface.Name
	case ColumnIPv4:
		if it.Interface.Address == "" {
			return ""
		}
		return fmt.Sprintf("%s/%d", it.Interface.Address, MaskToCIDR(it.Interface.Mask))
	case ColumnIPv6:
		if it.Interface.Address6 == "" || !it.Interface.IPv6Supported {
			return ""
		}
		n, _ := strconv.Atoi(it.Interface.PrefixLength6)
		return fmt.Sprintf("%s/%d", it.Interface.Address6, n)
	case ColumnDHCP:
		return "Enable"
	}
	return ""
}

// DHCPChecked is the check state of the DHCP column.
func (it *Item) DHCPChecked() bool { return it.DHCPServer.Enabled }

// ToolTip describes the interface and its DHCP server.
func (it *Item) ToolTip() string {
	var b strings.Builder
	header := func(k, v string) { fmt.Fprintf(&b, "%s: %s\n", k, v) }
	sub := func(k, v, unset string) {
		if v == "" {
			v = unset
		}
		fmt.Fprintf(&b, "  %s: %s\n", k, v)
	}

	if it.Interface.DHCPEnabled {
		header("Adapter", "Automatically configured")
	} else {
		header("Adapter", "Manually configured")
	}
	sub("IPv4 Address", it.Interface.Address, "Not set")
	sub("IPv4 Network Mask", it.Interface.Mask, "Not set")
	if it.Interface.IPv6Supported {
		sub("IPv6 Address", it.Interface.Address6, "Not set")
		sub("IPv6 Prefix Length", it.Interface.PrefixLength6, "Not set")
	}

	if !it.DHCPServer.Enabled {
		header("DHCP Server", "Disabled")
		return strings.TrimSuffix(b.String(), "\n")
	}
	header("DHCP Server", "Enabled")
	sub("Address", it.DHCPServer.Address, "Not set")
	sub("Network Mask", it.DHCPServer.Mask, "Not set")
	sub("Lower Bound", it.DHCPServer.LowerAddress, "Not set")
	sub("Upper Bound", it.DHCPServer.UpperAddress, "Not set")
	return strings.TrimSuffix(b.String(), "\n")
}

// MaskToCIDR counts the leading one bits of a dotted IPv4 mask. Counting
// stops at the first octet that is not a valid mask octet.
func MaskToCIDR(mask string) int {
	cidr := 0
	for _, part := range strings.Split(mask, ".") {
		n, _ := strconv.Atoi(part)
		switch n {
		case 0x80:
			cidr += 1
		case 0xC0:
			cidr += 2
		case 0xE0:
			cidr += 3
		case 0xF0:
			cidr += 4
		case 0xF8:
			cidr += 5
		case 0xFC:
			cidr += 6
		case 0xFE:
			cidr += 7
		case 0xFF:
			cidr += 8
		default:
			return cidr
		}
	}
	return cidr
}

// unconfigured reports whether the DHCP settings hold no usable plan.
func (d DHCPServerData) unconfigured() bool {
	for _, v := range []string{d.Address, d.Mask, d.LowerAddress, d.UpperAddress} {
		if v == "" || v == "0.0.0.0" {
			return true
		}
	}
	return false
}

// Proposal derives a DHCP address plan from the interface address and
// mask. The server takes the middle of the subnet and leases the half the
// interface address is not in.
func Proposal(address, mask string) (DHCPServerData, error) {
	addr, err := ipv4ToUint(address)
	if err != nil {
		return DHCPServerData{}, err
	}
	direct, err := ipv4ToUint(mask)
	if err != nil {
		return DHCPServerData{}, err
	}
	invert := ^direct
	left := addr & direct
	right := addr & invert

	var server, lower, upper uint32
	if right < invert/2 {
		server = left + invert/2
		lower = left + invert/2 + 1
		upper = left + invert - 1
	} else {
		server = left + 1
		lower = left + 1 + 1
		upper = left + invert/2 - 1
	}
	return DHCPServerData{
		Address:      uintToIPv4(server),
		Mask:         uintToIPv4(direct),
		LowerAddress: uintToIPv4(lower),
		UpperAddress: uintToIPv4(upper),
	}, nil
}

func ipv4ToUint(s string) (uint32, error) {
	a, err := netip.ParseAddr(s)
	if err != nil || !a.Is4() {
		return 0, fmt.Errorf("invalid IPv4 address %q", s)
	}
	b := a.As4()
	return binary.BigEndian.Uint32(b[:]), nil
}

func uintToIPv4(v uint32) string {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return netip.AddrFrom4(b).String()
}

// ColumnWidths splits total cells between the columns. The address and DHCP
// columns get their content width capped at an equal share; the name
// column takes the rest.
func ColumnWidths(items []*Item, total int) [ColumnMax]int {
	var widths [ColumnMax]int
	share := total / int(ColumnMax)
	used := 0
	for c := ColumnIPv4; c < ColumnMax; c++ {
		w := runewidth.StringWidth(c.Title())
		for _, it := range items {
			w = max(w, runewidth.StringWidth(it.Text(c))+columnDecoration(c))
		}
		widths[c] = min(w, share)
		used += widths[c]
	}
	widths[ColumnName] = max(total-used, 0)
	return widths
}

// columnDecoration is the room taken by the check box in the DHCP column.
func columnDecoration(c Column) int {
	if c == ColumnDHCP {
		return 4
	}
	return 0
}
