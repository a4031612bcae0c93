package converter

import (
	"fmt"
	"regexp"
	"strconv"

	"vboxmanager/internal/defs"
	"vboxmanager/pkg/logging"
)

// BusLimits reports the per-bus maxima the hypervisor supports.
type BusLimits interface {
	MaxPortCountForStorageBus(bus defs.StorageBus) int
	MaxDevicesPerPortForStorageBus(bus defs.StorageBus) int
}

type slotTemplate struct {
	bus    defs.StorageBus
	format string
	re     *regexp.Regexp
}

func idePattern(label string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(label))
}

func portPattern(prefix string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(prefix) + `(\d+)`)
}

// slotTemplates is ordered; the index of the first match selects the family.
var slotTemplates = []slotTemplate{
	{bus: defs.StorageBusIDE, format: "IDE Primary Master", re: idePattern("IDE Primary Master")},
	{bus: defs.StorageBusIDE, format: "IDE Primary Slave", re: idePattern("IDE Primary Slave")},
	{bus: defs.StorageBusIDE, format: "IDE Secondary Master", re: idePattern("IDE Secondary Master")},
	{bus: defs.StorageBusIDE, format: "IDE Secondary Slave", re: idePattern("IDE Secondary Slave")},
	{bus: defs.StorageBusSATA, format: "SATA Port %d", re: portPattern("SATA Port ")},
	{bus: defs.StorageBusSCSI, format: "SCSI Port %d", re: portPattern("SCSI Port ")},
	{bus: defs.StorageBusSAS, format: "SAS Port %d", re: portPattern("SAS Port ")},
	{bus: defs.StorageBusFloppy, format: "Floppy Device %d", re: portPattern("Floppy Device ")},
	{bus: defs.StorageBusUSB, format: "USB Port %d", re: portPattern("USB Port ")},
	{bus: defs.StorageBusPCIe, format: "NVMe Port %d", re: portPattern("NVMe Port ")},
	{bus: defs.StorageBusVirtioSCSI, format: "virtio-scsi Port %d", re: portPattern("virtio-scsi Port ")},
}

const ideTemplateCount = 4

// StorageSlots converts storage attachment points to and from their
// human-readable labels.
type StorageSlots struct {
	limits BusLimits
}

// NewStorageSlots returns a codec that validates against limits.
func NewStorageSlots(limits BusLimits) *StorageSlots {
	registerType[defs.StorageSlot]()
	return &StorageSlots{limits: limits}
}

// ToString formats slot, or returns "" when it is out of range for its bus.
func (s *StorageSlots) ToString(slot defs.StorageSlot) string {
	switch slot.Bus {
	case defs.StorageBusIDE:
		maxPort := s.limits.MaxPortCountForStorageBus(slot.Bus)
		maxDevice := s.limits.MaxDevicesPerPortForStorageBus(slot.Bus)
		if slot.Port < 0 || slot.Port > maxPort {
			logging.Warn(subsystem, "No text for bus=%v & port=%d", slot.Bus, slot.Port)
			return ""
		}
		if slot.Device < 0 || slot.Device > maxDevice {
			logging.Warn(subsystem, "No text for bus=%v & port=%d & device=%d", slot.Bus, slot.Port, slot.Device)
			return ""
		}
		if slot.Port > 1 || slot.Device > 1 {
			return ""
		}
		return slotTemplates[slot.Port*2+slot.Device].format
	case defs.StorageBusFloppy:
		maxDevice := s.limits.MaxDevicesPerPortForStorageBus(slot.Bus)
		if slot.Port != 0 {
			logging.Warn(subsystem, "No text for bus=%v & port=%d", slot.Bus, slot.Port)
			return ""
		}
		if slot.Device < 0 || slot.Device > maxDevice {
			logging.Warn(subsystem, "No text for bus=%v & port=%d & device=%d", slot.Bus, slot.Port, slot.Device)
			return ""
		}
		return fmt.Sprintf(templateFor(slot.Bus).format, slot.Device)
	case defs.StorageBusSATA, defs.StorageBusSCSI, defs.StorageBusSAS,
		defs.StorageBusUSB, defs.StorageBusPCIe, defs.StorageBusVirtioSCSI:
		maxPort := s.limits.MaxPortCountForStorageBus(slot.Bus)
		if slot.Port < 0 || slot.Port > maxPort {
			logging.Warn(subsystem, "No text for bus=%v & port=%d", slot.Bus, slot.Port)
			return ""
		}
		if slot.Device != 0 {
			logging.Warn(subsystem, "No text for bus=%v & port=%d & device=%d", slot.Bus, slot.Port, slot.Device)
			return ""
		}
		return fmt.Sprintf(templateFor(slot.Bus).format, slot.Port)
	}
	logging.Warn(subsystem, "No text for bus=%v & port=%d & device=%d", slot.Bus, slot.Port, slot.Device)
	return ""
}

// FromString parses a label produced by ToString. Unrecognized labels
// yield a slot on the null bus.
func (s *StorageSlots) FromString(label string) defs.StorageSlot {
	index := -1
	var match []string
	for i, t := range slotTemplates {
		if m := t.re.FindStringSubmatch(label); m != nil {
			index, match = i, m
			break
		}
	}
	if index < 0 {
		logging.Warn(subsystem, "No storage bus for text='%s'", label)
		return defs.StorageSlot{}
	}

	result := defs.StorageSlot{Bus: slotTemplates[index].bus}
	maxPort := s.limits.MaxPortCountForStorageBus(result.Bus)
	if index < ideTemplateCount {
		maxDevice := s.limits.MaxDevicesPerPortForStorageBus(result.Bus)
		if maxPort <= 0 {
			logging.Warn(subsystem, "No storage port for text='%s'", label)
			return result
		}
		// NOTE: the template index is split by the port count, not the
		// device count. Correct only while both IDE maxima are 2.
		port, device := index/maxPort, index%maxPort
		if port > maxPort {
			logging.Warn(subsystem, "No storage port for text='%s'", label)
			return result
		}
		if device > maxDevice {
			logging.Warn(subsystem, "No storage device for text='%s'", label)
			return result
		}
		result.Port, result.Device = port, device
		return result
	}

	port, err := strconv.Atoi(match[1])
	if err != nil || port > maxPort {
		logging.Warn(subsystem, "No storage port for text='%s'", label)
		return result
	}
	result.Port = port
	return result
}

func templateFor(bus defs.StorageBus) slotTemplate {
	for _, t := range slotTemplates[ideTemplateCount:] {
		if t.bus == bus {
			return t
		}
	}
	return slotTemplate{}
}
