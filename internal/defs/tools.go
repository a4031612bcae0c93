package defs

// ToolClass groups tools by what they operate on.
type ToolClass int

const (
	ToolClassInvalid ToolClass = iota
	ToolClassGlobal
	ToolClassMachine
)

func (c ToolClass) String() string {
	switch c {
	case ToolClassGlobal:
		return "Global"
	case ToolClassMachine:
		return "Machine"
	default:
		return "Invalid"
	}
}

// ToolType enumerates the panes the tools list can switch to.
type ToolType int

const (
	ToolTypeInvalid ToolType = iota
	// Global tools.
	ToolTypeWelcome
	ToolTypeMedia
	ToolTypeNetwork
	ToolTypeCloud
	ToolTypeResources
	// Machine tools.
	ToolTypeDetails
	ToolTypeSnapshots
	ToolTypeLogs
	ToolTypePerformance
)

var toolTypeNames = [...]string{"Invalid", "Welcome", "Media", "Network", "Cloud", "Resources", "Details", "Snapshots", "Logs", "Performance"}

func (t ToolType) String() string {
	if t < 0 || int(t) >= len(toolTypeNames) {
		return "Invalid"
	}
	return toolTypeNames[t]
}

// Class reports which tool class t belongs to.
func (t ToolType) Class() ToolClass {
	switch t {
	case ToolTypeWelcome, ToolTypeMedia, ToolTypeNetwork, ToolTypeCloud, ToolTypeResources:
		return ToolClassGlobal
	case ToolTypeDetails, ToolTypeSnapshots, ToolTypeLogs, ToolTypePerformance:
		return ToolClassMachine
	default:
		return ToolClassInvalid
	}
}

// VMResourceMonitorColumn enumerates columns of the resource monitor table.
type VMResourceMonitorColumn int

const (
	VMResourceMonitorColumnInvalid VMResourceMonitorColumn = iota
	VMResourceMonitorColumnName
	VMResourceMonitorColumnCPUGuestLoad
	VMResourceMonitorColumnCPUVMMLoad
	VMResourceMonitorColumnRAMUsedAndTotal
	VMResourceMonitorColumnRAMUsedPercentage
	VMResourceMonitorColumnNetworkUpRate
	VMResourceMonitorColumnNetworkDownRate
	VMResourceMonitorColumnNetworkUpTotal
	VMResourceMonitorColumnNetworkDownTotal
	VMResourceMonitorColumnDiskIOReadRate
	VMResourceMonitorColumnDiskIOWriteRate
	VMResourceMonitorColumnDiskIOReadTotal
	VMResourceMonitorColumnDiskIOWriteTotal
	VMResourceMonitorColumnVMExits
)
