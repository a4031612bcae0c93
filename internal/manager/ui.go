package manager

import (
	"fmt"

	"github.com/google/uuid"

	"vboxmanager/internal/defs"
)

// UI is the presentation layer the controller drives. Every method is
// called on the UI goroutine and must not block; answers arrive through
// the callbacks, also on the UI goroutine.
type UI interface {
	// Confirm asks a yes/no question.
	Confirm(p Prompt, answer func(ok bool))
	// AskText asks for a line of text and calls accept with the answer.
	// Nothing is called when the user cancels.
	AskText(p Prompt, initial string, accept func(string))
	// Open shows a window or wizard the controller does not own.
	Open(r Request)
	// Notify reports a failure or an informational message.
	Notify(n Notice)
}

// Prompt is the content of a question dialog.
type Prompt struct {
	Title   string
	Message string
	// Names lists the VMs the question is about.
	Names []string
	OK    string
}

// RequestKind selects what a Request opens.
type RequestKind int

const (
	RequestWizard RequestKind = iota
	RequestGlobalSettings
	RequestMachineSettings
	RequestSwitchToMachine
	RequestNetworkAccessManager
	RequestCheckForUpdates
	RequestExtensionPackInstall
	RequestSearch
	RequestShowDialog
	RequestCloseDialog
	RequestQuit
)

var requestKindNames = [...]string{
	"Wizard", "GlobalSettings", "MachineSettings", "SwitchToMachine", "NetworkAccessManager",
	"CheckForUpdates", "ExtensionPackInstall", "Search", "ShowDialog", "CloseDialog", "Quit",
}

func (k RequestKind) String() string {
	if k < 0 || int(k) >= len(requestKindNames) {
		return fmt.Sprintf("RequestKind(%d)", int(k))
	}
	return requestKindNames[k]
}

// Request asks the presentation layer to open something.
type Request struct {
	Kind      RequestKind
	Wizard    defs.WizardType
	MachineID uuid.UUID
	// Group is the VM group a new machine is created in.
	Group string
	// Path is the file a wizard or installer starts with.
	Path string
	// Version is the extension pack version parsed from Path.
	Version string
	Dialog  Dialog
	// Done must be called when a wizard or settings window closes. It
	// re-enables the action that opened it.
	Done func()
}

// Notice is a message for the user. Err is nil for informational notices.
type Notice struct {
	Title string
	Err   error
}
