// Package vmitem provides the UI-side records for local and cloud virtual
// machines. Items cache what the views need and refresh it on request.
//
// Items are owned by the UI goroutine. Only CloudReal does background work,
// and it hands results back through a uiloop.Poster.
package vmitem

import (
	"context"
	"image"

	"github.com/google/uuid"

	"vboxmanager/internal/defs"
)

// Kind distinguishes the item variants.
type Kind int

const (
	KindLocal Kind = iota
	KindCloudFake
	KindCloudReal
)

func (k Kind) String() string {
	switch k {
	case KindLocal:
		return "Local"
	case KindCloudFake:
		return "CloudFake"
	case KindCloudReal:
		return "CloudReal"
	default:
		return "Unknown"
	}
}

// FakeState is the placeholder state of a cloud row whose profile is
// still being listed.
type FakeState int

const (
	FakeStateNotApplicable FakeState = iota
	FakeStateLoading
	FakeStateDone
)

// PixmapSize is the logical size of item pixmaps.
var PixmapSize = image.Pt(32, 32)

// Item is the uniform view of one virtual machine.
type Item interface {
	Kind() Kind
	ID() uuid.UUID
	Name() string
	Accessible() bool
	AccessError() string
	OSTypeID() string
	StateName() string
	StateIcon() string
	AccessLevel() defs.ConfigurationAccessLevel
	HasDetails() bool
	Pixmap() string
	PixmapSize() image.Point
	ToolTip() string

	// Recache refreshes the cached attributes. Calling it twice with no
	// intervening service change yields identical attributes.
	Recache(ctx context.Context)
	RecachePixmap()

	IsEditable() bool
	IsRemovable() bool
	IsSaved() bool
	IsPoweredOff() bool
	IsStarted() bool
	IsRunning() bool
	IsRunningHeadless() bool
	IsPaused() bool
	IsStuck() bool
	CanBeSwitchedTo() bool
}

// attrs holds the attributes shared by every variant.
type attrs struct {
	id          uuid.UUID
	name        string
	accessible  bool
	accessError string
	osTypeID    string
	stateName   string
	stateIcon   string
	accessLevel defs.ConfigurationAccessLevel
	hasDetails  bool
	pixmap      string
	toolTip     string
}

func (a *attrs) ID() uuid.UUID                              { return a.id }
func (a *attrs) Name() string                               { return a.name }
func (a *attrs) Accessible() bool                           { return a.accessible }
func (a *attrs) AccessError() string                        { return a.accessError }
func (a *attrs) OSTypeID() string                           { return a.osTypeID }
func (a *attrs) StateName() string                          { return a.stateName }
func (a *attrs) StateIcon() string                          { return a.stateIcon }
func (a *attrs) AccessLevel() defs.ConfigurationAccessLevel { return a.accessLevel }
func (a *attrs) HasDetails() bool                           { return a.hasDetails }
func (a *attrs) Pixmap() string                             { return a.pixmap }
func (a *attrs) PixmapSize() image.Point                    { return PixmapSize }
func (a *attrs) ToolTip() string                            { return a.toolTip }

const (
	osTypeOther  = "Other"
	pixmapCloud  = "Cloud"
	iconLoading  = ":/state_loading_16px.png"
	iconNew      = ":/vm_new_16px.png"
	iconAborted  = ":/state_aborted_16px.png"
	inaccessible = "Inaccessible"
)

// osPixmap names the OS-type pixmap resource.
func osPixmap(osTypeID string) string {
	if osTypeID == "" {
		osTypeID = osTypeOther
	}
	return "os_" + osTypeID
}

// Locals filters items down to the local variant.
func Locals(items []Item) []*Local {
	var out []*Local
	for _, it := range items {
		if l, ok := it.(*Local); ok {
			out = append(out, l)
		}
	}
	return out
}

// AllLocal reports whether every item is local. It is true for an empty
// list.
func AllLocal(items []Item) bool {
	for _, it := range items {
		if it.Kind() != KindLocal {
			return false
		}
	}
	return true
}
