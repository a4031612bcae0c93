package logviewer

import (
	"context"
	"slices"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// Registry owns the open log windows, at most one per hardware UUID.
type Registry struct {
	src Source
	fs  afero.Fs

	viewers map[uuid.UUID]*Viewer
	order   []uuid.UUID
}

// NewRegistry returns an empty registry saving logs to fs.
func NewRegistry(src Source, fs afero.Fs) *Registry {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Registry{src: src, fs: fs, viewers: make(map[uuid.UUID]*Viewer)}
}

// Open returns the window of m, creating and loading it when none exists.
// created is false when an existing window is reused.
func (r *Registry) Open(ctx context.Context, m Machine) (v *Viewer, created bool, err error) {
	if v, ok := r.viewers[m.HardwareUUID()]; ok {
		return v, false, nil
	}
	v = newViewer(m, r.src, r.fs)
	r.viewers[v.hardwareUUID] = v
	r.order = append(r.order, v.hardwareUUID)
	return v, true, v.Refresh(ctx)
}

// Viewer returns the open window for a hardware UUID.
func (r *Registry) Viewer(hardwareUUID uuid.UUID) (*Viewer, bool) {
	v, ok := r.viewers[hardwareUUID]
	return v, ok
}

// Viewers lists the open windows in the order they were opened.
func (r *Registry) Viewers() []*Viewer {
	out := make([]*Viewer, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.viewers[id])
	}
	return out
}

// Close closes the window of hardwareUUID. The entry leaves the registry
// before the window's close handlers run, so a handler closing it again
// finds nothing.
func (r *Registry) Close(hardwareUUID uuid.UUID) {
	v, ok := r.viewers[hardwareUUID]
	if !ok {
		return
	}
	delete(r.viewers, hardwareUUID)
	r.order = slices.DeleteFunc(r.order, func(id uuid.UUID) bool { return id == hardwareUUID })
	v.close()
}

// CloseAll closes every window.
func (r *Registry) CloseAll() {
	for _, id := range slices.Clone(r.order) {
		r.Close(id)
	}
}
