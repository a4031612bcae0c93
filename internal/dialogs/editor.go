// Package dialogs holds the pieces shared by the list and details manager
// windows: the details editor with Reset/Apply semantics and the desktop
// collaborator used to open help pages.
package dialogs

// Editor keeps the loaded copy of an entity next to the copy the user is
// editing. Apply is only offered while the two differ and the edited copy
// validates.
type Editor[T any] struct {
	loaded T
	data   T

	equal    func(a, b T) bool
	clone    func(T) T
	validate func(T) error
	changed  []func(differs bool)
}

// NewEditor returns an editor comparing values with equal. clone and
// validate may be nil.
func NewEditor[T any](equal func(a, b T) bool, clone func(T) T, validate func(T) error) *Editor[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &Editor[T]{equal: equal, clone: clone, validate: validate}
}

// Load replaces both copies with v.
func (e *Editor[T]) Load(v T) {
	e.loaded = e.clone(v)
	e.data = e.clone(v)
	e.notify()
}

// Clear loads the zero value.
func (e *Editor[T]) Clear() {
	var zero T
	e.Load(zero)
}

// Loaded returns the copy as read from the service.
func (e *Editor[T]) Loaded() T { return e.clone(e.loaded) }

// Data returns the edited copy.
func (e *Editor[T]) Data() T { return e.clone(e.data) }

// SetData replaces the edited copy.
func (e *Editor[T]) SetData(v T) {
	e.data = e.clone(v)
	e.notify()
}

// Differs reports whether the edited copy has unsaved changes.
func (e *Editor[T]) Differs() bool {
	return !e.equal(e.loaded, e.data)
}

// Err returns the validation error of the edited copy.
func (e *Editor[T]) Err() error {
	if e.validate == nil {
		return nil
	}
	return e.validate(e.data)
}

// CanApply reports whether the Apply button is enabled.
func (e *Editor[T]) CanApply() bool {
	return e.Differs() && e.Err() == nil
}

// Reset drops the edits.
func (e *Editor[T]) Reset() {
	e.data = e.clone(e.loaded)
	e.notify()
}

// OnChanged registers fn to run whenever the edited or loaded copy
// changes.
func (e *Editor[T]) OnChanged(fn func(differs bool)) {
	e.changed = append(e.changed, fn)
}

func (e *Editor[T]) notify() {
	differs := e.Differs()
	for _, fn := range e.changed {
		fn(differs)
	}
}
