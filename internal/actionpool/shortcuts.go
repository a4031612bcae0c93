package actionpool

import (
	"maps"

	"github.com/charmbracelet/bubbles/key"

	"vboxmanager/internal/extradata"
	"vboxmanager/pkg/logging"
)

// KeySequence is a key sequence in Bubble Tea notation, e.g. "ctrl+g".
type KeySequence string

func (k KeySequence) String() string { return string(k) }

// ShortcutPool overlays user overrides on the default sequences of one
// flavor. Overrides are keyed by Spec.ShortcutID.
type ShortcutPool struct {
	flavor    Flavor
	store     *extradata.Store
	overrides map[string]string
}

func newShortcutPool(flavor Flavor, store *extradata.Store) *ShortcutPool {
	s := &ShortcutPool{flavor: flavor, store: store}
	s.Reload()
	return s
}

// ExtraDataID names the store entry holding the overrides.
func (s *ShortcutPool) ExtraDataID() string {
	if s.flavor == FlavorRuntime {
		return "RuntimeShortcuts"
	}
	return "SelectorShortcuts"
}

// Reload re-reads the overrides from the store.
func (s *ShortcutPool) Reload() {
	s.overrides = map[string]string{}
	if s.store != nil {
		s.overrides = s.store.Shortcuts(s.ExtraDataID())
	}
}

// Overrides returns a copy of the user overrides.
func (s *ShortcutPool) Overrides() map[string]string {
	return maps.Clone(s.overrides)
}

// Sequence returns the primary sequence of spec: the override when one
// exists, the flavor default otherwise.
func (s *ShortcutPool) Sequence(spec *Spec) string {
	if spec.ShortcutID != "" {
		if seq, ok := s.overrides[spec.ShortcutID]; ok {
			return seq
		}
	}
	return spec.Default[s.flavor]
}

// SetSequence stores an override. An empty seq clears the shortcut.
func (s *ShortcutPool) SetSequence(id, seq string) error {
	s.overrides[id] = seq
	return s.save()
}

// Reset drops the override of id.
func (s *ShortcutPool) Reset(id string) error {
	delete(s.overrides, id)
	return s.save()
}

func (s *ShortcutPool) save() error {
	if s.store == nil {
		return nil
	}
	if err := s.store.SetShortcuts(s.ExtraDataID(), s.overrides); err != nil {
		logging.Error(subsystem, err, "Failed to save shortcuts")
		return err
	}
	return nil
}

// binding builds the key binding of a from its primary and standard
// sequences.
func (s *ShortcutPool) binding(a *Action) (string, key.Binding) {
	primary := s.Sequence(a.spec)
	var keys []string
	if primary != "" {
		keys = append(keys, primary)
	}
	if std := a.spec.Standard[s.flavor]; std != "" && std != primary {
		keys = append(keys, std)
	}
	if len(keys) == 0 {
		return "", key.NewBinding(key.WithDisabled())
	}
	return primary, key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], a.Name()))
}
