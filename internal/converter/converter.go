package converter

import (
	"reflect"
	"sync"

	"golang.org/x/text/cases"

	"vboxmanager/pkg/logging"
)

const subsystem = "Converter"

// Entry is one row of a conversion table. Empty fields mean the row has
// no representation of that kind.
type Entry[E comparable] struct {
	Value    E
	Internal string
	Display  string
	Icon     string
	Warning  string
}

// Converter maps the values of one enum to and from their string, icon
// and integer representations. Tables are immutable after construction
// and safe for concurrent use.
type Converter[E comparable] struct {
	name    string
	invalid E
	entries []Entry[E]

	// integers maps values persisted as numbers.
	integers map[E]int

	// preParse runs before the key lookup of FromInternalString and may
	// short-circuit it.
	preParse func(s string) (E, bool)
	// fallback returns the documented default for unknown input. When nil
	// unknown input maps to invalid.
	fallback func() E

	byValue    map[E]int
	byInternal map[string]E
	byDisplay  map[string]E
	byInteger  map[int]E
}

// registered is filled lazily because package variables that call
// register may initialize before it.
var (
	registeredMu sync.RWMutex
	registered   map[reflect.Type]struct{}
)

// register indexes c and records its enum type for CanConvert. It is
// only called from package-level variable initialization.
func register[E comparable](c *Converter[E]) *Converter[E] {
	c.byValue = make(map[E]int, len(c.entries))
	c.byInternal = make(map[string]E, len(c.entries))
	c.byDisplay = make(map[string]E, len(c.entries))
	for i, e := range c.entries {
		c.byValue[e.Value] = i
		if e.Internal != "" {
			c.byInternal[fold(e.Internal)] = e.Value
		}
		if e.Display != "" {
			c.byDisplay[fold(e.Display)] = e.Value
		}
	}
	if c.integers != nil {
		c.byInteger = make(map[int]E, len(c.integers))
		for v, n := range c.integers {
			c.byInteger[n] = v
		}
	}
	registerType[E]()
	return c
}

func registerType[T any]() {
	registeredMu.Lock()
	defer registeredMu.Unlock()
	if registered == nil {
		registered = make(map[reflect.Type]struct{})
	}
	registered[reflect.TypeFor[T]()] = struct{}{}
}

// CanConvert reports whether a conversion table exists for E.
func CanConvert[E any]() bool {
	registeredMu.RLock()
	defer registeredMu.RUnlock()
	_, ok := registered[reflect.TypeFor[E]()]
	return ok
}

func fold(s string) string {
	return cases.Fold().String(s)
}

// Name returns the enum name used in diagnostics.
func (c *Converter[E]) Name() string { return c.name }

// Values lists every value that has a table row, in table order.
func (c *Converter[E]) Values() []E {
	out := make([]E, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e.Value)
	}
	return out
}

func (c *Converter[E]) entry(v E) (Entry[E], bool) {
	i, ok := c.byValue[v]
	if !ok {
		return Entry[E]{}, false
	}
	return c.entries[i], true
}

// ToString returns the display string for v.
func (c *Converter[E]) ToString(v E) string {
	e, ok := c.entry(v)
	if !ok || e.Display == "" {
		logging.Warn(subsystem, "No text for %s=%v", c.name, v)
		return ""
	}
	return e.Display
}

// ToInternalString returns the stable persisted key for v.
func (c *Converter[E]) ToInternalString(v E) string {
	e, ok := c.entry(v)
	if !ok {
		logging.Warn(subsystem, "No internal text for %s=%v", c.name, v)
		return ""
	}
	return e.Internal
}

// FromString parses a display string, ignoring case.
func (c *Converter[E]) FromString(s string) E {
	if v, ok := c.byDisplay[fold(s)]; ok {
		return v
	}
	logging.Warn(subsystem, "No %s value for '%s'", c.name, s)
	return c.unknown()
}

// FromInternalString parses a persisted key, ignoring case. Unknown keys
// yield the invalid value or the documented default for this enum.
func (c *Converter[E]) FromInternalString(s string) E {
	if c.preParse != nil {
		if v, ok := c.preParse(s); ok {
			return v
		}
	}
	if v, ok := c.byInternal[fold(s)]; ok {
		return v
	}
	if c.fallback == nil {
		logging.Debug(subsystem, "No %s value for '%s'", c.name, s)
	}
	return c.unknown()
}

// ToIcon returns the icon resource for v.
func (c *Converter[E]) ToIcon(v E) string {
	e, ok := c.entry(v)
	if !ok || e.Icon == "" {
		logging.Warn(subsystem, "No icon for %s=%v", c.name, v)
		return ""
	}
	return e.Icon
}

// ToWarningPixmap returns the warning pixmap resource for v.
func (c *Converter[E]) ToWarningPixmap(v E) string {
	e, ok := c.entry(v)
	if !ok || e.Warning == "" {
		logging.Warn(subsystem, "No pixmap for %s=%v", c.name, v)
		return ""
	}
	return e.Warning
}

// ToInternalInteger returns the persisted integer for v.
func (c *Converter[E]) ToInternalInteger(v E) int {
	n, ok := c.integers[v]
	if !ok {
		logging.Warn(subsystem, "No value for %s=%v", c.name, v)
		return 0
	}
	return n
}

// FromInternalInteger parses a persisted integer.
func (c *Converter[E]) FromInternalInteger(n int) E {
	if v, ok := c.byInteger[n]; ok {
		return v
	}
	logging.Warn(subsystem, "No %s value for '%d'", c.name, n)
	return c.unknown()
}

func (c *Converter[E]) unknown() E {
	if c.fallback != nil {
		return c.fallback()
	}
	return c.invalid
}

func defaultTo[E comparable](v E) func() E {
	return func() E { return v }
}
