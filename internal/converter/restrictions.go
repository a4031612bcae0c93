package converter

import (
	"math/bits"
	"strings"
)

// Mask is satisfied by the bitmask enums used for restrictions.
type Mask interface {
	~int
}

// FormatMask lists the single-bit values set in mask as comma-joined
// internal strings, in table order.
func FormatMask[E Mask](c *Converter[E], mask E) string {
	var parts []string
	for _, e := range c.entries {
		if e.Internal == "" || bits.OnesCount(uint(e.Value)) != 1 {
			continue
		}
		if mask&e.Value == e.Value {
			parts = append(parts, e.Internal)
		}
	}
	return strings.Join(parts, ",")
}

// ParseMask is the inverse of FormatMask. Item order is irrelevant and
// unknown items are skipped.
func ParseMask[E Mask](c *Converter[E], list string) E {
	var mask E
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		mask |= c.FromInternalString(item)
	}
	return mask
}
