package vmservice

import (
	"errors"
	"fmt"
	"strings"
)

// Result codes used by the in-process service.
const (
	ResultOK             int32 = 0
	ResultInvalidArg     int32 = -2147024809 // 0x80070057
	ResultObjectNotFound int32 = -2135228415 // 0x80BB0001
	ResultInvalidState   int32 = -2135228409 // 0x80BB0007
	ResultFileError      int32 = -2135228404 // 0x80BB000C
)

// ErrNotFound is matched by errors.Is for lookups of missing objects.
var ErrNotFound = errors.New("object not found")

// Error is a structured failure reported by the VM service.
type Error struct {
	Component  string
	Interface  string
	Member     string
	ResultCode int32
	Message    string
	Next       *Error
}

func (e *Error) Error() string {
	if e.Member != "" {
		return fmt.Sprintf("%s.%s: %s", e.Interface, e.Member, e.Message)
	}
	return e.Message
}

// Is lets errors.Is(err, ErrNotFound) match service lookups.
func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e.ResultCode == ResultObjectNotFound
}

// Unwrap exposes the next error in the chain.
func (e *Error) Unwrap() error {
	if e.Next == nil {
		return nil
	}
	return e.Next
}

func newError(member string, rc int32, format string, args ...any) *Error {
	return &Error{
		Component:  "VirtualBoxWrap",
		Interface:  "IVirtualBox",
		Member:     member,
		ResultCode: rc,
		Message:    fmt.Sprintf(format, args...),
	}
}

// FormatError renders err for a message box. Service errors list every
// link of their chain with its details; other errors render as is.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	var se *Error
	if !errors.As(err, &se) {
		return err.Error()
	}

	var b strings.Builder
	if prefix := strings.TrimSuffix(err.Error(), se.Error()); prefix != "" {
		b.WriteString(strings.TrimSuffix(prefix, ": "))
		b.WriteString("\n\n")
	}
	for i, e := range se.chain() {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(e.Message)
		fmt.Fprintf(&b, "\nResult Code: 0x%08X", uint32(e.ResultCode))
		if e.Component != "" {
			fmt.Fprintf(&b, "\nComponent: %s", e.Component)
		}
		if e.Interface != "" {
			fmt.Fprintf(&b, "\nInterface: %s", e.Interface)
		}
		if e.Member != "" {
			fmt.Fprintf(&b, "\nCallee: %s", e.Member)
		}
	}
	return b.String()
}

func (e *Error) chain() []*Error {
	var out []*Error
	for cur := e; cur != nil; cur = cur.Next {
		out = append(out, cur)
	}
	return out
}
