// Package dcmerr provides the typed error values threaded through every
// fallible operation in the dicom packages.
//
// Every error carries a Kind plus a short summary and a longer message, in
// the style of the teacher's sentinel errors.Go package but widened to a
// closed taxonomy so callers can switch on failure class instead of
// matching strings.
package dcmerr

import "fmt"

// Kind classifies the failure so callers can decide how to react without
// parsing the message text.
type Kind uint8

const (
	// OutOfMemory marks an allocation failure.
	OutOfMemory Kind = iota
	// Invalid marks a caller-supplied out-of-range argument, a VR not
	// permitted for a tag, or an operation attempted on a locked container.
	Invalid
	// Parse marks a byte stream that violates the format: bad VR, bad
	// reserved bytes, a missing Item tag, a length not a multiple of the
	// VR's size, or Basic Offset Table corruption.
	Parse
	// IO marks an underlying read/seek failure, or an unexpected EOF while
	// data was required.
	IO
	// MissingFrame marks a read_frame_position lookup that found no frame
	// at the requested coordinate.
	MissingFrame
)

func (k Kind) String() string {
	switch k {
	case OutOfMemory:
		return "OutOfMemory"
	case Invalid:
		return "Invalid"
	case Parse:
		return "Parse"
	case IO:
		return "IO"
	case MissingFrame:
		return "MissingFrame"
	default:
		return "Unknown"
	}
}

// Error is the typed failure value returned by this module's fallible
// operations. It satisfies the standard error interface so it composes with
// fmt.Errorf("%w", ...) and errors.As/errors.Is.
type Error struct {
	Kind    Kind
	Summary string
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Summary, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Summary)
}

// Unwrap exposes a wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// New builds an Error with no wrapped cause.
func New(kind Kind, summary, message string) *Error {
	return &Error{Kind: kind, Summary: summary, Message: message}
}

// Wrap builds an Error that carries cause as its Unwrap target, using
// cause's own message as the detail message.
func Wrap(kind Kind, summary string, cause error) *Error {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	return &Error{Kind: kind, Summary: summary, Message: msg, cause: cause}
}

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
