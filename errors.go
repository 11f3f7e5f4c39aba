package quakerisk

import (
	"fmt"

	"github.com/rotisserie/eris"
)

// ErrInputMalformed is the root of every boundary rejection. Records that
// fail validation never become entities, so the classification, severity and
// selection code paths have no error returns of their own.
var ErrInputMalformed = eris.New("input malformed")

// MalformedError describes a single rejected record.
type MalformedError struct {
	Kind  string // "region", "event" or "city"
	Index int    // position of the record in its input slice, -1 if unknown
	Field string
	err   error
}

func (e *MalformedError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s %s: %v", e.Kind, e.Field, e.err)
	}
	return fmt.Sprintf("%s[%d] %s: %v", e.Kind, e.Index, e.Field, e.err)
}

func (e *MalformedError) Unwrap() error { return e.err }

func malformed(kind string, index int, field, format string, args ...any) error {
	return &MalformedError{
		Kind:  kind,
		Index: index,
		Field: field,
		err:   eris.Wrapf(ErrInputMalformed, format, args...),
	}
}
