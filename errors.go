package tinyyaml

import (
	"fmt"
	"reflect"

	parseerrors "github.com/KimNorgaard/go-tinyyaml/errors"
)

// StructuralError reports an indentation jump of more than one level.
type StructuralError = parseerrors.StructuralError

// A ConversionError describes a node value that a converter could not turn
// into a value of the target type.
type ConversionError struct {
	Value string
	Type  reflect.Type
	// Line is the line the node was parsed from, or -1.
	Line int
	Err  error
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("tinyyaml: cannot convert %q to %s", e.Value, e.Type)
	if e.Line > 0 {
		msg += fmt.Sprintf(" on line %d", e.Line)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConversionError) Unwrap() error { return e.Err }

// An EncodeError describes a converter that failed to encode a member.
type EncodeError struct {
	Member string
	Type   reflect.Type
	Err    error
}

func (e *EncodeError) Error() string {
	return "tinyyaml: cannot encode member " + e.Member + " of type " + e.Type.String() + ": " + e.Err.Error()
}

func (e *EncodeError) Unwrap() error { return e.Err }

// An InvalidTargetError describes an invalid argument passed to Decode or
// Encode. The argument must be a struct or a non-nil pointer to one; Decode
// requires the pointer.
type InvalidTargetError struct {
	Op   string
	Type reflect.Type
}

func (e *InvalidTargetError) Error() string {
	if e.Type == nil {
		return "tinyyaml: " + e.Op + "(nil)"
	}
	if e.Type.Kind() == reflect.Pointer {
		return "tinyyaml: " + e.Op + "(nil " + e.Type.String() + " or pointer to non-struct)"
	}
	return "tinyyaml: " + e.Op + "(non-pointer " + e.Type.String() + ")"
}
