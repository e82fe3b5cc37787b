package schema

import (
	"errors"
	"fmt"
	"go/token"
)

// Schema construction errors. Build stops at the first one in declaration
// order. Use errors.Is to test an error returned by this package.
var (
	ErrMissingRepr          = errors.New("missing representation")
	ErrUnsupportedRepr      = errors.New("unsupported representation")
	ErrDuplicateVariant     = errors.New("duplicate variant")
	ErrMultipleCatchAll     = errors.New("multiple unknown variants")
	ErrUnknownValue         = errors.New("unknown variant with discriminant")
	ErrDiscriminantOverflow = errors.New("discriminant overflow")
)

// Error describes a schema construction failure. It carries enough context for
// a front-end to attach a source location.
type Error struct {
	Kind    error
	Enum    string
	Variant string
	Repr    string

	// Pos is the position of the offending declaration. It is copied from the
	// declaration and may be invalid.
	Pos token.Pos

	msg string
}

// Unwrap returns the kind sentinel.
func (e *Error) Unwrap() error { return e.Kind }

func (e *Error) Error() string {
	if e.msg != "" {
		return e.msg
	}

	switch e.Kind {
	case ErrMissingRepr:
		if e.Enum != "" {
			return fmt.Sprintf("%s has no representation; declare one of the integer types", e.Enum)
		}
		return "no representation declared; declare one of the integer types"
	case ErrUnsupportedRepr:
		return fmt.Sprintf("unexpected representation %q; must be an integer type", e.Repr)
	case ErrDuplicateVariant:
		return fmt.Sprintf("duplicate variant: %s", e.Variant)
	case ErrMultipleCatchAll:
		return fmt.Sprintf("cannot declare %s as unknown variant; an enum can only have one unknown variant", e.Variant)
	case ErrUnknownValue:
		return fmt.Sprintf("unknown variant %s cannot have a discriminant", e.Variant)
	}
	return e.Kind.Error()
}

// ErrorPos returns the position of the declaration err is about. It returns
// fallback if err is not an [*Error] or its position is invalid.
func ErrorPos(err error, fallback token.Pos) token.Pos {
	var e *Error
	if errors.As(err, &e) && e.Pos.IsValid() {
		return e.Pos
	}
	return fallback
}
