// Package enumconverrors defines errors returned by generated enum
// conversions.
package enumconverrors

import (
	"errors"
	"fmt"
)

// ErrUnknownVariant is matched by every [*UnknownVariantError]:
//
//	if errors.Is(err, enumconverrors.ErrUnknownVariant) { ... }
var ErrUnknownVariant = errors.New("unknown variant")

// UnknownVariantError is returned by a fallible conversion when an integer or
// a value matches no variant and the enum has no unknown variant to absorb it.
type UnknownVariantError struct {
	// Enum is the name of the enum type.
	Enum string

	// Value is the unmatched integer or value.
	Value any
}

func (e *UnknownVariantError) Error() string {
	if e.Enum == "" {
		return fmt.Sprintf("unknown variant: %v", e.Value)
	}
	return fmt.Sprintf("unknown variant of %s: %v", e.Enum, e.Value)
}

// Is reports whether target is [ErrUnknownVariant].
func (e *UnknownVariantError) Is(target error) bool {
	return target == ErrUnknownVariant
}
