package schema

import (
	"fmt"
	"go/constant"
	"go/token"
)

// Repr is the integer type used to store discriminants. It is immutable once
// parsed.
type Repr struct {
	// Token is the identifier as the user wrote it, e.g., "u8" or "uint8".
	Token string

	Bits   int
	Signed bool

	// Computable reports whether literal arithmetic can be folded when
	// resolving discriminants. Wide and platform-sized types are not
	// computable and keep symbolic discriminants.
	Computable bool
}

type reprInfo struct {
	bits       int
	signed     bool
	computable bool
}

var reprs = map[string]reprInfo{
	"i8":  {8, true, true},
	"i16": {16, true, true},
	"i32": {32, true, true},
	"i64": {64, true, true},
	"u8":  {8, false, true},
	"u16": {16, false, true},
	"u32": {32, false, true},

	"u64":   {64, false, false},
	"i128":  {128, true, false},
	"u128":  {128, false, false},
	"isize": {64, true, false},
	"usize": {64, false, false},

	// Go spellings
	"int8":   {8, true, true},
	"int16":  {16, true, true},
	"int32":  {32, true, true},
	"int64":  {64, true, true},
	"uint8":  {8, false, true},
	"uint16": {16, false, true},
	"uint32": {32, false, true},
	"uint64": {64, false, false},
	"int":    {64, true, false},
	"uint":   {64, false, false},
}

// ParseRepr parses a representation identifier.
func ParseRepr(tok string) (Repr, error) {
	switch tok {
	case "":
		return Repr{}, &Error{Kind: ErrMissingRepr}
	case "C":
		return Repr{}, &Error{Kind: ErrUnsupportedRepr, Repr: tok, msg: "repr(C) is not supported"}
	}

	info, ok := reprs[tok]
	if !ok {
		return Repr{}, &Error{Kind: ErrUnsupportedRepr, Repr: tok}
	}
	return Repr{
		Token:      tok,
		Bits:       info.bits,
		Signed:     info.signed,
		Computable: info.computable,
	}, nil
}

// GoType returns the name of the Go integer type for the representation. It
// returns false if Go has no such type, that is for 128-bit representations.
func (r Repr) GoType() (string, bool) {
	switch r.Token {
	case "isize", "int":
		return "int", true
	case "usize", "uint":
		return "uint", true
	}
	if r.Bits > 64 {
		return "", false
	}
	if r.Signed {
		return fmt.Sprintf("int%d", r.Bits), true
	}
	return fmt.Sprintf("uint%d", r.Bits), true
}

func (r Repr) String() string { return r.Token }

// Min returns the smallest value of the representation.
func (r Repr) Min() constant.Value {
	if !r.Signed {
		return constant.MakeInt64(0)
	}
	return constant.UnaryOp(token.SUB, pow2(r.Bits-1), 0)
}

// Max returns the largest value of the representation.
func (r Repr) Max() constant.Value {
	if r.Signed {
		return constant.BinaryOp(pow2(r.Bits-1), token.SUB, constant.MakeInt64(1))
	}
	return constant.BinaryOp(pow2(r.Bits), token.SUB, constant.MakeInt64(1))
}

// Fits reports whether the exact integer v is representable.
func (r Repr) Fits(v constant.Value) bool {
	v = constant.ToInt(v)
	if v.Kind() != constant.Int {
		return false
	}
	return constant.Compare(v, token.GEQ, r.Min()) && constant.Compare(v, token.LEQ, r.Max())
}

func pow2(n int) constant.Value {
	return constant.Shift(constant.MakeInt64(1), token.SHL, uint(n))
}
