// prefixflag package provides flag values that accept prefixed numbers ("0x1f", "0o755", "0b101", "42").
//
// Works with the standard flag package (Var, CommandLineVar) and github.com/spf13/pflag (PVar, PVarP).
package prefixflag

import (
	"flag"
	"fmt"

	"github.com/aerth/prefixparse"
	"github.com/spf13/pflag"
)

var _ flag.Getter = (*Value[uint])(nil)  // compile-time interface check
var _ pflag.Value = (*Value[uint])(nil) // compile-time interface check

// Value is a flag.Value and pflag.Value holding a number of type T.
//
// A failed Set leaves the current value unchanged.
type Value[T prefixparse.Integer] struct {
	p      *T
	format *prefixparse.Format // nil: auto-detect
}

// NewValue sets *p to value and returns a Value writing to p.
func NewValue[T prefixparse.Integer](p *T, value T) *Value[T] {
	*p = value
	return &Value[T]{p: p}
}

// NewValueWith is NewValue, but Set always parses in f.Radix (prefix optional).
func NewValueWith[T prefixparse.Integer](f prefixparse.Format, p *T, value T) *Value[T] {
	v := NewValue(p, value)
	v.format = &f
	return v
}

func (v *Value[T]) Set(s string) error {
	var (
		n   T
		err error
	)
	if v.format != nil {
		n, err = prefixparse.ParseWith[T](*v.format, s)
	} else {
		n, err = prefixparse.Parse[T](s)
	}
	if err != nil {
		return fmt.Errorf("invalid number: %w", err)
	}
	*v.p = n
	return nil
}

func (v *Value[T]) Get() any {
	if v == nil || v.p == nil {
		var zero T
		return zero
	}
	return *v.p
}

// String may be called on a zero Value by the flag package
func (v *Value[T]) String() string {
	if v == nil || v.p == nil {
		return "0"
	}
	return fmt.Sprintf("%d", *v.p)
}

// Type is shown by pflag in usage, for example "uint32"
func (v *Value[T]) Type() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

// Var defines a number flag on fs. Any prefix accepted by prefixparse.Parse may be used.
func Var[T prefixparse.Integer](fs *flag.FlagSet, p *T, name string, value T, usage string) {
	fs.Var(NewValue(p, value), name, usage)
}

// VarWith defines a number flag on fs that is always parsed with f.
//
// For example, a "mode" flag with prefixparse.OCT accepts both "755" and "0o755".
func VarWith[T prefixparse.Integer](fs *flag.FlagSet, f prefixparse.Format, p *T, name string, value T, usage string) {
	fs.Var(NewValueWith(f, p, value), name, usage)
}

// CommandLineVar is Var on flag.CommandLine
func CommandLineVar[T prefixparse.Integer](p *T, name string, value T, usage string) {
	Var(flag.CommandLine, p, name, value, usage)
}

// New defines a number flag on fs and returns the address of its value.
func New[T prefixparse.Integer](fs *flag.FlagSet, name string, value T, usage string) *T {
	p := new(T)
	Var(fs, p, name, value, usage)
	return p
}

// PVar defines a number flag on a pflag.FlagSet.
func PVar[T prefixparse.Integer](fs *pflag.FlagSet, p *T, name string, value T, usage string) {
	fs.Var(NewValue(p, value), name, usage)
}

// PVarP is PVar with a one letter shorthand.
func PVarP[T prefixparse.Integer](fs *pflag.FlagSet, p *T, name, shorthand string, value T, usage string) {
	fs.VarP(NewValue(p, value), name, shorthand, usage)
}
