// Copyright © 2024 aerth
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the “Software”), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package prefixparse

import (
	"errors"
	"fmt"
)

// Kind of parse failure. Use errors.Is with the Err* sentinels instead of comparing kinds when possible.
type Kind int

const (
	KindUnknown Kind = iota
	InvalidDigit
	Empty
	Overflow
	InvalidRadix
	NoPrefixMatch
)

var (
	ErrInvalidDigit  = errors.New("invalid digit found in string")
	ErrEmpty         = errors.New("cannot parse integer from empty string")
	ErrOverflow      = errors.New("number out of range for target type")
	ErrInvalidRadix  = errors.New("radix must be between 2 and 36")
	ErrNoPrefixMatch = errors.New("no prefix match")
)

// Err returns the sentinel error for k (nil for KindUnknown)
func (k Kind) Err() error {
	switch k {
	case InvalidDigit:
		return ErrInvalidDigit
	case Empty:
		return ErrEmpty
	case Overflow:
		return ErrOverflow
	case InvalidRadix:
		return ErrInvalidRadix
	case NoPrefixMatch:
		return ErrNoPrefixMatch
	}
	return nil
}

func (k Kind) String() string {
	switch k {
	case InvalidDigit:
		return "InvalidDigit"
	case Empty:
		return "Empty"
	case Overflow:
		return "Overflow"
	case InvalidRadix:
		return "InvalidRadix"
	case NoPrefixMatch:
		return "NoPrefixMatch"
	}
	return "Unknown"
}

// ParseError is returned by every failed parse in this package.
//
// errors.Is(err, ErrOverflow) and friends match on Kind,
// and the strconv error (if any) is reachable with errors.As.
type ParseError struct {
	Input  string  // full input, including prefix
	Format *Format // nil if no format was chosen (ParseDigits, or nothing matched)
	Kind   Kind
	Err    error // underlying error, may be nil
}

var _ error = (*ParseError)(nil)

func (e *ParseError) Error() string {
	msg := "unknown error"
	if err := e.Kind.Err(); err != nil {
		msg = err.Error()
	} else if e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Format != nil {
		return fmt.Sprintf("prefixparse: parsing %q as %v: %s", e.Input, *e.Format, msg)
	}
	return fmt.Sprintf("prefixparse: parsing %q: %s", e.Input, msg)
}

func (e *ParseError) Unwrap() []error {
	var errs []error
	if err := e.Kind.Err(); err != nil {
		errs = append(errs, err)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindOf returns the Kind of a ParseError anywhere in err's chain.
func KindOf(err error) Kind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindUnknown
}
