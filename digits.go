// Copyright © 2024 aerth
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the “Software”), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package prefixparse

import (
	"errors"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Integer is any type with an integer underlying type. These get ParseDigits for free.
type Integer = constraints.Integer

// DigitsFunc parses s (no prefix) as a number in the given radix.
//
// Custom numeric types opt in to prefix parsing by providing one, see Parser.
type DigitsFunc[T any] func(s string, radix int) (T, error)

// ParseDigits string->~int in radix (2 to 36), respecting the size and sign of T.
//
// A leading '+' or '-' is accepted for signed types only.
func ParseDigits[T Integer](s string, radix int) (T, error) {
	var zero T
	if radix < 2 || radix > 36 {
		return zero, &ParseError{Input: s, Kind: InvalidRadix}
	}
	if s == "" {
		return zero, &ParseError{Input: s, Kind: Empty}
	}
	bitsize := int(unsafe.Sizeof(zero)) * 8
	if isSigned[T]() {
		n, err := strconv.ParseInt(s, radix, bitsize)
		if err != nil {
			return zero, numError(s, err)
		}
		return T(n), nil
	}
	n, err := strconv.ParseUint(s, radix, bitsize)
	if err != nil {
		return zero, numError(s, err)
	}
	return T(n), nil
}

func isSigned[T Integer]() bool {
	var zero T
	return ^zero < 0
}

// strconv error -> ParseError
func numError(s string, err error) *ParseError {
	kind := InvalidDigit
	if errors.Is(err, strconv.ErrRange) {
		kind = Overflow
	}
	return &ParseError{Input: s, Kind: kind, Err: err}
}
