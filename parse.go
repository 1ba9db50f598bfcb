// Copyright © 2024 aerth
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the “Software”), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package prefixparse

import "strings"

// Parser dispatches on prefix and hands the rest to Digits.
//
// The zero Formats uses the built-in order (HEX, OCT, BIN, DEC).
// A custom Formats is checked in order and the first prefix match commits,
// even if the digits after it fail to parse. Put the empty prefix last, if at all.
type Parser[T any] struct {
	Digits  DigitsFunc[T]
	Formats []Format
}

// For returns the Parser used by Parse and ParseWith for integer type T.
func For[T Integer]() Parser[T] {
	return Parser[T]{Digits: ParseDigits[T]}
}

// Parse a number prefixed with one of p.Formats (default "0x", "0o", "0b", or none for decimal).
func (p Parser[T]) Parse(input string) (T, error) {
	formats := p.Formats
	if formats == nil {
		formats = auto[:]
	}
	for _, f := range formats {
		if rest, ok := strings.CutPrefix(input, f.Prefix); ok {
			return p.digits(f, input, rest)
		}
	}
	var zero T
	return zero, &ParseError{Input: input, Kind: NoPrefixMatch}
}

// ParseWith parses input in f.Radix, stripping f.Prefix if input has it.
func (p Parser[T]) ParseWith(f Format, input string) (T, error) {
	rest, _ := strings.CutPrefix(input, f.Prefix)
	return p.digits(f, input, rest)
}

// ParseStrict is ParseWith, but input must start with f.Prefix.
func (p Parser[T]) ParseStrict(f Format, input string) (T, error) {
	rest, ok := strings.CutPrefix(input, f.Prefix)
	if !ok {
		var zero T
		return zero, &ParseError{Input: input, Format: &f, Kind: NoPrefixMatch}
	}
	return p.digits(f, input, rest)
}

func (p Parser[T]) digits(f Format, input, rest string) (T, error) {
	if p.Digits == nil {
		panic("prefixparse: Parser has no Digits func")
	}
	v, err := p.Digits(rest, f.Radix)
	if err == nil {
		return v, nil
	}
	// annotate our own errors with the whole input and format,
	// foreign errors from custom Digits funcs are returned as-is.
	if pe, ok := err.(*ParseError); ok {
		cp := *pe
		cp.Input = input
		cp.Format = &f
		return v, &cp
	}
	return v, err
}

// Parse a number prefixed with `0x`, `0o`, `0b`, or unprefixed decimal.
//
// The prefix is case-sensitive: "0X10" is parsed as decimal and fails.
func Parse[T Integer](input string) (T, error) {
	return For[T]().Parse(input)
}

// ParseWith a custom or built-in format. The prefix is optional.
func ParseWith[T Integer](f Format, input string) (T, error) {
	return For[T]().ParseWith(f, input)
}

// ParseStrict with a custom or built-in format. The prefix is required (ErrNoPrefixMatch).
func ParseStrict[T Integer](f Format, input string) (T, error) {
	return For[T]().ParseStrict(f, input)
}
