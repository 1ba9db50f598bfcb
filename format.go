// Copyright © 2024 aerth
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the “Software”), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// prefixparse package parses numbers that carry a radix prefix ("0x", "0o", "0b") into any integer type.
//
//	n, err := prefixparse.Parse[uint32]("0x10") // 16
//	n, err = prefixparse.ParseWith[uint32](prefixparse.Format{Prefix: "0z", Radix: 36}, "0z1jz") // 2015
package prefixparse

import "fmt"

// Format is a prefix and the radix used for the digits after it.
type Format struct {
	Prefix string
	Radix  int
}

func (f Format) String() string {
	return fmt.Sprintf("%q(%d)", f.Prefix, f.Radix)
}

// HEX '0x' prefix for hexadecimal numbers
var HEX = Format{Prefix: "0x", Radix: 16}

// OCT '0o' prefix for octal numbers
var OCT = Format{Prefix: "0o", Radix: 8}

// BIN '0b' prefix for binary numbers
var BIN = Format{Prefix: "0b", Radix: 2}

// DEC has no prefix, it matches anything and must be checked last.
var DEC = Format{Prefix: "", Radix: 10}

// auto-detect order, first match commits
var auto = [...]Format{HEX, OCT, BIN, DEC}

// AutoFormats returns a copy of the formats Parse checks, in order.
func AutoFormats() []Format {
	out := make([]Format, len(auto))
	copy(out, auto[:])
	return out
}
