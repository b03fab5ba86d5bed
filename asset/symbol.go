// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/bitmark-inc/protocoind/fault"
)

// limits
const (
	MaximumCodeLength = 7
	MaximumPrecision  = 18
)

// Symbol - precision in the low byte, code in the upper seven bytes
type Symbol uint64

// SymbolCode - the code part of a symbol, used as a storage scope
type SymbolCode uint64

// NewSymbol - create a symbol from a precision and a code like "TOK"
func NewSymbol(precision uint8, code string) (Symbol, error) {
	c, err := CodeFromString(code)
	if nil != err {
		return 0, err
	}
	if precision > MaximumPrecision {
		return 0, fault.InvalidSymbol
	}
	return Symbol(uint64(c)<<8 | uint64(precision)), nil
}

// ParseSymbol - decode "precision,CODE" e.g. "4,TOK"
func ParseSymbol(s string) (Symbol, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if 2 != len(parts) {
		return 0, fault.InvalidSymbol
	}
	p, err := strconv.ParseUint(parts[0], 10, 8)
	if nil != err {
		return 0, fault.InvalidSymbol
	}
	return NewSymbol(uint8(p), parts[1])
}

// CodeFromString - pack 1..7 upper case letters, first letter in the low byte
func CodeFromString(s string) (SymbolCode, error) {
	if 0 == len(s) || len(s) > MaximumCodeLength {
		return 0, fault.InvalidSymbol
	}
	c := uint64(0)
	for i := len(s) - 1; i >= 0; i -= 1 {
		if s[i] < 'A' || s[i] > 'Z' {
			return 0, fault.InvalidSymbol
		}
		c = c<<8 | uint64(s[i])
	}
	return SymbolCode(c), nil
}

// Precision - number of decimal places
func (symbol Symbol) Precision() uint8 {
	return uint8(symbol)
}

// Code - ticker code
func (symbol Symbol) Code() SymbolCode {
	return SymbolCode(symbol >> 8)
}

// IsValid - check the code letters and the precision
func (symbol Symbol) IsValid() bool {
	return symbol.Precision() <= MaximumPrecision && symbol.Code().IsValid()
}

// String - "precision,CODE"
func (symbol Symbol) String() string {
	return strconv.Itoa(int(symbol.Precision())) + "," + symbol.Code().String()
}

// MarshalText - JSON form "4,TOK"
func (symbol Symbol) MarshalText() ([]byte, error) {
	return []byte(symbol.String()), nil
}

// UnmarshalText - JSON form "4,TOK"
func (symbol *Symbol) UnmarshalText(s []byte) error {
	sym, err := ParseSymbol(string(s))
	if nil != err {
		return err
	}
	*symbol = sym
	return nil
}

// IsValid - letters must be contiguous from the low byte
func (code SymbolCode) IsValid() bool {
	if 0 == code {
		return false
	}
	c := uint64(code)
	for i := 0; i < MaximumCodeLength; i += 1 {
		b := byte(c)
		if 0 == b {
			return 0 == c // no letters after a gap
		}
		if b < 'A' || b > 'Z' {
			return false
		}
		c >>= 8
	}
	return 0 == c
}

// String - the ticker letters
func (code SymbolCode) String() string {
	s := make([]byte, 0, MaximumCodeLength)
	for c := uint64(code); 0 != c; c >>= 8 {
		s = append(s, byte(c))
	}
	return string(s)
}

// Bytes - big endian encoding, suitable for use in database keys
func (code SymbolCode) Bytes() []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, uint64(code))
	return buffer
}
