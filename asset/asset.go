// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"encoding/binary"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/protocoind/fault"
)

// MaximumAmount - largest magnitude an asset may hold
const MaximumAmount = int64(1)<<62 - 1

// PackedLength - size of a packed asset
const PackedLength = 16

// Asset - an amount in the smallest unit of a symbol
type Asset struct {
	Amount int64  `json:"amount"`
	Symbol Symbol `json:"symbol"`
}

// New - construct an asset
func New(amount int64, symbol Symbol) Asset {
	return Asset{
		Amount: amount,
		Symbol: symbol,
	}
}

// Parse - decode text like "12.5000 TOK", the number of decimal
// places sets the precision
func Parse(s string) (Asset, error) {
	fields := strings.Fields(s)
	if 2 != len(fields) {
		return Asset{}, fault.InvalidAmount
	}

	precision := 0
	if n := strings.IndexByte(fields[0], '.'); n >= 0 {
		precision = len(fields[0]) - n - 1
	}
	if precision > MaximumPrecision {
		return Asset{}, fault.InvalidSymbol
	}

	symbol, err := NewSymbol(uint8(precision), fields[1])
	if nil != err {
		return Asset{}, err
	}

	d, err := decimal.NewFromString(fields[0])
	if nil != err {
		return Asset{}, fault.InvalidAmount
	}
	units := d.Shift(int32(precision))
	if !units.IsInteger() {
		return Asset{}, fault.InvalidAmount
	}
	max := decimal.NewFromInt(MaximumAmount)
	if units.Abs().GreaterThan(max) {
		return Asset{}, fault.InvalidAmount
	}

	return New(units.IntPart(), symbol), nil
}

// IsValid - amount in range and a well formed symbol
func (a Asset) IsValid() bool {
	return a.Amount >= -MaximumAmount && a.Amount <= MaximumAmount && a.Symbol.IsValid()
}

// IsPositive - amount strictly greater than zero
func (a Asset) IsPositive() bool {
	return a.Amount > 0
}

// Add - checked addition of same symbol assets
func (a Asset) Add(b Asset) (Asset, error) {
	if a.Symbol != b.Symbol {
		return Asset{}, fault.SymbolMismatch
	}
	r := New(a.Amount+b.Amount, a.Symbol)
	if r.Amount < -MaximumAmount || r.Amount > MaximumAmount {
		return Asset{}, fault.InvalidAmount
	}
	return r, nil
}

// Sub - checked subtraction of same symbol assets
func (a Asset) Sub(b Asset) (Asset, error) {
	if a.Symbol != b.Symbol {
		return Asset{}, fault.SymbolMismatch
	}
	r := New(a.Amount-b.Amount, a.Symbol)
	if r.Amount < -MaximumAmount || r.Amount > MaximumAmount {
		return Asset{}, fault.InvalidAmount
	}
	return r, nil
}

// String - fixed point text with the symbol code, e.g. "1.0000 TOK"
func (a Asset) String() string {
	p := int32(a.Symbol.Precision())
	return decimal.New(a.Amount, -p).StringFixed(p) + " " + a.Symbol.Code().String()
}

// Pack - amount then symbol, 16 bytes big endian
func (a Asset) Pack() []byte {
	buffer := make([]byte, PackedLength)
	binary.BigEndian.PutUint64(buffer[:8], uint64(a.Amount))
	binary.BigEndian.PutUint64(buffer[8:], uint64(a.Symbol))
	return buffer
}

// Unpack - inverse of Pack, returns the number of bytes consumed
func Unpack(buffer []byte) (Asset, int, error) {
	if len(buffer) < PackedLength {
		return Asset{}, 0, fault.RecordTruncated
	}
	a := Asset{
		Amount: int64(binary.BigEndian.Uint64(buffer[:8])),
		Symbol: Symbol(binary.BigEndian.Uint64(buffer[8:16])),
	}
	if !a.IsValid() {
		return Asset{}, 0, fault.RecordCorrupt
	}
	return a, PackedLength, nil
}
