// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/protocoind/asset"
	"github.com/bitmark-inc/protocoind/fault"
)

func TestSymbol(t *testing.T) {
	sym, err := asset.NewSymbol(4, "TOK")
	assert.Nil(t, err, "new symbol")
	assert.True(t, sym.IsValid(), "not valid")
	assert.Equal(t, uint8(4), sym.Precision(), "wrong precision")
	assert.Equal(t, "TOK", sym.Code().String(), "wrong code")
	assert.Equal(t, "4,TOK", sym.String(), "wrong text")

	parsed, err := asset.ParseSymbol("4,TOK")
	assert.Nil(t, err, "parse symbol")
	assert.Equal(t, sym, parsed, "parse round trip")

	// EOS compatible raw layout
	eos, _ := asset.NewSymbol(4, "EOS")
	assert.Equal(t, asset.Symbol(0x534f4504), eos, "wrong raw value")
}

func TestInvalidSymbol(t *testing.T) {
	items := []struct {
		precision uint8
		code      string
	}{
		{0, ""},
		{0, "tok"},
		{0, "TOOLONGX"},
		{0, "T1K"},
		{19, "TOK"},
	}
	for i, item := range items {
		_, err := asset.NewSymbol(item.precision, item.code)
		assert.Equal(t, fault.InvalidSymbol, err, "%d: expected invalid", i)
	}

	assert.False(t, asset.Symbol(0).IsValid(), "zero symbol is valid")
	assert.False(t, asset.SymbolCode(0x4b00544f).IsValid(), "gap in code is valid")

	_, err := asset.ParseSymbol("TOK")
	assert.Equal(t, fault.InvalidSymbol, err, "missing precision")
}

func TestParse(t *testing.T) {
	items := []struct {
		text      string
		amount    int64
		precision uint8
	}{
		{"100 TOK", 100, 0},
		{"1.0000 TOK", 10000, 4},
		{"0.5 TOK", 5, 1},
		{"-12.34 TOK", -1234, 2},
	}
	for i, item := range items {
		a, err := asset.Parse(item.text)
		assert.Nil(t, err, "%d: parse error", i)
		assert.Equal(t, item.amount, a.Amount, "%d: wrong amount", i)
		assert.Equal(t, item.precision, a.Symbol.Precision(), "%d: wrong precision", i)
		assert.Equal(t, item.text, a.String(), "%d: wrong text", i)
	}

	bad := []string{"", "100", "abc TOK", "1 tok", "4611686018427387904 TOK"}
	for i, text := range bad {
		_, err := asset.Parse(text)
		assert.NotNil(t, err, "%d: expected error for: %q", i, text)
	}
}

func TestArithmetic(t *testing.T) {
	tok, _ := asset.NewSymbol(0, "TOK")
	tok4, _ := asset.NewSymbol(4, "TOK")
	oth, _ := asset.NewSymbol(0, "OTH")

	a := asset.New(100, tok)

	r, err := a.Add(asset.New(50, tok))
	assert.Nil(t, err)
	assert.Equal(t, int64(150), r.Amount)

	r, err = a.Sub(asset.New(150, tok))
	assert.Nil(t, err)
	assert.Equal(t, int64(-50), r.Amount)

	_, err = a.Add(asset.New(1, tok4))
	assert.Equal(t, fault.SymbolMismatch, err, "precision mismatch")

	_, err = a.Sub(asset.New(1, oth))
	assert.Equal(t, fault.SymbolMismatch, err, "code mismatch")

	_, err = asset.New(asset.MaximumAmount, tok).Add(asset.New(1, tok))
	assert.Equal(t, fault.InvalidAmount, err, "overflow")
}

func TestPack(t *testing.T) {
	tok, _ := asset.NewSymbol(2, "TOK")
	a := asset.New(-12345, tok)

	packed := a.Pack()
	assert.Equal(t, asset.PackedLength, len(packed), "wrong length")

	b, n, err := asset.Unpack(packed)
	assert.Nil(t, err)
	assert.Equal(t, asset.PackedLength, n)
	assert.Equal(t, a, b)

	_, _, err = asset.Unpack(packed[:10])
	assert.Equal(t, fault.RecordTruncated, err)

	_, _, err = asset.Unpack(make([]byte, asset.PackedLength))
	assert.Equal(t, fault.RecordCorrupt, err)
}

func TestJSON(t *testing.T) {
	tok, _ := asset.NewSymbol(4, "TOK")
	a := asset.New(10000, tok)

	buffer, err := json.Marshal(a)
	assert.Nil(t, err)
	assert.Equal(t, `{"amount":10000,"symbol":"4,TOK"}`, string(buffer))

	var b asset.Asset
	err = json.Unmarshal(buffer, &b)
	assert.Nil(t, err)
	assert.Equal(t, a, b)
}
