// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package parameter

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/protocoind/fault"
)

// Ratio - a proportion in the range [0, 1]
type Ratio struct {
	Numerator   uint64 `json:"numerator"`
	Denominator uint64 `json:"denominator"`
}

// NewRatio - checked constructor
//
// the denominator must fit in an int64 for Floor
func NewRatio(numerator uint64, denominator uint64) (Ratio, error) {
	r := Ratio{Numerator: numerator, Denominator: denominator}
	if !r.IsValid() {
		return Ratio{}, fault.InvalidRatio
	}
	return r, nil
}

// RatioFromString - exact conversion of a decimal string such as "0.75"
func RatioFromString(s string) (Ratio, error) {
	d, err := decimal.NewFromString(s)
	if nil != err {
		return Ratio{}, fault.InvalidRatio
	}
	if d.IsNegative() || d.GreaterThan(decimal.New(1, 0)) {
		return Ratio{}, fault.InvalidRatio
	}

	num := new(big.Int).Set(d.Coefficient())
	den := big.NewInt(1)
	if exp := d.Exponent(); exp < 0 {
		den.Exp(big.NewInt(10), big.NewInt(int64(-exp)), nil)
	} else {
		num.Mul(num, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil))
	}

	gcd := new(big.Int).GCD(nil, nil, num, den)
	if 0 != gcd.Sign() {
		num.Quo(num, gcd)
		den.Quo(den, gcd)
	}
	if !num.IsUint64() || !den.IsUint64() {
		return Ratio{}, fault.InvalidRatio
	}
	return NewRatio(num.Uint64(), den.Uint64())
}

// IsValid - non-zero denominator within int64 and not more than one
func (r Ratio) IsValid() bool {
	return 0 != r.Denominator && r.Denominator <= math.MaxInt64 && r.Numerator <= r.Denominator
}

// Floor - floor(amount * r)
func (r Ratio) Floor(amount int64) int64 {
	return MulDiv(amount, int64(r.Numerator), int64(r.Denominator))
}

// Complement - 1 - r
func (r Ratio) Complement() Ratio {
	return Ratio{
		Numerator:   r.Denominator - r.Numerator,
		Denominator: r.Denominator,
	}
}

// String - "n/d"
func (r Ratio) String() string {
	return fmt.Sprintf("%d/%d", r.Numerator, r.Denominator)
}

// MulDiv - floor(a * b / c) with a 128 bit intermediate
//
// c must be positive; the result must fit in 64 bits
func MulDiv(a int64, b int64, c int64) int64 {
	if c <= 0 {
		fault.Panicf("parameter.MulDiv: non-positive divisor: %d", c)
	}
	p := new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
	q := new(big.Int).Div(p, big.NewInt(c)) // Euclidean: floor for positive c
	if !q.IsInt64() {
		fault.Panicf("parameter.MulDiv: overflow: %d * %d / %d", a, b, c)
	}
	return q.Int64()
}
