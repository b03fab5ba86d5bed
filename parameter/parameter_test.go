// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package parameter_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/protocoind/fault"
	"github.com/bitmark-inc/protocoind/parameter"
)

func TestRatioFromString(t *testing.T) {
	items := []struct {
		text        string
		numerator   uint64
		denominator uint64
	}{
		{"0.75", 3, 4},
		{"0.01", 1, 100},
		{"0.7", 7, 10},
		{"1", 1, 1},
		{"0", 0, 1},
		{"0.125", 1, 8},
	}
	for i, item := range items {
		r, err := parameter.RatioFromString(item.text)
		assert.Nil(t, err, "%d: error", i)
		assert.Equal(t, item.numerator, r.Numerator, "%d: numerator", i)
		assert.Equal(t, item.denominator, r.Denominator, "%d: denominator", i)
	}

	for _, s := range []string{"", "x", "-0.1", "1.5", "0.0000000000000000001"} {
		_, err := parameter.RatioFromString(s)
		assert.Equal(t, fault.InvalidRatio, err, "expected error for: %q", s)
	}
}

func TestRatioFloor(t *testing.T) {
	r, _ := parameter.NewRatio(3, 4)
	assert.Equal(t, int64(750), r.Floor(1000))
	assert.Equal(t, int64(750), r.Floor(1001))
	assert.Equal(t, int64(250), r.Complement().Floor(1001))

	fee, _ := parameter.NewRatio(1, 100)
	assert.Equal(t, int64(1), fee.Floor(100))
	assert.Equal(t, int64(0), fee.Floor(99))

	_, err := parameter.NewRatio(2, 1)
	assert.Equal(t, fault.InvalidRatio, err)
	_, err = parameter.NewRatio(0, 0)
	assert.Equal(t, fault.InvalidRatio, err)
	_, err = parameter.NewRatio(1, math.MaxInt64+1)
	assert.Equal(t, fault.InvalidRatio, err)
	assert.False(t, parameter.Ratio{Numerator: 1, Denominator: math.MaxUint64}.IsValid(), "denominator over int64")
}

func TestMulDiv(t *testing.T) {
	assert.Equal(t, int64(100), parameter.MulDiv(150, 100, 150))
	assert.Equal(t, int64(50), parameter.MulDiv(150, 50, 150))
	assert.Equal(t, int64(33), parameter.MulDiv(100, 1, 3))

	// intermediate exceeds 64 bits
	big := int64(1) << 61
	assert.Equal(t, big/2, parameter.MulDiv(big, big, big*2))

	assert.Panics(t, func() { parameter.MulDiv(1, 1, 0) }, "zero divisor")
}

func TestDefault(t *testing.T) {
	p := parameter.Default()

	assert.Equal(t, 6, p.StakeCount())
	assert.Equal(t, int64(750), p.InitialIssue(1000))
	assert.Equal(t, int64(250), p.BoostReserve(1000))
	assert.Equal(t, int64(1), p.Fee(100))
	assert.Equal(t, int64(0), p.StakersFee(1))
	assert.Equal(t, int64(7), p.StakersFee(10))
	assert.Equal(t, uint64(60), p.UpdateInterval)
	assert.Equal(t, uint64(120), p.BoostInterval)
	assert.Equal(t, uint64(312), p.BoostCount)

	w, err := p.Weight(3)
	assert.Nil(t, err)
	assert.Equal(t, int64(100), w)
	w, err = p.Weight(0)
	assert.Nil(t, err)
	assert.Equal(t, int64(50), w)

	d, err := p.Duration(5)
	assert.Nil(t, err)
	assert.Equal(t, uint64(3600), d)

	_, err = p.Duration(6)
	assert.Equal(t, fault.DurationIndexOutOfRange, err)
	_, err = p.Weight(-1)
	assert.Equal(t, fault.DurationIndexOutOfRange, err)
}

func TestEmission(t *testing.T) {
	p := parameter.Default()

	items := []struct {
		boost     uint64
		maxSupply int64
		expected  int64
	}{
		{1, 1000, 3},
		{312, 1000, 0},
		{1, 1000000, 3731},
		{2, 1000000, 3675},
		{10, 1000000, 3260},
		{312, 1000000, 35},
		{1, 1000000000000, 3731484619},
		{2, 1000000000000, 3675930051},
		{10, 1000000000000, 3260257486},
		{312, 1000000000000, 35147779},
		{0, 1000000, 0},
		{313, 1000000, 0},
	}
	for i, item := range items {
		e := p.Emission(item.boost, item.maxSupply)
		assert.Equal(t, item.expected, e, "%d: boost: %d  max: %d", i, item.boost, item.maxSupply)
	}
}

func TestEmissionTotalBelowReserve(t *testing.T) {
	p := parameter.Default()
	const maxSupply = 1000000000000

	total := int64(0)
	for n := uint64(1); n <= p.BoostCount; n += 1 {
		e := p.Emission(n, maxSupply)
		assert.True(t, e > 0, "boost: %d is zero", n)
		if n > 1 {
			assert.True(t, e <= p.Emission(n-1, maxSupply), "boost: %d increased", n)
		}
		total += e
	}
	assert.True(t, total <= p.BoostReserve(maxSupply), "total: %d exceeds reserve", total)
}

func TestInvalidConfiguration(t *testing.T) {
	mutations := []func(c *parameter.Configuration){
		func(c *parameter.Configuration) { c.IssueProportion = "2" },
		func(c *parameter.Configuration) { c.FeeRate = "abc" },
		func(c *parameter.Configuration) { c.FeeRate = "0.0000000000000000001" },
		func(c *parameter.Configuration) { c.Lambda = "" },
		func(c *parameter.Configuration) { c.Divisor = 0 },
		func(c *parameter.Configuration) { c.BoostCount = 0 },
		func(c *parameter.Configuration) { c.UpdateInterval = 0 },
		func(c *parameter.Configuration) { c.Weights = c.Weights[:2] },
		func(c *parameter.Configuration) { c.Durations = nil; c.Weights = nil },
		func(c *parameter.Configuration) { c.Weights[0] = 0 },
		func(c *parameter.Configuration) { c.MemoLimit = 0 },
	}
	for i, mutate := range mutations {
		c := parameter.DefaultConfiguration()
		mutate(&c)
		p, err := parameter.New(&c)
		assert.NotNil(t, err, "%d: expected error", i)
		assert.Nil(t, p, "%d: expected nil parameters", i)
	}
}
