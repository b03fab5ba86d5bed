// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package parameter

import (
	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/protocoind/fault"
)

// digits kept after the decimal point when evaluating exp()
const decayPrecision = 18

// default values
const (
	defaultIssueProportion = "0.75"
	defaultFeeRate         = "0.01"
	defaultFeeToStakers    = "0.7"
	defaultMemoLimit       = 256
	defaultUpdateInterval  = 60  // seconds
	defaultBoostInterval   = 120 // seconds
	defaultBoostCount      = 312
	defaultLambda          = "-0.015"
	defaultDivisor         = 66
)

// lock durations in seconds and the matching reward weights
var (
	defaultDurations = []uint64{60, 3 * 60, 6 * 60, 12 * 60, 24 * 60, 60 * 60}
	defaultWeights   = []int64{50, 60, 75, 100, 100, 100}
)

// Configuration - economics section of the configuration file
type Configuration struct {
	IssueProportion string   `gluamapper:"issue_proportion" json:"issue_proportion"`
	FeeRate         string   `gluamapper:"fee_rate" json:"fee_rate"`
	FeeToStakers    string   `gluamapper:"fee_to_stakers" json:"fee_to_stakers"`
	MemoLimit       int      `gluamapper:"memo_limit" json:"memo_limit"`
	UpdateInterval  uint64   `gluamapper:"update_interval" json:"update_interval"`
	BoostInterval   uint64   `gluamapper:"boost_interval" json:"boost_interval"`
	BoostCount      uint64   `gluamapper:"boost_count" json:"boost_count"`
	Lambda          string   `gluamapper:"lambda" json:"lambda"`
	Divisor         int64    `gluamapper:"divisor" json:"divisor"`
	Durations       []uint64 `gluamapper:"durations" json:"durations"`
	Weights         []int64  `gluamapper:"weights" json:"weights"`
}

// Parameters - immutable once created, share freely
type Parameters struct {
	IssueProportion Ratio
	FeeRate         Ratio
	FeeToStakers    Ratio
	MemoLimit       int
	UpdateInterval  uint64
	BoostInterval   uint64
	BoostCount      uint64
	Lambda          decimal.Decimal
	Divisor         int64
	Durations       []uint64
	Weights         []int64

	// decay[i-1] = exp(lambda * i) for i in 1..BoostCount
	decay []decimal.Decimal
}

// DefaultConfiguration - the production economics
func DefaultConfiguration() Configuration {
	durations := make([]uint64, len(defaultDurations))
	copy(durations, defaultDurations)
	weights := make([]int64, len(defaultWeights))
	copy(weights, defaultWeights)

	return Configuration{
		IssueProportion: defaultIssueProportion,
		FeeRate:         defaultFeeRate,
		FeeToStakers:    defaultFeeToStakers,
		MemoLimit:       defaultMemoLimit,
		UpdateInterval:  defaultUpdateInterval,
		BoostInterval:   defaultBoostInterval,
		BoostCount:      defaultBoostCount,
		Lambda:          defaultLambda,
		Divisor:         defaultDivisor,
		Durations:       durations,
		Weights:         weights,
	}
}

// Default - parameters built from DefaultConfiguration
func Default() *Parameters {
	c := DefaultConfiguration()
	p, err := New(&c)
	fault.PanicIfError("parameter.Default", err)
	return p
}

// New - validate a configuration and precompute the decay table
func New(configuration *Configuration) (*Parameters, error) {
	issue, err := RatioFromString(configuration.IssueProportion)
	if nil != err {
		return nil, err
	}
	feeRate, err := RatioFromString(configuration.FeeRate)
	if nil != err {
		return nil, err
	}
	feeToStakers, err := RatioFromString(configuration.FeeToStakers)
	if nil != err {
		return nil, err
	}
	lambda, err := decimal.NewFromString(configuration.Lambda)
	if nil != err {
		return nil, fault.InvalidParameters
	}

	if configuration.MemoLimit <= 0 ||
		0 == configuration.UpdateInterval ||
		0 == configuration.BoostInterval ||
		0 == configuration.BoostCount ||
		configuration.Divisor <= 0 ||
		0 == len(configuration.Durations) ||
		len(configuration.Durations) != len(configuration.Weights) {
		return nil, fault.InvalidParameters
	}
	for i, d := range configuration.Durations {
		if 0 == d || configuration.Weights[i] <= 0 {
			return nil, fault.InvalidParameters
		}
	}

	p := &Parameters{
		IssueProportion: issue,
		FeeRate:         feeRate,
		FeeToStakers:    feeToStakers,
		MemoLimit:       configuration.MemoLimit,
		UpdateInterval:  configuration.UpdateInterval,
		BoostInterval:   configuration.BoostInterval,
		BoostCount:      configuration.BoostCount,
		Lambda:          lambda,
		Divisor:         configuration.Divisor,
		Durations:       append([]uint64(nil), configuration.Durations...),
		Weights:         append([]int64(nil), configuration.Weights...),
		decay:           make([]decimal.Decimal, configuration.BoostCount),
	}

	for i := uint64(1); i <= p.BoostCount; i += 1 {
		x := lambda.Mul(decimal.New(int64(i), 0))
		e, err := x.ExpTaylor(decayPrecision)
		if nil != err {
			return nil, fault.InvalidParameters
		}
		p.decay[i-1] = e
	}

	return p, nil
}

// StakeCount - number of allowed lock durations
func (p *Parameters) StakeCount() int {
	return len(p.Durations)
}

// Duration - lock time in seconds for a duration index
func (p *Parameters) Duration(index int) (uint64, error) {
	if index < 0 || index >= len(p.Durations) {
		return 0, fault.DurationIndexOutOfRange
	}
	return p.Durations[index], nil
}

// Weight - reward weight for a duration index
func (p *Parameters) Weight(index int) (int64, error) {
	if index < 0 || index >= len(p.Weights) {
		return 0, fault.DurationIndexOutOfRange
	}
	return p.Weights[index], nil
}

// InitialIssue - floor(maxSupply * issueProportion)
func (p *Parameters) InitialIssue(maxSupply int64) int64 {
	return p.IssueProportion.Floor(maxSupply)
}

// BoostReserve - floor((1 - issueProportion) * maxSupply)
func (p *Parameters) BoostReserve(maxSupply int64) int64 {
	return p.IssueProportion.Complement().Floor(maxSupply)
}

// Fee - transaction fee for a transfer amount
func (p *Parameters) Fee(amount int64) int64 {
	return p.FeeRate.Floor(amount)
}

// StakersFee - part of a fee handed to the stakers
func (p *Parameters) StakersFee(fee int64) int64 {
	return p.FeeToStakers.Floor(fee)
}

// Emission - amount minted by boost number n (1 based)
//
// floor(exp(lambda*n) / divisor * reserve), zero outside 1..BoostCount
func (p *Parameters) Emission(n uint64, maxSupply int64) int64 {
	if 0 == n || n > p.BoostCount {
		return 0
	}
	reserve := decimal.New(p.BoostReserve(maxSupply), 0)

	// floor(floor(x) / d) == floor(x / d) for integer d > 0
	scaled := p.decay[n-1].Mul(reserve).Floor().BigInt()
	if !scaled.IsInt64() {
		fault.Panicf("parameter.Emission: overflow boost: %d  max supply: %d", n, maxSupply)
	}
	return scaled.Int64() / p.Divisor
}
