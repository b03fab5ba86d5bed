// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/protocoind/fault"
	"github.com/bitmark-inc/protocoind/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(rate.Inf, 1)
	assert.Nil(t, ratelimit.Limit(limiter), "wrong limit")
}

func TestLimitWhenBurstIsZero(t *testing.T) {
	limiter := rate.NewLimiter(10, 0)
	assert.Equal(t, fault.RateLimiting, ratelimit.Limit(limiter), "wrong limit")
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(1000, 100)

	assert.Nil(t, ratelimit.LimitN(limiter, 10, 20), "wrong count in range")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(limiter, 0, 20), "wrong zero count")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(limiter, 21, 20), "wrong count over maximum")
}

func TestLimitNOverBurst(t *testing.T) {
	limiter := rate.NewLimiter(1000, 5)
	assert.Equal(t, fault.RateLimiting, ratelimit.LimitN(limiter, 10, 20), "wrong count over burst")
}
