// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - number of open client connections, safe for concurrent use
type Counter uint64

// Increment - returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Decrement - returns new value
func (ic *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(ic), ^uint64(0))
}

// Uint64 - current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// Acquire - increment, and if the result would exceed maximum undo
// it and return false
func (ic *Counter) Acquire(maximum uint64) bool {
	if ic.Increment() <= maximum {
		return true
	}
	ic.Decrement()
	return false
}
