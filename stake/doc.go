// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stake - time locked stake positions and their weights
//
// every position is stored under staker, symbol code and id.  A
// per symbol aggregate (total stake and weighted power) is kept for
// every staker with live positions; it is updated incrementally when
// a position is added and rebuilt from the survivors whenever
// matured positions are swept.
package stake
