// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package parameter - immutable economic constants
//
// every proportion is an exact ratio of integers and every product is
// rounded down, so that all nodes replaying the same operations reach
// the same balances.  The emission decay curve is evaluated once with
// fixed precision decimal arithmetic and cached as a table.
package parameter
