// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - account balances and per symbol supply
//
// balances live in storage.Pool.Balances keyed by owner and symbol
// code, currency statistics in storage.Pool.Stats keyed by symbol
// code.  All changes are made through the caller's transaction so an
// operation either completes or leaves no trace.
//
// the only ways value enters the ledger are Create (initial issue)
// and Mint (scheduled emission); fees move value between accounts
// and never destroy it.
package ledger
