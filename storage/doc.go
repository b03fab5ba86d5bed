// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ++        = concatenation of byte data
// 3. name      = account name as big endian uint64 (8 bytes)
// 4. code      = symbol code as big endian uint64 (8 bytes)
// 5. asset     = amount(8) ++ symbol(8), both big endian
// 6. time      = seconds as big endian uint64 (8 bytes)
// 7. id, count = big endian uint64 (8 bytes)
//
// Accounts:
//
//   A ++ name                  - registered account
//                                data: registration time
//
// Balances:
//
//   B ++ name ++ code          - balance of one symbol held by an account
//                                data: asset ++ payer name
//
// Jobs:
//
//   J ++ due time ++ request   - deferred self call, request is SHA3-256(contract ++ time)
//                                data: operation(1) ++ symbol(8)
//
// Stakes:
//
//   N ++ name                  - next stake position id for a staker
//                                data: count
//   P ++ name ++ code ++ id    - one stake position
//                                data: asset ++ start time ++ duration index
//   W ++ code ++ name          - aggregate stake of one staker for one symbol
//                                data: asset ++ weight
//
// Currency:
//
//   S ++ code                  - currency statistics
//                                data: supply asset ++ max supply asset ++ created ++ updated ++ boosts ++ issuer
//
// All writes go through a Transaction which stages them in a batch
// and an in-memory overlay until Commit; Abort discards both.
package storage
