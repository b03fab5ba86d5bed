// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package token - the operations and queries of a protocoin contract
//
// the Executor applies operations strictly one at a time, each in
// its own storage transaction that is committed only if the whole
// operation succeeds.  Notifications are sent after the commit.
package token
