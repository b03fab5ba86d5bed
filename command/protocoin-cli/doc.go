// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// protocoin-cli - command line client for protocoind
//
// every sub-command makes one JSON-RPC call over TLS and prints the
// reply as JSON.  Quantities are written with their precision and
// code e.g. "12.5000 TOK"; symbols as "4,TOK".
package main
