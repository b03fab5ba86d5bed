// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - token quantities
//
// a Symbol is a precision and an upper case ticker code packed into
// 64 bits; an Asset is a signed amount of the smallest unit of one
// symbol.  Assets only combine when their symbols are identical.
package asset
