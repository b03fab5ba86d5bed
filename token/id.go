// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"encoding/binary"
	"encoding/json"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/protocoind/fault"
)

// Receipt - identifies an applied operation
type Receipt struct {
	ID        string `json:"id"`
	Timestamp uint64 `json:"timestamp"`
}

// base58 of SHA3-256(method, JSON arguments, timestamp)
func newReceipt(method string, now uint64, arguments interface{}) Receipt {
	buffer, err := json.Marshal(arguments)
	fault.PanicIfError("token.newReceipt", err)

	ts := make([]byte, 8)
	binary.BigEndian.PutUint64(ts, now)

	h := sha3.New256()
	h.Write([]byte(method))
	h.Write(buffer)
	h.Write(ts)

	return Receipt{
		ID:        base58.Encode(h.Sum(nil)),
		Timestamp: now,
	}
}
