// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schedule

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/protocoind/account"
	"github.com/bitmark-inc/protocoind/asset"
	"github.com/bitmark-inc/protocoind/fault"
)

// Operation - what a job does when it becomes due
type Operation byte

// known operations
const (
	Update Operation = 1
)

// String - for logging
func (op Operation) String() string {
	switch op {
	case Update:
		return "update"
	default:
		return fmt.Sprintf("operation(%d)", byte(op))
	}
}

// RequestID - identifies a deferred call
type RequestID [32]byte

// String - hex text
func (id RequestID) String() string {
	return hex.EncodeToString(id[:])
}

// MarshalText - hex text for JSON
func (id RequestID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - inverse of MarshalText
func (id *RequestID) UnmarshalText(s []byte) error {
	if hex.DecodedLen(len(s)) != len(id) {
		return fault.InvalidRequestID
	}
	_, err := hex.Decode(id[:], s)
	return err
}

// NewRequestID - SHA3-256 of the contract name, the symbol and a
// timestamp, all big endian
//
// jobs for different symbols armed in the same second must not share
// a key
func NewRequestID(contract account.Name, symbol asset.Symbol, now uint64) RequestID {
	buffer := make([]byte, 24)
	copy(buffer, contract.Bytes())
	binary.BigEndian.PutUint64(buffer[8:], uint64(symbol))
	binary.BigEndian.PutUint64(buffer[16:], now)
	return RequestID(sha3.Sum256(buffer))
}

// Job - a pending deferred call
type Job struct {
	Due       uint64       `json:"due"`
	RequestID RequestID    `json:"request_id"`
	Operation Operation    `json:"operation"`
	Symbol    asset.Symbol `json:"symbol"`
}

const (
	jobKeyLength   = 8 + 32
	jobValueLength = 1 + 8
)

// due first so that key order is execution order
func (job *Job) key() []byte {
	key := make([]byte, jobKeyLength)
	binary.BigEndian.PutUint64(key, job.Due)
	copy(key[8:], job.RequestID[:])
	return key
}

func (job *Job) value() []byte {
	value := make([]byte, jobValueLength)
	value[0] = byte(job.Operation)
	binary.BigEndian.PutUint64(value[1:], uint64(job.Symbol))
	return value
}

func unpackJob(key []byte, value []byte) (*Job, error) {
	if jobKeyLength != len(key) || jobValueLength != len(value) {
		return nil, fault.RecordTruncated
	}
	job := &Job{
		Due:       binary.BigEndian.Uint64(key),
		Operation: Operation(value[0]),
		Symbol:    asset.Symbol(binary.BigEndian.Uint64(value[1:])),
	}
	copy(job.RequestID[:], key[8:])
	return job, nil
}
