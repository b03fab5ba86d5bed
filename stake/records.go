// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake

import (
	"encoding/binary"

	"github.com/bitmark-inc/protocoind/account"
	"github.com/bitmark-inc/protocoind/asset"
	"github.com/bitmark-inc/protocoind/fault"
)

// Position - a quantity locked from start for the duration at
// DurationIndex
type Position struct {
	ID            uint64      `json:"id"`
	Quantity      asset.Asset `json:"quantity"`
	Start         uint64      `json:"start"`
	DurationIndex int         `json:"duration_index"`
}

const positionLength = asset.PackedLength + 8 + 8

// Stat - aggregate of one staker's live positions in one symbol
type Stat struct {
	Staker      account.Name `json:"staker"`
	TotalStake  asset.Asset  `json:"total_stake"`
	StakeWeight int64        `json:"stake_weight"`
}

const statLength = asset.PackedLength + 8

// key: staker code id
func positionKey(staker account.Name, code asset.SymbolCode, id uint64) []byte {
	key := make([]byte, 0, 24)
	key = append(key, staker.Bytes()...)
	key = append(key, code.Bytes()...)
	n := make([]byte, 8)
	binary.BigEndian.PutUint64(n, id)
	return append(key, n...)
}

// key: code staker, so one symbol's stakers are contiguous
func statKey(code asset.SymbolCode, staker account.Name) []byte {
	return append(code.Bytes(), staker.Bytes()...)
}

func (p *Position) pack() []byte {
	buffer := make([]byte, positionLength)
	copy(buffer, p.Quantity.Pack())
	binary.BigEndian.PutUint64(buffer[asset.PackedLength:], p.Start)
	binary.BigEndian.PutUint64(buffer[asset.PackedLength+8:], uint64(p.DurationIndex))
	return buffer
}

func unpackPosition(key []byte, buffer []byte) (*Position, error) {
	if 24 != len(key) || positionLength != len(buffer) {
		return nil, fault.RecordTruncated
	}
	quantity, n, err := asset.Unpack(buffer)
	if nil != err {
		return nil, err
	}
	return &Position{
		ID:            binary.BigEndian.Uint64(key[16:]),
		Quantity:      quantity,
		Start:         binary.BigEndian.Uint64(buffer[n:]),
		DurationIndex: int(binary.BigEndian.Uint64(buffer[n+8:])),
	}, nil
}

func (s *Stat) pack() []byte {
	buffer := make([]byte, statLength)
	copy(buffer, s.TotalStake.Pack())
	binary.BigEndian.PutUint64(buffer[asset.PackedLength:], uint64(s.StakeWeight))
	return buffer
}

func unpackStat(staker account.Name, buffer []byte) (*Stat, error) {
	if statLength != len(buffer) {
		return nil, fault.RecordTruncated
	}
	total, n, err := asset.Unpack(buffer)
	if nil != err {
		return nil, err
	}
	weight := int64(binary.BigEndian.Uint64(buffer[n:]))
	if total.Amount <= 0 || weight <= 0 {
		return nil, fault.RecordCorrupt
	}
	return &Stat{
		Staker:      staker,
		TotalStake:  total,
		StakeWeight: weight,
	}, nil
}
