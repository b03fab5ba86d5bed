// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/protocoind/account"
	"github.com/bitmark-inc/protocoind/asset"
	"github.com/bitmark-inc/protocoind/fault"
)

// Balance - one row of the balances pool
type Balance struct {
	Asset asset.Asset  `json:"balance"`
	Payer account.Name `json:"payer"`
}

const balanceLength = asset.PackedLength + 8

// Stats - currency statistics for one symbol
type Stats struct {
	Supply       asset.Asset  `json:"supply"`
	MaxSupply    asset.Asset  `json:"max_supply"`
	Created      uint64       `json:"created"`
	Updated      uint64       `json:"updated"`
	BoostsIssued uint64       `json:"boosts_issued"`
	Issuer       account.Name `json:"issuer"`
}

const statsLength = 2*asset.PackedLength + 4*8

func balanceKey(owner account.Name, code asset.SymbolCode) []byte {
	return append(owner.Bytes(), code.Bytes()...)
}

// Pack - asset then payer
func (b *Balance) Pack() []byte {
	buffer := make([]byte, 0, balanceLength)
	buffer = append(buffer, b.Asset.Pack()...)
	return append(buffer, b.Payer.Bytes()...)
}

// UnpackBalance - decode a balance row
func UnpackBalance(buffer []byte) (*Balance, error) {
	if len(buffer) != balanceLength {
		return nil, fault.RecordTruncated
	}
	a, n, err := asset.Unpack(buffer)
	if nil != err {
		return nil, err
	}
	payer, err := account.NameFromBytes(buffer[n:])
	if nil != err {
		return nil, fault.RecordCorrupt
	}
	return &Balance{
		Asset: a,
		Payer: payer,
	}, nil
}

// Pack - fixed layout, all integers big endian
func (s *Stats) Pack() []byte {
	buffer := make([]byte, 0, statsLength)
	buffer = append(buffer, s.Supply.Pack()...)
	buffer = append(buffer, s.MaxSupply.Pack()...)

	n := make([]byte, 8)
	for _, v := range []uint64{s.Created, s.Updated, s.BoostsIssued} {
		binary.BigEndian.PutUint64(n, v)
		buffer = append(buffer, n...)
	}
	return append(buffer, s.Issuer.Bytes()...)
}

// UnpackStats - decode a stats row
func UnpackStats(buffer []byte) (*Stats, error) {
	if len(buffer) != statsLength {
		return nil, fault.RecordTruncated
	}
	supply, n, err := asset.Unpack(buffer)
	if nil != err {
		return nil, err
	}
	buffer = buffer[n:]

	maxSupply, n, err := asset.Unpack(buffer)
	if nil != err {
		return nil, err
	}
	buffer = buffer[n:]

	if supply.Symbol != maxSupply.Symbol || supply.Amount < 0 || supply.Amount > maxSupply.Amount {
		return nil, fault.RecordCorrupt
	}

	s := &Stats{
		Supply:       supply,
		MaxSupply:    maxSupply,
		Created:      binary.BigEndian.Uint64(buffer[0:8]),
		Updated:      binary.BigEndian.Uint64(buffer[8:16]),
		BoostsIssued: binary.BigEndian.Uint64(buffer[16:24]),
	}
	s.Issuer, err = account.NameFromBytes(buffer[24:32])
	if nil != err {
		return nil, fault.RecordCorrupt
	}
	return s, nil
}
