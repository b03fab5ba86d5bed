// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"encoding/binary"
	"sort"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/protocoind/fault"
)

// Transaction - all-or-nothing group of pool writes
//
// reads see the writes already staged in the same transaction
type Transaction interface {
	Begin() error
	Commit() error
	Abort()
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Map(*PoolHandle, []byte, func(key []byte, value []byte) error) error
}

type transaction struct {
	sync.Mutex
	inUse  bool
	access DataAccess
	cache  Cache
}

func newTransaction(access DataAccess, cache Cache) Transaction {
	return &transaction{
		inUse:  false,
		access: access,
		cache:  cache,
	}
}

// Begin - start staging
func (t *transaction) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionInUse
	}
	t.inUse = true
	t.access.Begin()
	t.cache.Clear()

	return nil
}

// Commit - write all staged items atomically
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.TransactionNotInUse
	}
	err := t.access.Commit()
	t.cache.Clear()
	t.inUse = false

	return err
}

// Abort - discard all staged items
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()

	t.access.Begin()
	t.cache.Clear()
	t.inUse = false
}

// InUse - true between Begin and Commit/Abort
func (t *transaction) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}

func (t *transaction) Put(handle *PoolHandle, key []byte, value []byte) {
	k := handle.prefixKey(key)
	v := make([]byte, len(value))
	copy(v, value)
	t.cache.Set(dbPut, string(k), v)
	t.access.Put(k, v)
}

func (t *transaction) PutN(handle *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.Put(handle, key, buffer)
}

func (t *transaction) Delete(handle *PoolHandle, key []byte) {
	k := handle.prefixKey(key)
	t.cache.Set(dbDelete, string(k), nil)
	t.access.Delete(k)
}

// Get - staged value first, then the database; nil if absent
func (t *transaction) Get(handle *PoolHandle, key []byte) []byte {
	k := handle.prefixKey(key)
	if value, op, found := t.cache.Get(string(k)); found {
		if dbDelete == op {
			return nil
		}
		return value
	}

	value, err := t.access.Get(k)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

// GetN - decode first 8 bytes as big endian uint64
func (t *transaction) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	buffer := t.Get(handle, key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("transaction.GetN truncated record for: %x: %x", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

func (t *transaction) Has(handle *PoolHandle, key []byte) bool {
	return nil != t.Get(handle, key)
}

// Map - call f in ascending key order for every key in the pool
// starting with keyPrefix, merging staged writes with the database
//
// the key passed to f has the pool prefix removed; iteration stops at
// the first error, which is returned
func (t *transaction) Map(handle *PoolHandle, keyPrefix []byte, f func(key []byte, value []byte) error) error {
	fullPrefix := handle.prefixKey(keyPrefix)

	merged := make(map[string][]byte)

	iter := t.access.Iterator(ldb_util.BytesPrefix(fullPrefix))
	for iter.Next() {
		value := make([]byte, len(iter.Value()))
		copy(value, iter.Value())
		merged[string(iter.Key())] = value
	}
	iter.Release()
	if err := iter.Error(); nil != err {
		return err
	}

	for k, data := range t.cache.Prefixed(string(fullPrefix)) {
		if dbDelete == data.op {
			delete(merged, k)
		} else {
			merged[k] = data.value
		}
	}

	keys := make([][]byte, 0, len(merged))
	for k := range merged {
		keys = append(keys, []byte(k))
	}
	sort.Slice(keys, func(i, j int) bool {
		return bytes.Compare(keys[i], keys[j]) < 0
	})

	for _, k := range keys {
		err := f(k[1:], merged[string(k)])
		if nil != err {
			return err
		}
	}
	return nil
}
