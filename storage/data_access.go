// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// DataAccess - committed reads plus a write batch
type DataAccess interface {
	Begin()
	Put([]byte, []byte)
	Delete([]byte)
	Commit() error
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	Iterator(*ldb_util.Range) iterator.Iterator
}

type dataAccess struct {
	db    *leveldb.DB
	batch *leveldb.Batch
}

func newDataAccess(db *leveldb.DB, batch *leveldb.Batch) DataAccess {
	return &dataAccess{
		db:    db,
		batch: batch,
	}
}

// Begin - discard anything staged
func (d *dataAccess) Begin() {
	d.batch.Reset()
}

func (d *dataAccess) Put(key []byte, value []byte) {
	d.batch.Put(key, value)
}

func (d *dataAccess) Delete(key []byte) {
	d.batch.Delete(key)
}

// Commit - write the staged batch atomically
func (d *dataAccess) Commit() error {
	err := d.db.Write(d.batch, nil)
	d.batch.Reset()
	return err
}

func (d *dataAccess) Get(key []byte) ([]byte, error) {
	return d.db.Get(key, nil)
}

func (d *dataAccess) Has(key []byte) (bool, error) {
	return d.db.Has(key, nil)
}

func (d *dataAccess) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}
