// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"strings"

	cache "github.com/patrickmn/go-cache"
)

// Cache - uncommitted writes of the current transaction
type Cache interface {
	Get(string) ([]byte, dbOperation, bool)
	Set(dbOperation, string, []byte)
	Prefixed(string) map[string]cacheData
	Clear()
}

type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    dbOperation
	value []byte
}

// staged items must survive until commit or abort
func newCache() Cache {
	return &dbCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Get - the staged value, if any
//
// a staged delete is reported as found with operation dbDelete
func (c *dbCache) Get(key string) ([]byte, dbOperation, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, dbPut, false
	}
	data := obj.(cacheData)
	return data.value, data.op, true
}

func (c *dbCache) Set(op dbOperation, key string, value []byte) {
	cached := cacheData{
		op:    op,
		value: value,
	}
	c.cache.Set(key, cached, cache.NoExpiration)
}

// Prefixed - all staged items whose key starts with prefix
func (c *dbCache) Prefixed(prefix string) map[string]cacheData {
	result := make(map[string]cacheData)
	for k, item := range c.cache.Items() {
		if strings.HasPrefix(k, prefix) {
			result[k] = item.Object.(cacheData)
		}
	}
	return result
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
