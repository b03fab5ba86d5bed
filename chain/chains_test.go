// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/protocoind/chain"
)

func TestValid(t *testing.T) {
	for _, name := range []string{chain.Live, chain.Testing, chain.Local} {
		assert.True(t, chain.Valid(name), "wrong valid: %s", name)
	}
	for _, name := range []string{"", "bitmark", "LIVE", "local "} {
		assert.False(t, chain.Valid(name), "wrong invalid: %q", name)
	}
}

func TestDatabaseName(t *testing.T) {
	assert.Equal(t, "testing.leveldb", chain.DatabaseName(chain.Testing), "wrong database name")
}
