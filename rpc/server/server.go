// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/protocoind/counter"
	"github.com/bitmark-inc/protocoind/mode"
	"github.com/bitmark-inc/protocoind/rpc/accounts"
	"github.com/bitmark-inc/protocoind/rpc/node"
	"github.com/bitmark-inc/protocoind/rpc/query"
	"github.com/bitmark-inc/protocoind/rpc/tokens"
)

// Backend - everything the services call
type Backend interface {
	tokens.Executor
	accounts.Registrar
	query.Reader
	node.Status
}

// Create - JSON-RPC server with the Token, Account, Query and Node
// services registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, backend Backend) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(tokens.New(log, mode.Is, backend))
	_ = server.Register(accounts.New(log, mode.Is, backend))
	_ = server.Register(query.New(log, backend))
	_ = server.Register(node.New(log, start, version, rpcCount, backend))

	return server
}
