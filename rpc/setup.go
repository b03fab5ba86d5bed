// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/protocoind/counter"
	"github.com/bitmark-inc/protocoind/fault"
	"github.com/bitmark-inc/protocoind/rpc/certificate"
	"github.com/bitmark-inc/protocoind/rpc/handler"
	"github.com/bitmark-inc/protocoind/rpc/listeners"
	"github.com/bitmark-inc/protocoind/rpc/server"
)

const (
	rpcName   = "client_rpc"
	httpsName = "https_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	// number of open JSON-RPC connections
	connections counter.Counter

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the JSON-RPC and HTTPS listeners
func Initialise(
	rpcConfiguration *listeners.RPCConfiguration,
	httpsConfiguration *listeners.HTTPSConfiguration,
	version string,
	backend server.Backend,
) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, _, err := certificate.Get(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	s := server.Create(log, version, &globalData.connections, backend)

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&globalData.connections,
		s,
		tlsConfig,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}

	if 0 != len(httpsConfiguration.Listen) {
		httpsTLS, _, err := certificate.Get(log, httpsName, httpsConfiguration.Certificate, httpsConfiguration.PrivateKey)
		if nil != err {
			return err
		}

		hdlr := handler.New(log, s, backend, time.Now(), version, httpsConfiguration.MaximumConnections)
		httpsListener, err := listeners.NewHTTPS(httpsConfiguration, log, httpsTLS, hdlr)
		if nil != err {
			return err
		}
		err = httpsListener.Serve()
		if nil != err {
			return err
		}
	} else {
		log.Infof("disable: %s", httpsName)
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// ConnectionCount - open JSON-RPC connections
func ConnectionCount() uint64 {
	return globalData.connections.Uint64()
}
