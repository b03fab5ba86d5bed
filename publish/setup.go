// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - ZeroMQ PUB broadcasting of ledger events
//
// every message is sent as a multipart frame: chain name, command,
// then the parameters (principal and JSON event data)
package publish

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/protocoind/background"
	"github.com/bitmark-inc/protocoind/fault"
)

// Configuration - publishing section of the configuration file
type Configuration struct {
	Broadcast []string `gluamapper:"broadcast" json:"broadcast"`
}

type publishData struct {
	sync.RWMutex

	log *logger.L

	brdc broadcaster

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData publishData

// Initialise - bind the broadcast sockets and start the background
// sender
//
// an empty broadcast list disables publishing
func Initialise(configuration *Configuration, chain string) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("publish")
	globalData.log.Info("starting…")

	if 0 == len(configuration.Broadcast) {
		globalData.log.Warn("no broadcast addresses: publishing disabled")
		globalData.initialised = true
		return nil
	}

	err := globalData.brdc.initialise(chain, configuration.Broadcast)
	if nil != err {
		return err
	}

	globalData.initialised = true

	globalData.log.Info("start background…")

	processes := background.Processes{
		&globalData.brdc,
	}
	globalData.background = background.Start(processes, nil)

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.background.Stop()
	globalData.background = nil

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
