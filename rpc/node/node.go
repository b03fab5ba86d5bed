// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/protocoind/account"
	"github.com/bitmark-inc/protocoind/counter"
	"github.com/bitmark-inc/protocoind/mode"
	"github.com/bitmark-inc/protocoind/parameter"
	"github.com/bitmark-inc/protocoind/rpc/ratelimit"
	"github.com/bitmark-inc/protocoind/schedule"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Status - node state
type Status interface {
	Contract() account.Name
	Parameters() *parameter.Parameters
	PendingJobs() ([]schedule.Job, error)
}

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Status  Status
	counter *counter.Counter
}

// New - node RPC service, counter is the live RPC connection count
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, status Status) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Status:  status,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain       string         `json:"chain"`
	Mode        string         `json:"mode"`
	Contract    account.Name   `json:"contract"`
	RPCs        uint64         `json:"rpcs"`
	PendingJobs int            `json:"pendingJobs"`
	Staking     []StakingEntry `json:"staking"`
	Version     string         `json:"version"`
	Uptime      string         `json:"uptime"`
}

// StakingEntry - one selectable lock duration
type StakingEntry struct {
	Index    int    `json:"index"`
	Duration uint64 `json:"duration"`
	Weight   int64  `json:"weight"`
}

// Info - return some information about this node
// only enough for clients to determine node state
// for more detail information use HTTP GET requests
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	jobs, err := node.Status.PendingJobs()
	if nil != err {
		return err
	}

	p := node.Status.Parameters()
	staking := make([]StakingEntry, p.StakeCount())
	for i := range staking {
		staking[i] = StakingEntry{
			Index:    i,
			Duration: p.Durations[i],
			Weight:   p.Weights[i],
		}
	}

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.Contract = node.Status.Contract()
	reply.RPCs = node.counter.Uint64()
	reply.PendingJobs = len(jobs)
	reply.Staking = staking
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
