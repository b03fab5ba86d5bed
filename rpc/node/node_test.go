// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/protocoind/account"
	"github.com/bitmark-inc/protocoind/chain"
	"github.com/bitmark-inc/protocoind/counter"
	"github.com/bitmark-inc/protocoind/mode"
	"github.com/bitmark-inc/protocoind/parameter"
	"github.com/bitmark-inc/protocoind/rpc/fixtures"
	"github.com/bitmark-inc/protocoind/rpc/mocks"
	"github.com/bitmark-inc/protocoind/rpc/node"
	"github.com/bitmark-inc/protocoind/schedule"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	_ = mode.Initialise(chain.Testing)
	defer mode.Finalise()

	contract, _ := account.NameFromString("protocoin")
	params := parameter.Default()

	s := mocks.NewMockStatus(ctl)
	s.EXPECT().PendingJobs().Return([]schedule.Job{{Due: 60}}, nil).Times(1)
	s.EXPECT().Parameters().Return(params).Times(1)
	s.EXPECT().Contract().Return(contract).Times(1)

	c := counter.Counter(5)

	n := node.New(
		logger.New(fixtures.LogCategory),
		time.Now(),
		"100",
		&c,
		s,
	)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, chain.Testing, reply.Chain, "wrong chain")
	assert.Equal(t, mode.Starting.String(), reply.Mode, "wrong mode")
	assert.Equal(t, contract, reply.Contract, "wrong contract")
	assert.Equal(t, c.Uint64(), reply.RPCs, "wrong connection count")
	assert.Equal(t, 1, reply.PendingJobs, "wrong pending jobs")
	assert.Equal(t, n.Version, reply.Version, "wrong version")
	assert.Equal(t, params.StakeCount(), len(reply.Staking), "wrong staking count")
	assert.Equal(t, params.Durations[3], reply.Staking[3].Duration, "wrong duration")
	assert.Equal(t, params.Weights[3], reply.Staking[3].Weight, "wrong weight")
}

func TestNodeInfoWhenJobsFail(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockStatus(ctl)
	s.EXPECT().PendingJobs().Return(nil, fmt.Errorf("fake error")).Times(1)

	c := counter.Counter(0)
	n := node.New(logger.New(fixtures.LogCategory), time.Now(), "100", &c, s)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.NotNil(t, err, "wrong Info")
}
