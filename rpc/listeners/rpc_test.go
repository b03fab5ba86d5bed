// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/protocoind/counter"
	"github.com/bitmark-inc/protocoind/fault"
	"github.com/bitmark-inc/protocoind/rpc/certificate"
	"github.com/bitmark-inc/protocoind/rpc/fixtures"
	"github.com/bitmark-inc/protocoind/rpc/listeners"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func testTLSConfig(t *testing.T) *tls.Config {
	cer, key := fixtures.CertificateAndKey()
	tlsConfig, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", cer, key)
	if nil != err {
		t.Fatalf("get certificate with error: %s", err)
	}
	return tlsConfig
}

func TestRpcListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port := rand.Intn(30000) + 30000
	listen := fmt.Sprintf("127.0.0.1:%d", port)
	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Bandwidth:          10000000,
		Listen:             []string{listen},
	}

	count := counter.Counter(0)

	s := rpc.NewServer()
	err := s.Register(Add{})
	if err != nil {
		t.Fatalf("register with error: %s", err)
	}

	l, err := listeners.NewRPC(
		&con,
		logger.New(fixtures.LogCategory),
		&count,
		s,
		testTLSConfig(t),
	)
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")

	c, err := tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	if err != nil {
		t.Fatalf("dial with error: %s", err)
	}

	arg := AddArg{
		A: 2,
		B: 5,
	}
	var reply int

	client := jsonrpc.NewClient(c)
	defer client.Close()

	err = client.Call("Add.Add", &arg, &reply)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, arg.A+arg.B, reply, "wrong result")
	assert.Equal(t, uint64(1), count.Uint64(), "wrong connection count")
}

func TestRpcListenerRejectsOverLimit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port := rand.Intn(30000) + 30000
	listen := fmt.Sprintf("127.0.0.1:%d", port)
	con := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Bandwidth:          10000000,
		Listen:             []string{listen},
	}

	count := counter.Counter(1) // already at the limit

	s := rpc.NewServer()
	_ = s.Register(Add{})

	l, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, s, testTLSConfig(t))
	assert.Nil(t, err, "wrong NewRPC")
	assert.Nil(t, l.Serve(), "wrong Serve")

	c, err := tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		// rejected during handshake
		return
	}
	client := jsonrpc.NewClient(c)
	defer client.Close()

	done := make(chan error, 1)
	go func() {
		var reply int
		done <- client.Call("Add.Add", &AddArg{A: 1, B: 1}, &reply)
	}()

	select {
	case err := <-done:
		assert.NotNil(t, err, "call over connection limit succeeded")
	case <-time.After(5 * time.Second):
		t.Error("call over connection limit did not fail")
	}
	assert.Equal(t, uint64(1), count.Uint64(), "wrong connection count")
}

func TestRpcListenerWhenMaxConnectionCountTooSmall(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 0,
		Bandwidth:          10000000,
		Listen:             []string{"127.0.0.1:1234"},
	}

	count := counter.Counter(0)

	_, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), &tls.Config{})
	assert.Equal(t, fault.MissingParameters, err, "wrong error")
}

func TestRpcListenerWhenBandwidthTooSmall(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Bandwidth:          100,
		Listen:             []string{"127.0.0.1:1234"},
	}

	count := counter.Counter(0)

	_, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), &tls.Config{})
	assert.Equal(t, fault.MissingParameters, err, "wrong error")
}

func TestRpcListenerWhenEmptyListen(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Bandwidth:          10000000,
		Listen:             []string{},
	}

	count := counter.Counter(0)

	_, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), &tls.Config{})
	assert.Equal(t, fault.MissingParameters, err, "wrong error")
}

func TestRpcListenerWhenInvalidListen(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	count := counter.Counter(0)

	for _, listen := range []string{"1", "", "localhost:1234"} {
		con := listeners.RPCConfiguration{
			MaximumConnections: 5,
			Bandwidth:          10000000,
			Listen:             []string{listen},
		}

		_, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), &tls.Config{})
		assert.Equal(t, fault.InvalidIPAddress, err, "wrong error for: %q", listen)
	}
}

func TestRpcListenerWhenListenAllOrIPv6(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	count := counter.Counter(0)

	for _, listen := range []string{"*:1234", "[::1]:1234"} {
		con := listeners.RPCConfiguration{
			MaximumConnections: 5,
			Bandwidth:          10000000,
			Listen:             []string{listen},
		}

		_, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), &tls.Config{})
		assert.Nil(t, err, "wrong NewRPC for: %q", listen)
		assert.Equal(t, listen, con.Listen[0], "configuration was modified")
	}
}
