// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/protocoind/fault"
	"github.com/bitmark-inc/protocoind/messagebus"
	"github.com/bitmark-inc/protocoind/util"
)

// listener buffer on the message bus
const queueSize = 1000

type broadcaster struct {
	log     *logger.L
	chain   string
	socket4 *zmq.Socket
	socket6 *zmq.Socket
	queue   <-chan messagebus.Message
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(chain string, broadcast []string) error {

	log := logger.New("broadcaster")
	if nil == log {
		return fault.InvalidLoggerChannel
	}
	brdc.log = log
	brdc.chain = chain

	log.Info("initialising…")

	c, err := util.NewConnections(broadcast)
	if nil != err {
		log.Errorf("ip and port error: %s", err)
		return err
	}

	// separate IPv4 and IPv6 sockets
	for _, address := range c {
		bindTo, v6 := address.CanonicalIPandPort("tcp://")
		socket := brdc.socket4
		if v6 {
			socket = brdc.socket6
		}
		if nil == socket {
			socket, err = newPublisher(v6)
			if nil != err {
				brdc.close()
				return err
			}
			if v6 {
				brdc.socket6 = socket
			} else {
				brdc.socket4 = socket
			}
		}

		err = socket.Bind(bindTo)
		if nil != err {
			log.Errorf("bind: %q  error: %s", bindTo, err)
			brdc.close()
			return err
		}
		log.Infof("bind: %q", bindTo)
	}

	// start listening now so nothing sent before Run is lost
	brdc.queue = messagebus.Bus.Broadcast.Chan(queueSize)

	return nil
}

func newPublisher(v6 bool) (*zmq.Socket, error) {
	socket, err := zmq.NewSocket(zmq.PUB)
	if nil != err {
		return nil, err
	}
	err = socket.SetLinger(0)
	if nil == err {
		err = socket.SetIpv6(v6)
	}
	if nil != err {
		socket.Close()
		return nil, err
	}
	return socket, nil
}

// Run - forward every bus message to the sockets
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-brdc.queue:
			log.Debugf("sending: %s  data: %x", item.Command, item.Parameters)
			brdc.process(brdc.socket4, &item)
			brdc.process(brdc.socket6, &item)
		}
	}

	messagebus.Bus.Broadcast.Release(brdc.queue)
	brdc.close()
	log.Info("stopped")
}

func (brdc *broadcaster) close() {
	if nil != brdc.socket4 {
		brdc.socket4.Close()
		brdc.socket4 = nil
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
		brdc.socket6 = nil
	}
}

// send one multipart message
//
// PUB sockets drop rather than block, so an error here is only logged
func (brdc *broadcaster) process(socket *zmq.Socket, item *messagebus.Message) {
	if nil == socket {
		return
	}

	_, err := socket.Send(brdc.chain, zmq.SNDMORE|zmq.DONTWAIT)
	if nil == err {
		flags := zmq.DONTWAIT
		if len(item.Parameters) > 0 {
			flags |= zmq.SNDMORE
		}
		_, err = socket.Send(item.Command, flags)
	}

	last := len(item.Parameters) - 1
	for i, p := range item.Parameters {
		if nil != err {
			break
		}
		if i == last {
			_, err = socket.SendBytes(p, zmq.DONTWAIT)
		} else {
			_, err = socket.SendBytes(p, zmq.SNDMORE|zmq.DONTWAIT)
		}
	}
	if nil != err {
		brdc.log.Errorf("send: %s  error: %s", item.Command, err)
	}
}
