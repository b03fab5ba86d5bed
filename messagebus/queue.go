// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// default listener buffer
const defaultQueueSize = 1000

// Message - a command and its parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// BroadcastQueue - every listener receives every message sent while
// it is listening
type BroadcastQueue struct {
	sync.RWMutex
	listeners []chan Message
}

// Bus - the set of queues
var Bus = struct {
	Broadcast *BroadcastQueue
}{
	Broadcast: &BroadcastQueue{},
}

// Send - queue a message for all current listeners
//
// a listener whose buffer is full misses the message, sending never
// blocks
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {
	m := Message{
		Command:    command,
		Parameters: parameters,
	}

	queue.RLock()
	defer queue.RUnlock()

	for _, c := range queue.listeners {
		select {
		case c <- m:
		default:
		}
	}
}

// Chan - register a new listener, size <= 0 selects the default
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size <= 0 {
		size = defaultQueueSize
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.listeners = append(queue.listeners, c)
	queue.Unlock()

	return c
}

// Release - remove a listener and close its channel
func (queue *BroadcastQueue) Release(c <-chan Message) {
	queue.Lock()
	defer queue.Unlock()

	for i, l := range queue.listeners {
		if (<-chan Message)(l) == c {
			close(l)
			queue.listeners = append(queue.listeners[:i], queue.listeners[i+1:]...)
			return
		}
	}
}

// Listeners - number of registered listeners
func (queue *BroadcastQueue) Listeners() int {
	queue.RLock()
	defer queue.RUnlock()
	return len(queue.listeners)
}
