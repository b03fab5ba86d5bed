// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"

	"github.com/bitmark-inc/protocoind/account"
	"github.com/bitmark-inc/protocoind/fault"
	"github.com/bitmark-inc/protocoind/messagebus"
)

// Notifier - queues events on the message bus for broadcasting
type Notifier struct{}

// Notify - principal and JSON encoded data as parameters of command
func (Notifier) Notify(principal account.Name, command string, data interface{}) {
	buffer, err := json.Marshal(data)
	fault.PanicIfError("publish.Notify", err)
	messagebus.Bus.Broadcast.Send(command, []byte(principal.String()), buffer)
}
