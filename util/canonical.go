// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/protocoind/fault"
)

// Connection - a canonical IP and port
type Connection struct {
	ip   net.IP
	port int
}

// NewConnection - parse host:port, the host must be a numeric IP
//
// examples:
//   IPv4:  127.0.0.1:1234
//   IPv6:  [::1]:1234
func NewConnection(hostPort string) (*Connection, error) {
	host, port, err := net.SplitHostPort(strings.TrimSpace(hostPort))
	if nil != err {
		return nil, fault.InvalidIPAddress
	}

	ip := net.ParseIP(strings.TrimSpace(host))
	if nil == ip {
		return nil, fault.InvalidIPAddress
	}

	numericPort, err := strconv.Atoi(strings.TrimSpace(port))
	if nil != err || numericPort < 1 || numericPort > 65535 {
		return nil, fault.InvalidPortNumber
	}

	return &Connection{
		ip:   ip,
		port: numericPort,
	}, nil
}

// NewConnections - convert a list of host:port
func NewConnections(hostPorts []string) ([]*Connection, error) {
	if 0 == len(hostPorts) {
		return nil, fault.MissingParameters
	}
	c := make([]*Connection, len(hostPorts))
	for i, hostPort := range hostPorts {
		var err error
		c[i], err = NewConnection(hostPort)
		if nil != err {
			return nil, err
		}
	}
	return c, nil
}

// CanonicalIPandPort - text form with an optional prefix such as
// "tcp://", and whether the address is IPv6
func (c *Connection) CanonicalIPandPort(prefix string) (string, bool) {
	port := strconv.Itoa(c.port)
	if nil != c.ip.To4() {
		return prefix + c.ip.String() + ":" + port, false
	}
	return prefix + "[" + c.ip.String() + "]:" + port, true
}

// String - canonical host:port
func (c *Connection) String() string {
	s, _ := c.CanonicalIPandPort("")
	return s
}
