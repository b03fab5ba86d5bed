// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpccalls - JSON-RPC client for protocoind
package rpccalls

import (
	"crypto/tls"
	"encoding/hex"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"

	"github.com/bitmark-inc/protocoind/rpc/certificate"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a protocoind
//
// the server certificate is normally self signed so it is not
// verified; if fingerprint is given the SHA3-256 of the server
// certificate must match it
func NewClient(connect string, fingerprint string, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	if "" != fingerprint {
		err = checkFingerprint(conn, fingerprint)
		if nil != err {
			conn.Close()
			return nil, err
		}
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the protocoind connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

func checkFingerprint(conn *tls.Conn, fingerprint string) error {
	expected, err := hex.DecodeString(strings.TrimSpace(fingerprint))
	if nil != err || 32 != len(expected) {
		return fmt.Errorf("invalid fingerprint: %q", fingerprint)
	}

	certificates := conn.ConnectionState().PeerCertificates
	if 0 == len(certificates) {
		return fmt.Errorf("server sent no certificate")
	}

	actual := certificate.Fingerprint(certificates[0].Raw)
	if string(actual[:]) != string(expected) {
		return fmt.Errorf("server fingerprint: %x does not match: %x", actual, expected)
	}
	return nil
}

// send one request and decode its reply, showing both if verbose
func (c *Client) call(method string, arguments interface{}, reply interface{}) error {
	c.printJson(method+" Request", arguments)

	err := c.client.Call(method, arguments, reply)
	if nil != err {
		return err
	}

	c.printJson(method+" Reply", reply)
	return nil
}
