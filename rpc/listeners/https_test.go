// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"math/rand"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/protocoind/fault"
	"github.com/bitmark-inc/protocoind/rpc/fixtures"
	"github.com/bitmark-inc/protocoind/rpc/listeners"
)

type testHandler struct {
	allow map[string][]*net.IPNet
}

func (h *testHandler) RPC(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("RPC"))
}

func (h *testHandler) Details(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Details"))
}

func (h *testHandler) Jobs(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Jobs"))
}

func (h *testHandler) Root(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Root"))
}

func (h *testHandler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

var client *http.Client

func init() {
	customTransport := http.DefaultTransport.(*http.Transport).Clone()
	customTransport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // ignore certificate verification

	client = &http.Client{
		Transport: customTransport,
	}
}

func setupHTTPS(t *testing.T, h *testHandler) int {
	allow := "127.0.0.1/32"
	port := rand.Intn(30000) + 30000

	conf := listeners.HTTPSConfiguration{
		MaximumConnections: 5,
		Listen:             []string{fmt.Sprintf("127.0.0.1:%d", port)},
		Allow: map[string][]string{
			"details": {allow},
			"jobs":    {" " + allow + " "},
		},
	}

	l, err := listeners.NewHTTPS(
		&conf,
		logger.New(fixtures.LogCategory),
		testTLSConfig(t),
		h,
	)
	if err != nil {
		t.Fatalf("NewHTTPS with error: %s", err)
	}

	err = l.Serve()
	if err != nil {
		t.Fatalf("Serve with error: %s", err)
	}
	return port
}

func get(t *testing.T, port int, path string) string {
	url := fmt.Sprintf("https://127.0.0.1:%d%s", port, path)
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("client get with error: %s", err)
	}
	defer resp.Body.Close()

	content, _ := ioutil.ReadAll(resp.Body)
	return string(content)
}

func TestHttpsListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := &testHandler{}
	port := setupHTTPS(t, h)

	assert.Equal(t, "RPC", get(t, port, "/protocoind/rpc"), "wrong RPC call")
	assert.Equal(t, "Details", get(t, port, "/protocoind/details"), "wrong Details call")
	assert.Equal(t, "Jobs", get(t, port, "/protocoind/jobs"), "wrong Jobs call")
	assert.Equal(t, "Root", get(t, port, "/protocoind/"), "wrong Root call")
	assert.Equal(t, "Root", get(t, port, "/"), "wrong Root call")

	assert.Equal(t, 2, len(h.allow), "wrong allow count")
	assert.True(t, h.allow["jobs"][0].Contains(net.ParseIP("127.0.0.1")), "wrong trimmed allow")
}

func TestHttpsListenerWhenNoListen(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	conf := listeners.HTTPSConfiguration{
		MaximumConnections: 5,
	}

	l, err := listeners.NewHTTPS(&conf, logger.New(fixtures.LogCategory), &tls.Config{}, &testHandler{})
	assert.Nil(t, err, "wrong error")
	assert.Nil(t, l, "listener created without listen address")
}

func TestHttpsListenerWhenMaxConnectionCountTooSmall(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	conf := listeners.HTTPSConfiguration{
		MaximumConnections: 0,
		Listen:             []string{"127.0.0.1:1234"},
	}

	_, err := listeners.NewHTTPS(&conf, logger.New(fixtures.LogCategory), &tls.Config{}, &testHandler{})
	assert.Equal(t, fault.MissingParameters, err, "wrong error")
}

func TestHttpsListenerWhenInvalidAllow(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	conf := listeners.HTTPSConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"127.0.0.1:1234"},
		Allow: map[string][]string{
			"details": {"127.0.0.1"},
		},
	}

	_, err := listeners.NewHTTPS(&conf, logger.New(fixtures.LogCategory), &tls.Config{}, &testHandler{})
	assert.NotNil(t, err, "wrong error")
}
