// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/protocoind/account"
	"github.com/bitmark-inc/protocoind/chain"
	"github.com/bitmark-inc/protocoind/configuration"
	"github.com/bitmark-inc/protocoind/fault"
	"github.com/bitmark-inc/protocoind/parameter"
)

const fullConfiguration = `
local M = {}

M.data_directory = "."
M.pidfile = "protocoind.pid"
M.chain = "Local"
M.contract = "token"

M.economics = {
    update_interval = 30,
    durations = { 10, 20 },
    weights = { 5, 10 },
}

M.client_rpc = {
    maximum_connections = 5,
    bandwidth = 30000000,
    listen = { "127.0.0.1:2130" },
}

M.https_rpc = {
    listen = { "127.0.0.1:2131" },
    allow = {
        details = { "127.0.0.1/32", "::1/128" },
    },
}

M.publishing = {
    broadcast = { "127.0.0.1:2135" },
}

M.logging = {
    size = 4096,
    levels = {
        DEFAULT = "info",
        rpc = "debug",
    },
}

return M
`

func writeConfiguration(t *testing.T, text string) (string, string) {
	dir, err := ioutil.TempDir("", "protocoind-configuration")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	fileName := filepath.Join(dir, "protocoind.conf")
	err = ioutil.WriteFile(fileName, []byte(text), 0600)
	if nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return dir, fileName
}

func TestGetConfiguration(t *testing.T) {
	dir, fileName := writeConfiguration(t, fullConfiguration)
	defer os.RemoveAll(dir)

	conf, err := configuration.GetConfiguration(fileName)
	assert.Nil(t, err, "wrong GetConfiguration")

	assert.Equal(t, chain.Local, conf.Chain, "wrong chain")
	assert.Equal(t, fileName, conf.FileName, "wrong file name")
	assert.Equal(t, filepath.Join(dir, "protocoind.pid"), conf.PidFile, "wrong pid file")
	assert.Equal(t, filepath.Join(dir, "data"), conf.Database.Directory, "wrong database directory")
	assert.Equal(t, filepath.Join(dir, "data", "local.leveldb"), conf.Database.Name, "wrong database name")

	expected, _ := account.NameFromString("token")
	assert.Equal(t, expected, conf.ContractName(), "wrong contract")

	assert.Equal(t, uint64(30), conf.Economics.UpdateInterval, "wrong update interval")
	assert.Equal(t, []uint64{10, 20}, conf.Economics.Durations, "wrong durations")
	assert.Equal(t, []int64{5, 10}, conf.Economics.Weights, "wrong weights")
	assert.Equal(t, "0.75", conf.Economics.IssueProportion, "default issue proportion lost")

	assert.Equal(t, uint64(5), conf.ClientRPC.MaximumConnections, "wrong maximum connections")
	assert.Equal(t, float64(30000000), conf.ClientRPC.Bandwidth, "wrong bandwidth")
	assert.Equal(t, []string{"127.0.0.1:2130"}, conf.ClientRPC.Listen, "wrong listen")
	assert.Equal(t, filepath.Join(dir, "rpc.crt"), conf.ClientRPC.Certificate, "wrong certificate")
	assert.Equal(t, filepath.Join(dir, "rpc.key"), conf.HttpsRPC.PrivateKey, "wrong https key")
	assert.Equal(t, []string{"127.0.0.1/32", "::1/128"}, conf.HttpsRPC.Allow["details"], "wrong allow")

	assert.Equal(t, []string{"127.0.0.1:2135"}, conf.Publishing.Broadcast, "wrong broadcast")

	assert.Equal(t, filepath.Join(dir, "log"), conf.Logging.Directory, "wrong log directory")
	assert.EqualValues(t, 4096, conf.Logging.Size, "wrong log size")
	assert.Equal(t, "debug", conf.Logging.Levels["rpc"], "wrong rpc level")

	for _, d := range []string{conf.Database.Directory, conf.Logging.Directory} {
		info, err := os.Stat(d)
		assert.Nil(t, err, "directory not created")
		assert.True(t, info.IsDir(), "not a directory")
	}
}

func TestGetConfigurationDefaults(t *testing.T) {
	dir, fileName := writeConfiguration(t, `return { data_directory = "." }`)
	defer os.RemoveAll(dir)

	conf, err := configuration.GetConfiguration(fileName)
	assert.Nil(t, err, "wrong GetConfiguration")

	defaults := parameter.DefaultConfiguration()
	assert.Equal(t, chain.Live, conf.Chain, "wrong chain")
	assert.Equal(t, filepath.Join(dir, "data", "live.leveldb"), conf.Database.Name, "wrong database name")
	assert.Equal(t, "", conf.PidFile, "pid file should be optional")
	assert.Equal(t, defaults.Durations, conf.Economics.Durations, "wrong default durations")
	assert.Equal(t, defaults.Weights, conf.Economics.Weights, "wrong default weights")
	assert.Equal(t, 0, len(conf.ClientRPC.Listen), "unexpected listen")
}

func TestGetConfigurationErrors(t *testing.T) {
	items := []string{
		`return { }`,
		`return { data_directory = "." , chain = "bitcoin" }`,
		`return { data_directory = "." , contract = "not a name" }`,
		`return { data_directory = "/does/not/exist" }`,
		`return { data_directory = "." , database = { name = "x/y.leveldb" } }`,
		`return { data_directory = "." , logging = { file = "/tmp/x.log" } }`,
		`return { data_directory = "." , economics = { fee_rate = "2" } }`,
		`return { data_directory = "." , economics = { durations = { 1, 2 }, weights = { 1 } } }`,
		`this is not lua`,
	}

	for i, text := range items {
		dir, fileName := writeConfiguration(t, text)
		_, err := configuration.GetConfiguration(fileName)
		assert.NotNil(t, err, "%d: expected error for: %s", i, text)
		os.RemoveAll(dir)
	}
}

func TestParseConfigurationFileArg(t *testing.T) {
	dir, fileName := writeConfiguration(t, `return { name = arg[0] }`)
	defer os.RemoveAll(dir)

	config := struct {
		Name string `gluamapper:"name"`
	}{}
	err := configuration.ParseConfigurationFile(fileName, &config)
	assert.Nil(t, err, "wrong ParseConfigurationFile")
	assert.Equal(t, fileName, config.Name, "arg[0] not set")
}

func TestParseConfigurationFileNotStruct(t *testing.T) {
	dir, fileName := writeConfiguration(t, `return { }`)
	defer os.RemoveAll(dir)

	s := ""
	err := configuration.ParseConfigurationFile(fileName, &s)
	assert.Equal(t, fault.InvalidStructPointer, err, "wrong error")

	err = configuration.ParseConfigurationFile(fileName, struct{}{})
	assert.Equal(t, fault.InvalidStructPointer, err, "wrong error")
}

func TestParseConfigurationFileNoTable(t *testing.T) {
	dir, fileName := writeConfiguration(t, `local x = 1`)
	defer os.RemoveAll(dir)

	config := struct{}{}
	err := configuration.ParseConfigurationFile(fileName, &config)
	assert.Equal(t, fault.MissingParameters, err, "wrong error")
}
