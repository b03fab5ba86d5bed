// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schedule_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/protocoind/account"
	"github.com/bitmark-inc/protocoind/asset"
	"github.com/bitmark-inc/protocoind/storage"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

// fresh database for each test
func setupStorage(t *testing.T) string {
	dir, err := ioutil.TempDir("", "schedule-test")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	err = storage.Initialise(filepath.Join(dir, "test.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	return dir
}

func teardownStorage(dir string) {
	storage.Finalise()
	_ = os.RemoveAll(dir)
}

// run f in a transaction, commit only if it succeeds
func run(t *testing.T, f func(trx storage.Transaction) error) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	err = f(trx)
	if nil != err {
		trx.Abort()
		return err
	}
	return trx.Commit()
}

func name(s string) account.Name {
	n, err := account.NameFromString(s)
	if nil != err {
		panic(err)
	}
	return n
}

func symbol(precision uint8, code string) asset.Symbol {
	s, err := asset.NewSymbol(precision, code)
	if nil != err {
		panic(err)
	}
	return s
}
