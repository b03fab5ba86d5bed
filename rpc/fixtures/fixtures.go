// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared set up for the rpc package tests
package fixtures

import (
	"os"
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
)

const (
	dir = "testing"

	// LogCategory - logger channel for tests
	LogCategory = "testing"
)

// SetupTestLogger - logging to a local directory at critical level
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
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

// TeardownTestLogger - stop logging and remove its files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}

var keyPair struct {
	sync.Once
	certificate string
	key         string
}

// CertificateAndKey - PEM text of a self signed certificate for
// localhost, generated once per test binary
func CertificateAndKey() (string, string) {
	keyPair.Do(func() {
		validUntil := time.Now().Add(24 * time.Hour)
		cert, key, err := certgen.NewTLSCertPair("protocoind test certificate", validUntil, false, []string{"127.0.0.1"})
		if nil != err {
			panic(err)
		}
		keyPair.certificate = string(cert)
		keyPair.key = string(key)
	})
	return keyPair.certificate, keyPair.key
}
