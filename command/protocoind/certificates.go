// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"

	"github.com/bitmark-inc/protocoind/fault"
	"github.com/bitmark-inc/protocoind/rpc/listeners"
	"github.com/bitmark-inc/protocoind/util"
)

const certificateValidity = 10 * 365 * 24 * time.Hour

// create a self-signed certificate
func makeSelfSignedCertificate(name string, certificateFileName string, privateKeyFileName string, override bool, extraHosts []string) error {

	if util.EnsureFileExists(certificateFileName) {
		return fault.CertificateFileAlreadyExists
	}

	if util.EnsureFileExists(privateKeyFileName) {
		return fault.KeyFileAlreadyExists
	}

	org := "protocoind self signed cert for: " + name
	validUntil := time.Now().Add(certificateValidity)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, override, extraHosts)
	if err != nil {
		return err
	}

	if err = ioutil.WriteFile(certificateFileName, cert, 0666); err != nil {
		return err
	}

	if err = ioutil.WriteFile(privateKeyFileName, key, 0600); err != nil {
		os.Remove(certificateFileName)
		return err
	}

	return nil
}

// read the PEM files named in the configuration
//
// the listeners expect the certificate and key text, not file names
func loadRPCCertificates(client listeners.RPCConfiguration, https listeners.HTTPSConfiguration) (*listeners.RPCConfiguration, *listeners.HTTPSConfiguration, error) {
	var err error

	client.Certificate, client.PrivateKey, err = readPair(client.Certificate, client.PrivateKey)
	if nil != err {
		return nil, nil, err
	}

	if 0 != len(https.Listen) {
		https.Certificate, https.PrivateKey, err = readPair(https.Certificate, https.PrivateKey)
		if nil != err {
			return nil, nil, err
		}
	}

	return &client, &https, nil
}

func readPair(certificateFileName string, keyFileName string) (string, string, error) {
	certificate, err := ioutil.ReadFile(certificateFileName)
	if nil != err {
		return "", "", err
	}
	key, err := ioutil.ReadFile(keyFileName)
	if nil != err {
		return "", "", err
	}
	return string(certificate), string(key), nil
}
