// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// ledger errors - keep in alphabetic order
var (
	DuplicateAccount            = ExistsError("account already registered")
	DuplicateToken              = ExistsError("token with symbol already exists")
	DurationIndexOutOfRange     = InvalidError("duration index out of range")
	InsufficientUnstakedBalance = ProcessError("overdrawn unstaked balance")
	InvalidAccountName          = InvalidError("invalid account name")
	InvalidAmount               = InvalidError("invalid amount")
	InvalidSymbol               = InvalidError("invalid symbol name")
	MemoTooLong                 = LengthError("memo has more than 256 bytes")
	MissingBalanceRow           = NotFoundError("balance row already deleted or never existed")
	NonZeroBalanceOnClose       = ProcessError("cannot close because the balance is not zero")
	SelfTransfer                = InvalidError("cannot transfer to self")
	SupplyExceeded              = ProcessError("quantity exceeds available supply")
	SymbolMismatch              = InvalidError("symbol precision mismatch")
	UnauthorizedPrincipal       = ProcessError("missing required authority")
	UnknownAccount              = NotFoundError("account does not exist")
	UnknownOperation            = NotFoundError("unknown scheduled operation")
	UnknownToken                = NotFoundError("token with symbol does not exist")
)

// infrastructure errors - keep in alphabetic order
var (
	AlreadyInitialised           = ExistsError("already initialised")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ConfigurationFileChanged     = ProcessError("configuration file changed")
	InvalidChain                 = InvalidError("invalid chain")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidIPAddress             = InvalidError("invalid IP address")
	InvalidLoggerChannel         = InvalidError("invalid logger channel")
	InvalidPortNumber            = InvalidError("invalid port number")
	InvalidParameters            = InvalidError("invalid economic parameters")
	InvalidRatio                 = InvalidError("invalid ratio")
	InvalidRequestID             = InvalidError("invalid request id")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MissingParameters            = InvalidError("missing parameters")
	NotAvailableWhileStopped     = ProcessError("not available while stopped")
	NotInitialised               = NotFoundError("not initialised")
	RateLimiting                 = InvalidError("rate limiting")
	RecordCorrupt                = RecordError("record is corrupt")
	RecordTruncated              = RecordError("record is truncated")
	TransactionInUse             = ProcessError("transaction already in use")
	TransactionNotInUse          = ProcessError("transaction not in use")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
