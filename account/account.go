// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/binary"
	"strings"

	"github.com/bitmark-inc/protocoind/fault"
)

// NameLength - maximum number of characters in a name
const NameLength = 12

// Name - an account name packed into 64 bits
//
// five bits per character, first character in the high bits, so
// that numeric order is the same as alphabetic order of the text
type Name uint64

// characters in value order
const charmap = ".12345abcdefghijklmnopqrstuvwxyz"

// Empty - the zero name, never a valid account
const Empty = Name(0)

// NameFromString - encode a text name
//
// allowed: 1..12 of [a-z1-5.] not ending in '.'
func NameFromString(s string) (Name, error) {
	if 0 == len(s) || len(s) > NameLength || '.' == s[len(s)-1] {
		return Empty, fault.InvalidAccountName
	}

	value := uint64(0)
	for i := 0; i < NameLength; i += 1 {
		c := uint64(0)
		if i < len(s) {
			n := strings.IndexByte(charmap, s[i])
			if n < 0 {
				return Empty, fault.InvalidAccountName
			}
			c = uint64(n)
		}
		value |= (c & 0x1f) << uint(64-5*(i+1))
	}
	return Name(value), nil
}

// NameFromBytes - decode an 8 byte big endian key component
func NameFromBytes(buffer []byte) (Name, error) {
	if len(buffer) < 8 {
		return Empty, fault.RecordTruncated
	}
	return Name(binary.BigEndian.Uint64(buffer[:8])), nil
}

// Bytes - big endian encoding, suitable for use in database keys
func (name Name) Bytes() []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, uint64(name))
	return buffer
}

// String - convert to text
func (name Name) String() string {
	s := make([]byte, NameLength)
	tmp := uint64(name) >> 4 // 13th character slot is unused
	for i := 0; i < NameLength; i += 1 {
		s[NameLength-1-i] = charmap[tmp&0x1f]
		tmp >>= 5
	}
	return strings.TrimRight(string(s), ".")
}

// IsValid - true if the name would survive a round trip through text
func (name Name) IsValid() bool {
	if Empty == name || 0 != name&0x0f {
		return false
	}
	n, err := NameFromString(name.String())
	return nil == err && n == name
}

// MarshalText - convert name to text for JSON
func (name Name) MarshalText() ([]byte, error) {
	return []byte(name.String()), nil
}

// UnmarshalText - convert text into a name
func (name *Name) UnmarshalText(s []byte) error {
	n, err := NameFromString(string(s))
	if nil != err {
		return err
	}
	*name = n
	return nil
}
