// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
// Package account - the identity of a caller
//
// an account is an ed25519 public key; its text form is the base58
// encoding of a key variant, the key and a four byte sha3 checksum
package account

import (
	"bytes"

	"github.com/gogo/protobuf/proto"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/datahighway/registryd/fault"
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	ed25519Algorithm = 0x01
	algorithmShift   = 4 // shift 4 bits to get algorithm
)

// PublicKeySize - number of bytes in an account
const PublicKeySize = ed25519.PublicKeySize

// Account - a 32 byte public key, comparable so it can be a map key
type Account [PublicKeySize]byte

// network selection for text encoding
var testNetwork = false

// SetTesting - select the network encoded in text forms
func SetTesting(test bool) {
	testNetwork = test
}

// FromBytes - create an account from raw public key bytes
func FromBytes(buffer []byte) (Account, error) {
	a := Account{}
	if len(buffer) != PublicKeySize {
		return a, fault.ErrInvalidAccount
	}
	copy(a[:], buffer)
	return a, nil
}

// FromBase58 - decode the text form of an account
func FromBase58(s string) (Account, error) {
	a := Account{}

	decoded, err := base58.Decode(s)
	if nil != err || len(decoded) <= checksumLength {
		return a, fault.ErrInvalidAccount
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return a, fault.ErrInvalidAccount
	}

	variant, n := proto.DecodeVarint(decoded)
	if 0 == n || variant&publicKeyCode != publicKeyCode || variant>>algorithmShift != ed25519Algorithm {
		return a, fault.ErrInvalidAccount
	}
	if (0 != variant&testKeyCode) != testNetwork {
		return a, fault.ErrWrongNetworkForAccount
	}

	return FromBytes(decoded[n:checksumStart])
}

// Bytes - the raw public key
func (a Account) Bytes() []byte {
	return a[:]
}

// IsZero - true for the unset account
func (a Account) IsZero() bool {
	return a == Account{}
}

// String - base58 text form
func (a Account) String() string {
	variant := uint64(ed25519Algorithm<<algorithmShift | publicKeyCode)
	if testNetwork {
		variant |= testKeyCode
	}
	buffer := proto.EncodeVarint(variant)
	buffer = append(buffer, a[:]...)
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert account to base58
func (a Account) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert base58 to account
func (a *Account) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}

// CheckSignature - verify a message signed by this account
func (a Account) CheckSignature(message []byte, signature []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(a[:]), message, signature)
}
