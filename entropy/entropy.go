// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
// Package entropy - randomness for entity fingerprints
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"github.com/datahighway/registryd/account"
	"github.com/datahighway/registryd/chain"
	"github.com/datahighway/registryd/fault"
)

// SeedSize - bytes returned by a source
const SeedSize = 32

// FingerprintSize - bytes in a fingerprint
const FingerprintSize = 16

// Source - supplies random seeds, subject separates uses
type Source interface {
	Random(subject []byte) ([SeedSize]byte, error)
}

// Fingerprint - the opaque payload stored with each entity
type Fingerprint [FingerprintSize]byte

// CryptoSource - seeds from the operating system
type CryptoSource struct{}

// Random - a fresh seed, the subject is hashed in so separate
// subjects never share a seed even from a weak reader
func (CryptoSource) Random(subject []byte) ([SeedSize]byte, error) {
	seed := [SeedSize]byte{}
	if _, err := rand.Read(seed[:]); nil != err {
		return seed, err
	}
	h, err := blake2b.New256(seed[:])
	if nil != err {
		return seed, err
	}
	h.Write(subject)
	copy(seed[:], h.Sum(nil))
	return seed, nil
}

// NewFingerprint - blake2b-128 of seed ++ caller ++ extrinsic ++ block
//
// integers are little endian, extrinsic is 32 bits and block 64 bits
func NewFingerprint(seed [SeedSize]byte, caller account.Account, position chain.Position) Fingerprint {
	h, err := blake2b.New(FingerprintSize, nil)
	fault.PanicIfError("entropy: blake2b", err)

	buffer := make([]byte, 12)
	binary.LittleEndian.PutUint32(buffer[:4], position.Extrinsic)
	binary.LittleEndian.PutUint64(buffer[4:], position.Block)

	h.Write(seed[:])
	h.Write(caller.Bytes())
	h.Write(buffer)

	f := Fingerprint{}
	copy(f[:], h.Sum(nil))
	return f
}

// FingerprintFromBytes - restore a stored fingerprint
func FingerprintFromBytes(buffer []byte) (Fingerprint, error) {
	f := Fingerprint{}
	if FingerprintSize != len(buffer) {
		return f, fault.ErrInvalidCount
	}
	copy(f[:], buffer)
	return f, nil
}

// String - hex form
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// MarshalText - hex form
func (f Fingerprint) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText - parse the hex form
func (f *Fingerprint) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	decoded, err := FingerprintFromBytes(buffer[:n])
	if nil != err {
		return err
	}
	*f = decoded
	return nil
}
