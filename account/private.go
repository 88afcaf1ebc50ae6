// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package account

import (
	"io"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
)

// KeyPair - an account with its signing key
type KeyPair struct {
	Account    Account
	PrivateKey ed25519.PrivateKey
}

// NewKeyPair - generate a key pair from a random source
func NewKeyPair(random io.Reader) (*KeyPair, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(random)
	if nil != err {
		return nil, err
	}
	a, err := FromBytes(publicKey)
	if nil != err {
		return nil, err
	}
	return &KeyPair{
		Account:    a,
		PrivateKey: privateKey,
	}, nil
}

// Sign - sign a message
func (k *KeyPair) Sign(message []byte) []byte {
	return ed25519.Sign(k.PrivateKey, message)
}

// Seed - base58 form of the private key seed
func (k *KeyPair) Seed() string {
	return base58.Encode(k.PrivateKey.Seed())
}
