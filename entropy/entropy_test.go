// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package entropy_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/datahighway/registryd/account"
	"github.com/datahighway/registryd/chain"
	"github.com/datahighway/registryd/entropy"
)

func testSeed() [entropy.SeedSize]byte {
	seed := [entropy.SeedSize]byte{}
	for i := range seed {
		seed[i] = byte(i)
	}
	return seed
}

func testCaller() account.Account {
	b, _ := hex.DecodeString("60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e")
	a, _ := account.FromBytes(b)
	return a
}

func TestFingerprint(t *testing.T) {
	f := entropy.NewFingerprint(testSeed(), testCaller(), chain.Position{Block: 7, Extrinsic: 2})
	assert.Equal(t, "41e85ef9c698112d3a1ba86e9772f655", f.String(), "wrong fingerprint")

	g := entropy.NewFingerprint(testSeed(), testCaller(), chain.Position{Block: 7, Extrinsic: 3})
	assert.Equal(t, "67516d03dde3f7d6002dd7e05cf3aeac", g.String(), "wrong fingerprint")
}

func TestFingerprintText(t *testing.T) {
	f := entropy.NewFingerprint(testSeed(), testCaller(), chain.Position{Block: 7, Extrinsic: 2})

	buffer, err := json.Marshal(f)
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, "\"41e85ef9c698112d3a1ba86e9772f655\"", string(buffer), "wrong JSON")

	var g entropy.Fingerprint
	assert.Nil(t, json.Unmarshal(buffer, &g), "unmarshal error")
	assert.Equal(t, f, g, "round trip mismatch")

	assert.NotNil(t, g.UnmarshalText([]byte("abcd")), "short fingerprint accepted")
	assert.NotNil(t, g.UnmarshalText([]byte("zz")), "invalid hex accepted")
}

func TestCryptoSource(t *testing.T) {
	s := entropy.CryptoSource{}
	one, err := s.Random([]byte{0})
	assert.Nil(t, err, "random error")
	two, err := s.Random([]byte{0})
	assert.Nil(t, err, "random error")
	assert.NotEqual(t, one, two, "identical seeds")
}
