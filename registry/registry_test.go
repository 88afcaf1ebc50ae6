// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package registry_test

import (
	"errors"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/datahighway/registryd/entropy"
	"github.com/datahighway/registryd/entropy/mocks"
	"github.com/datahighway/registryd/fault"
	"github.com/datahighway/registryd/registry"
)

func TestCreateIsMonotonic(t *testing.T) {
	e := setupEnvironment(t)
	defer e.close()

	r := e.newRegistry(t, "roaming_operators", true)

	for i := 0; i < 5; i += 1 {
		id, err := r.Create(alice)
		assert.Nil(t, err, "create error")
		assert.Equal(t, registry.Index(i), id, "wrong id")
		assert.True(t, r.Exists(id), "created entity missing")
		assert.True(t, r.IsOwner(id, alice), "creator is not owner")
	}
	assert.Equal(t, registry.Index(5), r.Count(), "wrong count")
	assert.False(t, r.Exists(5), "entity beyond count exists")

	m := e.nextEvent()
	assert.NotNil(t, m, "no event")
	assert.Equal(t, registry.EventCreated, m.Command, "wrong event")
	assert.Equal(t, registry.Created{Kind: "roaming_operators", Owner: alice, Id: 0}, m.Parameters, "wrong event data")
}

func TestCreateOverflow(t *testing.T) {
	e := setupEnvironment(t)
	defer e.close()

	r, err := registry.New(logger.New(logCategory), e.env, registry.Kind{
		Name:    "small",
		Maximum: 2,
	})
	assert.Nil(t, err, "new registry error")

	mustCreate(t, r, alice)
	mustCreate(t, r, alice)

	_, err = r.Create(alice)
	assert.Equal(t, fault.ErrCounterOverflow, err, "overflow not detected")
	assert.Equal(t, registry.Index(2), r.Count(), "count changed on overflow")
	assert.False(t, r.Exists(2), "entity written on overflow")

	_, err = r.Create(bob)
	assert.Equal(t, fault.ErrCounterOverflow, err, "create succeeded after overflow")
}

func TestCreateFingerprint(t *testing.T) {
	e := setupEnvironment(t)
	defer e.close()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	seed := [entropy.SeedSize]byte{9, 8, 7}
	source := mocks.NewMockSource(ctl)
	source.EXPECT().Random([]byte("roaming_networks")).Return(seed, nil).Times(1)

	env := e.env
	env.Entropy = source
	r, err := registry.New(logger.New(logCategory), env, registry.Kind{Name: "roaming_networks", Maximum: 10})
	assert.Nil(t, err, "new registry error")

	id := mustCreate(t, r, bob)

	entity, err := r.Get(id)
	assert.Nil(t, err, "get error")
	assert.Equal(t, entropy.NewFingerprint(seed, bob, testPosition), entity.Fingerprint, "wrong fingerprint")
	assert.Equal(t, bob, entity.Owner, "wrong owner")
	assert.Nil(t, entity.Price, "new entity is listed")
}

func TestCreateEntropyFailure(t *testing.T) {
	e := setupEnvironment(t)
	defer e.close()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	source := mocks.NewMockSource(ctl)
	source.EXPECT().Random(gomock.Any()).Return([entropy.SeedSize]byte{}, errors.New("no entropy")).Times(1)

	env := e.env
	env.Entropy = source
	r, err := registry.New(logger.New(logCategory), env, registry.Kind{Name: "roaming_devices", Maximum: 10})
	assert.Nil(t, err, "new registry error")

	_, err = r.Create(alice)
	assert.NotNil(t, err, "entropy failure ignored")
	assert.Equal(t, registry.Index(0), r.Count(), "count changed after failure")
}

func TestTransfer(t *testing.T) {
	e := setupEnvironment(t)
	defer e.close()

	r := e.newRegistry(t, "roaming_operators", false)
	id := mustCreate(t, r, alice)
	_ = e.nextEvent()

	assert.Equal(t, fault.ErrNotOwner, r.Transfer(bob, carol, id), "non-owner transferred")
	assert.Equal(t, fault.ErrNotOwner, r.Transfer(alice, bob, 99), "transfer of absent entity")

	assert.Nil(t, r.Transfer(alice, bob, id), "transfer error")
	owner, ok := r.OwnerOf(id)
	assert.True(t, ok, "owner missing")
	assert.Equal(t, bob, owner, "wrong owner")

	m := e.nextEvent()
	assert.NotNil(t, m, "no event")
	assert.Equal(t, registry.EventTransferred, m.Command, "wrong event")
	assert.Equal(t, registry.Transferred{Kind: "roaming_operators", From: alice, To: bob, Id: id}, m.Parameters, "wrong event data")

	assert.Equal(t, fault.ErrNotOwner, r.Transfer(alice, carol, id), "old owner transferred")
}

func TestIsOwnerFailsClosed(t *testing.T) {
	e := setupEnvironment(t)
	defer e.close()

	r := e.newRegistry(t, "roaming_operators", false)

	_, ok := r.OwnerOf(0)
	assert.False(t, ok, "absent entity has an owner")
	assert.False(t, r.IsOwner(0, alice), "absent entity is owned")

	_, err := r.Get(0)
	assert.Equal(t, fault.ErrEntityNotFound, err, "absent entity found")
}

func TestListAndOwnedBy(t *testing.T) {
	e := setupEnvironment(t)
	defer e.close()

	r := e.newRegistry(t, "roaming_devices", false)
	for i := 0; i < 5; i += 1 {
		owner := alice
		if 0 == i%2 {
			owner = bob
		}
		mustCreate(t, r, owner)
	}

	entities, next, err := r.List(1, 3)
	assert.Nil(t, err, "list error")
	assert.Equal(t, 3, len(entities), "wrong list length")
	assert.Equal(t, registry.Index(1), entities[0].Id, "wrong first id")
	assert.Equal(t, registry.Index(3), entities[2].Id, "wrong last id")
	assert.Equal(t, registry.Index(4), next, "wrong next")

	entities, next, err = r.List(next, 10)
	assert.Nil(t, err, "list error")
	assert.Equal(t, 1, len(entities), "wrong list length")
	assert.Equal(t, registry.Index(5), next, "wrong next")

	owned, err := r.OwnedBy(bob)
	assert.Nil(t, err, "owned error")
	assert.Equal(t, []registry.Index{0, 2, 4}, owned, "wrong owned list")
}

func TestNewRegistryValidation(t *testing.T) {
	e := setupEnvironment(t)
	defer e.close()

	_, err := registry.New(logger.New(logCategory), e.env, registry.Kind{Name: "", Maximum: 1})
	assert.Equal(t, fault.ErrInvalidKind, err, "empty name accepted")

	_, err = registry.New(logger.New(logCategory), e.env, registry.Kind{Name: "x", Maximum: 0})
	assert.Equal(t, fault.ErrInvalidKind, err, "zero maximum accepted")

	env := e.env
	env.Currency = nil
	_, err = registry.New(logger.New(logCategory), env, registry.Kind{Name: "x", Maximum: 1, Marketplace: true})
	assert.Equal(t, fault.ErrMissingParameters, err, "marketplace without currency accepted")
}
