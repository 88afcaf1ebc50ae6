// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package association_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/datahighway/registryd/fault"
	"github.com/datahighway/registryd/registry"
	"github.com/datahighway/registryd/rpc/association"
	"github.com/datahighway/registryd/rpc/fixtures"
)

func TestAssociationAssign(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	env, err := fixtures.NewEnvironment()
	if nil != err {
		t.Fatalf("environment error: %s", err)
	}
	defer env.Close()

	operators, _ := env.Runtime.Registry("roaming_operators")
	networks, _ := env.Runtime.Registry("roaming_networks")
	operator, _ := operators.Create(fixtures.Alice)
	network, _ := networks.Create(fixtures.Bob)

	a := association.New(logger.New(fixtures.LogCategory), env.Runtime)

	arguments := association.AssignArguments{
		Child:    "roaming_networks",
		Parent:   "roaming_operators",
		Caller:   &fixtures.Bob,
		ChildId:  network,
		ParentId: operator,
	}
	err = a.Assign(&arguments, &association.AssignReply{})
	assert.Equal(t, fault.ErrNotParentOwner, err, "wrong assign by child owner")

	arguments.Caller = &fixtures.Alice
	err = a.Assign(&arguments, &association.AssignReply{})
	assert.Nil(t, err, "wrong Assign")

	var parent association.ParentReply
	err = a.Parent(&association.ParentArguments{
		Child:   "roaming_networks",
		Parent:  "roaming_operators",
		ChildId: network,
	}, &parent)
	assert.Nil(t, err, "wrong Parent")
	assert.Equal(t, operator, parent.ParentId, "wrong parent")

	var children association.ChildrenReply
	err = a.Children(&association.ChildrenArguments{
		Child:    "roaming_networks",
		Parent:   "roaming_operators",
		ParentId: operator,
	}, &children)
	assert.Nil(t, err, "wrong Children")
	assert.Equal(t, []registry.Index{network}, children.ChildIds, "wrong children")
}

func TestAssociationLookups(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	env, err := fixtures.NewEnvironment()
	if nil != err {
		t.Fatalf("environment error: %s", err)
	}
	defer env.Close()

	a := association.New(logger.New(fixtures.LogCategory), env.Runtime)

	err = a.Parent(&association.ParentArguments{
		Child:  "roaming_operators",
		Parent: "roaming_networks",
	}, &association.ParentReply{})
	assert.Equal(t, fault.ErrAssociationNotFound, err, "wrong reversed association")

	err = a.Parent(&association.ParentArguments{
		Child:   "roaming_devices",
		Parent:  "roaming_organizations",
		ChildId: 4,
	}, &association.ParentReply{})
	assert.Equal(t, fault.ErrNoParent, err, "wrong unassigned child")

	var children association.ChildrenReply
	err = a.Children(&association.ChildrenArguments{
		Child:  "roaming_devices",
		Parent: "roaming_organizations",
	}, &children)
	assert.Nil(t, err, "wrong Children")
	assert.Equal(t, 0, len(children.ChildIds), "wrong empty children")

	err = a.Assign(&association.AssignArguments{Child: "roaming_devices", Parent: "roaming_organizations"}, &association.AssignReply{})
	assert.Equal(t, fault.ErrMissingParameters, err, "wrong missing caller")
}
