// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/datahighway/registryd/fault"
)

var (
	ErrExistsOne     = fault.ExistsError("exists one ")
	ErrExistsTwo     = fault.ExistsError("exists two")
	ErrInvalidOne    = fault.InvalidError("invalid one")
	ErrInvalidTwo    = fault.InvalidError("invalid two")
	ErrNotFoundOne   = fault.NotFoundError("not found one")
	ErrNotFoundTwo   = fault.NotFoundError("not found two")
	ErrPermissionOne = fault.PermissionError("permission one")
	ErrPermissionTwo = fault.PermissionError("permission two")
	ErrProcessOne    = fault.ProcessError("process one")
	ErrProcessTwo    = fault.ProcessError("process two")
	ErrTransferOne   = fault.TransferError("transfer one")
	ErrTransferTwo   = fault.TransferError("transfer two")
)

// test that various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err        error
		exists     bool
		invalid    bool
		notFound   bool
		permission bool
		process    bool
		transfer   bool
	}{
		{ErrExistsOne, true, false, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false, false},
		{ErrInvalidTwo, false, true, false, false, false, false},
		{ErrNotFoundOne, false, false, true, false, false, false},
		{ErrNotFoundTwo, false, false, true, false, false, false},
		{ErrPermissionOne, false, false, false, true, false, false},
		{ErrPermissionTwo, false, false, false, true, false, false},
		{ErrProcessOne, false, false, false, false, true, false},
		{ErrProcessTwo, false, false, false, false, true, false},
		{ErrTransferOne, false, false, false, false, false, true},
		{ErrTransferTwo, false, false, false, false, false, true},
		{fault.ErrCounterOverflow, false, false, false, false, true, false},
		{fault.ErrNotOwner, false, false, false, true, false, false},
		{fault.ErrNotForSale, false, false, true, false, false, false},
		{fault.ErrPriceTooLow, false, true, false, false, false, false},
		{fault.ErrAlreadyAssociated, true, false, false, false, false, false},
		{fault.ErrInsufficientBalance, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrPermission(err) != e.permission {
			t.Errorf("%d: expected 'permission' == %v for err = %v", i, e.permission, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrTransfer(err) != e.transfer {
			t.Errorf("%d: expected 'transfer' == %v for err = %v", i, e.transfer, err)
		}
	}
}
