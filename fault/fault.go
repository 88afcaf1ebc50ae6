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
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError
type TransferError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyAssociated            = ExistsError("child already associated with parent")
	ErrAlreadyInitialised           = ExistsError("already initialised")
	ErrAssociationNotFound          = NotFoundError("association not found")
	ErrBalanceOverflow              = TransferError("balance overflow")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrCertificateFileNotFound      = NotFoundError("certificate file not found")
	ErrConfigurationNotTable        = InvalidError("configuration did not return a table")
	ErrCounterOverflow              = ProcessError("counter overflow")
	ErrDatabaseIsNotSet             = ProcessError("database is not set")
	ErrDatabaseVersion              = InvalidError("database version is not supported")
	ErrEntityNotFound               = NotFoundError("entity does not exist")
	ErrExistentialDeposit           = TransferError("below existential deposit")
	ErrFieldKind                    = InvalidError("field value is the wrong kind")
	ErrFileNotFound                 = NotFoundError("file not found")
	ErrInsufficientBalance          = TransferError("insufficient balance")
	ErrInvalidAccount               = InvalidError("invalid account")
	ErrInvalidChain                 = InvalidError("invalid chain")
	ErrInvalidChild                 = InvalidError("child entity does not exist")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidCursor                = InvalidError("invalid cursor")
	ErrInvalidIpAddress             = InvalidError("invalid IP address")
	ErrInvalidKind                  = InvalidError("invalid entity kind")
	ErrInvalidLoggerChannel         = InvalidError("invalid logger channel")
	ErrInvalidPortNumber            = InvalidError("invalid port number")
	ErrInvalidSchema                = InvalidError("invalid configuration schema")
	ErrInvalidSlot                  = InvalidError("invalid configuration slot")
	ErrInvalidStructPointer         = InvalidError("invalid struct pointer")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrKeyFileNotFound              = NotFoundError("key file not found")
	ErrMarketplaceDisabled          = InvalidError("entity kind cannot be traded")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrNoOwner                      = NotFoundError("entity has no owner")
	ErrNoParent                     = NotFoundError("entity has no parent")
	ErrNotForSale                   = NotFoundError("entity is not for sale")
	ErrNotInitialised               = NotFoundError("not initialised")
	ErrNotOwnedByParent             = PermissionError("caller does not own the parent entity")
	ErrNotOwner                     = PermissionError("caller is not the owner")
	ErrNotParentOwner               = PermissionError("caller is not the owner of the parent")
	ErrParentNotFound               = NotFoundError("parent entity does not exist")
	ErrPriceTooLow                  = InvalidError("price too low")
	ErrRateLimiting                 = InvalidError("rate limiting")
	ErrSlotNotFound                 = NotFoundError("configuration not found")
	ErrTransactionAlreadyInUse      = ProcessError("transaction already in use")
	ErrTransactionNotStarted        = ProcessError("transaction not started")
	ErrUnknownField                 = InvalidError("unknown configuration field")
	ErrWrongNetworkForAccount       = InvalidError("wrong network for account")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e TransferError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
func IsErrTransfer(e error) bool   { _, ok := e.(TransferError); return ok }
