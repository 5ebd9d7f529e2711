package domain

import "errors"

var (
	// Definition errors
	ErrUnknownTenant   = errors.New("no tenant definition registered for the given tenant")
	ErrUnknownEntry    = errors.New("entry code is not declared for the given tenant")
	ErrUnknownMovement = errors.New("no movement definition matches kind, account and accountable")
	ErrInvalidDocument = errors.New("document type does not match the entry definition")
	ErrInvalidDate     = errors.New("entry date is invalid")
	ErrSchemaMismatch  = errors.New("movement does not conform to its definition")

	// Balance errors
	ErrEmptyPosting           = errors.New("cannot execute an entry without movements")
	ErrUnbalancedEntry        = errors.New("trial balance must be zero")
	ErrUnbalancedAdjustment   = errors.New("adjustment trial balance must be zero")
	ErrNonMonotonicAdjustment = errors.New("adjustment date must not precede the entry it corrects")

	// Storage errors
	ErrEntryNotFound = errors.New("entry not found")
)
