package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Case lifecycle related errors
var (
	// ErrCaseAlreadyAssigned is returned when the conditioned accept matched zero
	// rows: the case left the pending status between read and write.
	ErrCaseAlreadyAssigned = errors.Wrap(ConflictError, "case is no longer pending")

	// ErrCaseNotCompletable is returned when completion is attempted from a status
	// other than accepted or wip.
	ErrCaseNotCompletable = errors.Wrap(BadParameterError, "case cannot be completed from its current status")

	ErrInvalidCaseStatus = errors.Wrap(BadParameterError, "invalid case status")

	// ErrSelfAssignment: a provider cannot open a case addressed to themself.
	ErrSelfAssignment = errors.Wrap(ForbiddenError, "customer and provider are the same account")
)

// Decline ledger related errors
var (
	// ErrAlreadyDeclined is returned on the (case_id, provider_id) unique
	// constraint, including when two declines race.
	ErrAlreadyDeclined = errors.Wrap(ConflictError, "case already declined by this provider")
)

// DB related errors
var ErrIgnoreRollBackError = errors.New("ignore rollback error")
