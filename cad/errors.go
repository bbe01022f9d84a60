package cad

import "errors"

// Sentinel errors for precondition violations treated as fatal
// (programmer bugs, not data errors — never returned from a branch
// search, always panicked with as the message).
var (
	// ErrDegreeTooLow is the precondition mr violates when deg(p) < deg(q).
	ErrDegreeTooLow = errors.New("cad: mr requires deg(p) >= deg(q) > 0")

	// ErrMalformedCell is raised by findSample on a cell shape the sample
	// table doesn't cover (e.g. Point(NegInf), Point(PosInf)).
	ErrMalformedCell = errors.New("cad: sampler received an ill-formed cell")

	// ErrNonMonomialCoefficient describes coefficient extraction whose
	// operand does not reduce to a single monomial; no function in this
	// package currently panics with it.
	ErrNonMonomialCoefficient = errors.New("cad: coefficient extraction requires a monomial")
)

// Debug gates runtime assertions meant for debug builds only (Mr's
// identity check, the sign-configuration continuity check) so a
// production build can flip it off without a build tag.
var Debug = false
