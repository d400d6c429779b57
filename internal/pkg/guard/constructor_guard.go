// Package guard implements the constructor-guard pattern used by commands,
// queries, and domain objects to reject zero-value instances. Embedding a
// ConstructorGuard lets Validate distinguish an object built through its
// constructor from one created by struct literal.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes
// a nil validation error for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having passed through its constructor.
// The zero value fails validation.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that passes validation. Call it from
// the owning type's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed object. For a zero-value
// guard it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
