package reqctx

import "errors"

var (
	// ErrAlreadyResolved is returned by [Context.Resolve] when the auth
	// outcome has already left the Unresolved state.
	ErrAlreadyResolved = errors.New("auth outcome is already resolved")

	// ErrUnresolvedOutcome is returned by [Context.Resolve] when the caller
	// tries to "resolve" to the Unresolved state.
	ErrUnresolvedOutcome = errors.New("cannot resolve to an unresolved outcome")
)
