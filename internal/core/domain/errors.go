package domain

import "errors"

var (
	// ErrUnauthorized signals an authentication-rejected upstream response.
	// Receiving it anywhere invalidates the session as a side effect.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden signals an authenticated but insufficient-privilege access.
	ErrForbidden = errors.New("access forbidden")

	// ErrNoSession is returned by operations that require an authenticated
	// session when none is present.
	ErrNoSession = errors.New("no active session")
)
