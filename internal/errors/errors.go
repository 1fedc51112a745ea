// Package errors is the single import for error handling: stdlib matching
// plus pkg/errors wrapping, so call sites get stack traces without picking a package.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Matching and composition come from the standard library.
var (
	New  = stderrors.New
	Is   = stderrors.Is
	As   = stderrors.As
	Join = stderrors.Join
)

// Wrapping records a stack trace at the call site.
var (
	Wrap      = pkgerrors.Wrap
	Wrapf     = pkgerrors.Wrapf
	WithStack = pkgerrors.WithStack
	Errorf    = pkgerrors.Errorf
)

// IsAny reports whether err matches any of targets.
func IsAny(err error, targets ...error) bool {
	for _, target := range targets {
		if stderrors.Is(err, target) {
			return true
		}
	}

	return false
}
