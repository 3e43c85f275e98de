package helpers

import (
	"github.com/spacemonkeygo/errors"
)

// grouping, do not instantiate
var Error *errors.ErrorClass = errors.NewClass("HelperError")

/*
	Error raised when the delegated system tool could not be launched at all
	(as opposed to launching and exiting nonzero, which is reported through
	the outcome's exit code).
*/
var DelegateError *errors.ErrorClass = Error.NewClass("HelperDelegateError")

/*
	Error raised when the delegated system tool is not present on this host.

	This is considered an environment problem: a build host without chown
	or chmod on the PATH is broken well beyond anything a build script did.
*/
var NoSuchDelegateError *errors.ErrorClass = DelegateError.NewClass("NoSuchDelegateError")

/*
	Wraps any other unknown errors just to emphasize the system that raised them;
	any well known errors should use a different type.

	If an error of this type is exposed to the user, it should be
	considered a bug, and specific error detection added to the site.
*/
var UnknownError *errors.ErrorClass = Error.NewClass("HelperUnknownError")
