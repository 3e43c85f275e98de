package cli

import (
	"github.com/spacemonkeygo/errors"
)

type ExitCode byte

const (
	EXIT_SUCCESS      = ExitCode(0)
	EXIT_BADARGS      = ExitCode(1)
	EXIT_UNKNOWNPANIC = ExitCode(2)  // same code as golang uses when the process dies naturally on an unhandled panic.
	EXIT_USER         = ExitCode(3)  // grab bag for general user input errors (try to make a more specific code if possible/useful)
	EXIT_ENV          = ExitCode(4)  // used when the build profile is missing or unloadable; raised before any argument processing.
	EXIT_DELEGATEFAIL = ExitCode(10) // used to indicate the delegated system tool reported a nonzero exit code.
)

var ExitCodeKey = errors.GenSym()

/*
	CLI errors are the last line: they should be formatted to be user-facing.
	The main method will convert a CLIError into a short and well-formatted
	message, and will *not* include stack traces unless the user is running
	with debug mode enabled.

	CLI errors are an appropriate wrapping for anything where we can map a
	problem onto something the user can understand and fix.  Errors that are
	a helper bug or unknown territory should *not* be mapped into a CLIError.

	Note that the callers of these helpers are build scripts: a helper
	failure is a build failure, full stop.  The fatal route out of here is
	how the whole build gets torn down.
*/
var Error *errors.ErrorClass = errors.NewClass("CLIError")

/*
	Use this to set a specific error code the process should exit with
	when producing a `cli.Error`.

	Example: `cli.Error.New("something terrible!", SetExitCode(EXIT_BADARGS))`
*/
func SetExitCode(code ExitCode) errors.ErrorOption {
	return errors.SetData(ExitCodeKey, code)
}

/*
	Pluck the exit code off a `cli.Error`.  A nil error means the helper
	ran clean; errors raised without a specific code get the general
	user-error code (which is at least always nonzero).
*/
func ExitCodeFor(err error) ExitCode {
	if err == nil {
		return EXIT_SUCCESS
	}
	code, ok := errors.GetData(err, ExitCodeKey).(ExitCode)
	if !ok {
		return EXIT_USER
	}
	return code
}
