/*
	Package helpers implements the image-mutating ebuild helpers: small
	commands a package build script calls with paths phrased in terms of the
	final installed layout ("/etc/foo.conf"), which are rebased onto the
	staged image root before being delegated to the matching system tool.

	The flow is strictly linear: classify the argument list, rewrite the
	path operands, invoke the delegate, report the outcome.  The caller
	(normally the cli layer) decides whether a bad outcome kills the build;
	nothing in this package terminates the process.
*/
package helpers

import (
	"github.com/inconshreveable/log15"
)

type Helper struct {
	Name     string  // command name as build scripts know it, e.g. "fowners".  Used in advisories.
	Delegate string  // system tool receiving the rewritten argument list, e.g. "chown".
	Invoker  Invoker // how the delegate is actually run; nil is filled in by the cli layer, tests inject their own.
}

/*
	Outcome is the structured result of one helper run.

	ExitCode is the delegate's own exit status and is only meaningful when
	Error is nil.  Advisories counts relative path operands that were warned
	about; they never affect the exit status.
*/
type Outcome struct {
	ExitCode   int
	Advisories int
	Error      error
}

/*
	Run takes the raw argument list (everything after the command name,
	options included) through classification, rewriting, and delegation.

	`root` is the profile's effective install root: already stripped of
	trailing separators, empty when the build mode is not prefix-capable.
*/
func (h Helper) Run(rawArgs []string, root string, journal log15.Logger) Outcome {
	args := Classify(h.Name, rawArgs, journal)
	argv := Rewrite(args, root)
	code, err := h.Invoker.Invoke(argv)
	if err != nil {
		return Outcome{Error: err, Advisories: CountRelativeOperands(args)}
	}
	return Outcome{ExitCode: code, Advisories: CountRelativeOperands(args)}
}
