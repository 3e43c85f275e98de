package helpers

import (
	"strings"

	"github.com/inconshreveable/log15"
)

type ArgKind int

const (
	// KindFlag is any token with a leading dash.  Flags are order-preserved,
	// never rewritten, and never inspected as paths; they belong to the
	// delegated tool, whatever they mean to it.
	KindFlag ArgKind = iota

	// KindSpec is the first non-flag token: the owner spec for fowners, the
	// mode spec for fperms.  There is at most one, and it is never treated
	// as a path no matter what it looks like.
	KindSpec

	// KindPathOperand is every non-flag token after the spec.  These name
	// files inside the staged image and are the only tokens rewriting may
	// touch.
	KindPathOperand
)

/*
	Arg is one command-line token with its kind assigned.

	Kind is computed exactly once, here; downstream stages switch on the tag
	rather than re-inspecting raw text, so an operand can never change roles
	between classification and invocation.
*/
type Arg struct {
	Kind ArgKind
	Text string
}

/*
	Classify walks the raw argument list once and tags every token.

	For each path operand that does not begin with '/', one advisory warning
	goes to the journal: relative paths cannot be anchored to the image root,
	so the token will be handed to the delegate untouched -- which is almost
	never what the build script meant.  This is advisory only; classification
	and everything downstream proceed regardless.

	If no non-flag token appears at all there is simply no spec and no
	operands; the delegate gets flags only and its own usage error becomes
	the failure the build sees.
*/
func Classify(helperName string, rawArgs []string, journal log15.Logger) []Arg {
	args := make([]Arg, len(rawArgs))
	specSeen := false
	for i, raw := range rawArgs {
		switch {
		case strings.HasPrefix(raw, "-"):
			args[i] = Arg{KindFlag, raw}
		case !specSeen:
			specSeen = true
			args[i] = Arg{KindSpec, raw}
		default:
			if !strings.HasPrefix(raw, "/") {
				journal.Warn("relative paths are unsupported; to touch files outside the staged image, call the system tool directly",
					"helper", helperName, "arg", raw)
			}
			args[i] = Arg{KindPathOperand, raw}
		}
	}
	return args
}

// CountRelativeOperands reports how many path operands would have drawn an
// advisory from Classify.  Kept in sync with the warning condition above.
func CountRelativeOperands(args []Arg) int {
	n := 0
	for _, a := range args {
		if a.Kind == KindPathOperand && !strings.HasPrefix(a.Text, "/") {
			n++
		}
	}
	return n
}
