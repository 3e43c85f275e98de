package cli

import (
	"fmt"
	"io"

	"github.com/inconshreveable/log15"
	"github.com/spacemonkeygo/errors"

	"github.com/hannob/portage/buildenv"
	"github.com/hannob/portage/helpers"
)

/*
	Shared launch path for all the image-mutating helpers: resolve the build
	profile, run the helper's classify/rewrite/invoke pipeline, and map its
	structured outcome onto the process-fatal surface.

	Profile resolution happens before the helper ever looks at an argument;
	running outside a build environment is an environment problem, not a
	usage problem, and gets its own exit code.
*/
func runHelper(h helpers.Helper, rawArgs []string, journal, output io.Writer) error {
	profile, err := buildenv.ResolveProfile()
	if err != nil {
		panic(Error.NewWith(
			fmt.Sprintf("%s: cannot load build profile: %s", h.Name, errors.GetMessage(err)),
			SetExitCode(EXIT_ENV),
		))
	}

	logger := log15.New(log15.Ctx{"helper": h.Name})
	logger.SetHandler(log15.StreamHandler(journal, log15.TerminalFormat()))

	if h.Invoker == nil {
		h.Invoker = helpers.ExecInvoker{Delegate: h.Delegate, Output: output, Journal: journal}
	}

	outcome := h.Run(rawArgs, profile.EffectiveRoot(), logger)
	if outcome.Error != nil {
		panic(Error.NewWith(
			fmt.Sprintf("%s: %s", h.Name, errors.GetMessage(outcome.Error)),
			SetExitCode(EXIT_USER),
		))
	}
	if outcome.ExitCode != 0 {
		// The delegate's own code is reported but not propagated verbatim;
		// what the build sees is that this helper step died.
		panic(Error.NewWith(
			fmt.Sprintf("%s: %s exited with status %d; cannot continue the build",
				h.Name, h.Delegate, outcome.ExitCode),
			SetExitCode(EXIT_DELEGATEFAIL),
		))
	}
	return nil
}
