package cli

import (
	"io"

	"github.com/codegangsta/cli"

	"github.com/hannob/portage/helpers"
)

func FownersCommandPattern(journal, output io.Writer) cli.Command {
	return cli.Command{
		Name:      "fowners",
		Usage:     "Change ownership of files in the staged image",
		ArgsUsage: "[OPTIONS] OWNER[:GROUP] PATH...",
		// Options belong to the system chown, not to us; hand them over untouched.
		SkipFlagParsing: true,
		Action: func(ctx *cli.Context) error {
			return runHelper(helpers.Helper{
				Name:     "fowners",
				Delegate: "chown",
			}, []string(ctx.Args()), journal, output)
		},
	}
}
