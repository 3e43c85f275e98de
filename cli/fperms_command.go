package cli

import (
	"io"

	"github.com/codegangsta/cli"

	"github.com/hannob/portage/helpers"
)

func FpermsCommandPattern(journal, output io.Writer) cli.Command {
	return cli.Command{
		Name:            "fperms",
		Usage:           "Change permission modes of files in the staged image",
		ArgsUsage:       "[OPTIONS] MODE PATH...",
		SkipFlagParsing: true,
		Action: func(ctx *cli.Context) error {
			return runHelper(helpers.Helper{
				Name:     "fperms",
				Delegate: "chmod",
			}, []string(ctx.Args()), journal, output)
		},
	}
}
