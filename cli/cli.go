package cli

import (
	"fmt"
	"io"

	"github.com/codegangsta/cli"
)

func Main(invokedAs string, args []string, journal, output io.Writer) {
	App := cli.NewApp()

	App.Name = "portage-helpers"
	App.Usage = "Apply install-time mutations inside a staged image."
	App.Version = "v0.1"

	App.Writer = journal

	App.Commands = []cli.Command{
		FownersCommandPattern(journal, output),
		FpermsCommandPattern(journal, output),
	}

	// Reporting "no help topic for 'zyx'" and exiting with a *zero* is... silly.
	// A failure to hit a command should be an error.  Like, if a build script does `fowners somethingimportant`, there's no way it shouldn't *stop* when that's not there.
	App.CommandNotFound = func(ctx *cli.Context, command string) {
		panic(Error.NewWith(
			fmt.Sprintf("'%s %v' is not a known helper", ctx.App.Name, command),
			SetExitCode(EXIT_BADARGS),
		))
	}

	if err := App.Run(busyboxArgs(App, invokedAs, args)); err != nil {
		panic(Error.NewWith(
			fmt.Sprintf("incorrect usage: %s", err),
			SetExitCode(EXIT_BADARGS),
		))
	}
}

/*
	Build scripts call the helpers through symlinks named after each
	subcommand.  When the basename we were invoked under names one of our
	commands, splice that command in so `fowners -R root /etc` and
	`portage-helpers fowners -R root /etc` mean the same thing.
*/
func busyboxArgs(App *cli.App, invokedAs string, args []string) []string {
	for _, cmd := range App.Commands {
		if cmd.Name == invokedAs {
			spliced := make([]string, 0, len(args)+1)
			spliced = append(spliced, args[0], invokedAs)
			spliced = append(spliced, args[1:]...)
			return spliced
		}
	}
	return args
}
