package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/spacemonkeygo/errors"
	"github.com/spacemonkeygo/errors/try"

	"github.com/hannob/portage/cli"
)

func main() {
	try.Do(func() {
		cli.Main(invokedName(), os.Args, os.Stderr, os.Stdout)
	}).Catch(cli.Error, func(err *errors.Error) {
		// Errors marked as valid user-facing issues get a nice
		// pretty-printed route out, and may include specified exit codes.
		if isDebugMode() {
			// in debug-mode, repanic all the way to death so that we get all of golang's built in log features.
			panic(err)
		} else {
			// print nicely.
			fmt.Fprintf(os.Stderr, "%s: %s\n", invokedName(), err.Message())
			os.Exit(int(cli.ExitCodeFor(err)))
		}
	}).CatchAll(func(err error) {
		// Errors that aren't marked as valid user-facing issues should be
		// logged in preparation for a bug report.
		if isDebugMode() {
			panic(err)
		} else {
			// save the error to a file.  we want to keep the stacks, but not scare away the user.
			logPath, saveErr := saveErrorReport(err)
			var saveMsg string
			if saveErr == nil {
				saveMsg = fmt.Sprintf("We've logged the full error to a file: %q.  Please include this in the report.", logPath)
			} else {
				saveMsg = fmt.Sprintf("Additionally, we were unable to save a full log of the problem (\"%s\").", saveErr)
			}
			fmt.Fprintf(os.Stderr,
				"%s encountered a serious issue and was unable to complete your request!\n"+
					"Please file an issue to help us fix it.\n"+
					saveMsg+"\n"+
					"\n"+
					"This is the short version of the problem:\n"+
					"%s\n",
				invokedName(), err)
			os.Exit(int(cli.EXIT_UNKNOWNPANIC))
		}
	})
}

/*
	The helpers are typically installed as symlinks named after each
	subcommand ("fowners", "fperms", ...), so a build script can say
	`fowners root:root /etc/foo.conf` without knowing about this binary.
	Main resolves the basename to the matching subcommand.
*/
func invokedName() string {
	return filepath.Base(os.Args[0])
}

func isDebugMode() bool {
	// if either "DEBUG" or "PORTAGE_DEBUG" env vars are set, we're in debug mode.
	return len(os.Getenv("DEBUG")) != 0 || len(os.Getenv("PORTAGE_DEBUG")) != 0
}

func saveErrorReport(caught error) (string, error) {
	logFile, err := ioutil.TempFile(os.TempDir(), "portage-helper-error-report-")
	if err != nil {
		return "", err
	}
	defer logFile.Close()
	fmt.Fprintf(logFile, "Portage helper error report\n")
	fmt.Fprintf(logFile, "===========================\n")
	fmt.Fprintf(logFile, "Date: %s\n", time.Now())
	fmt.Fprintf(logFile, "\n")
	fmt.Fprintf(logFile, "Full error:\n")
	fmt.Fprintf(logFile, "-----------\n")
	fmt.Fprintf(logFile, "%s\n", caught)
	return logFile.Name(), nil
}
