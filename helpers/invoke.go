package helpers

import (
	"io"

	"github.com/polydawn/gosh"
	"github.com/spacemonkeygo/errors/try"
)

/*
	Invoker hands the rewritten argument list to some ownership- or
	mode-changing primitive and reports its exit status.

	The returned error covers failure to run at all; a delegate that ran and
	exited nonzero is reported through the integer, since deciding what a
	nonzero exit *means* is the caller's business, not the invoker's.
*/
type Invoker interface {
	Invoke(argv []string) (int, error)
}

/*
	ExecInvoker delegates to a real system tool as a subprocess.

	This is a single all-or-nothing handoff: no retries, no interpretation
	of the arguments, no partial application.  The tool's stdout is passed
	through to our own output stream; its stderr goes to the journal so the
	build log shows the delegate's complaints next to ours.
*/
type ExecInvoker struct {
	Delegate string    // name of the system tool, e.g. "chown".
	Output   io.Writer // receives the delegate's stdout.
	Journal  io.Writer // receives the delegate's stderr.
}

var _ Invoker = ExecInvoker{}

func (x ExecInvoker) Invoke(argv []string) (code int, err error) {
	bakeable := make([]interface{}, 0, len(argv)+2)
	bakeable = append(bakeable, x.Delegate)
	for _, arg := range argv {
		bakeable = append(bakeable, arg)
	}
	bakeable = append(bakeable, gosh.Opts{
		Out:    x.Output,
		Err:    x.Journal,
		OkExit: gosh.AnyExit,
	})
	cmd := gosh.Gosh(bakeable...)

	// transform gosh's typed errors to our hierarchical errors.
	try.Do(func() {
		code = cmd.Run().GetExitCode()
	}).CatchAll(func(caught error) {
		switch caught.(type) {
		case gosh.NoSuchCommandError:
			err = NoSuchDelegateError.New("delegate %q is missing from this host", x.Delegate)
		case gosh.NoArgumentsError:
			err = UnknownError.Wrap(caught)
		case gosh.ProcMonitorError:
			err = DelegateError.Wrap(caught)
		default:
			err = UnknownError.Wrap(caught)
		}
	}).Done()
	return
}
