package helpers

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/hannob/portage/lib/testutil"
)

func TestExecInvoker(t *testing.T) {
	Convey("Given an invoker delegating to the shell", t, func() {
		var output, journal bytes.Buffer
		inv := ExecInvoker{Delegate: "sh", Output: &output, Journal: &journal}

		Convey("a zero exit comes back as zero", func() {
			code, err := inv.Invoke([]string{"-c", "exit 0"})
			So(err, ShouldBeNil)
			So(code, ShouldEqual, 0)
		})

		Convey("a nonzero exit comes back as data, not an error", func() {
			code, err := inv.Invoke([]string{"-c", "exit 7"})
			So(err, ShouldBeNil)
			So(code, ShouldEqual, 7)
		})

		Convey("delegate stdout passes through while stderr joins the journal", func() {
			_, err := inv.Invoke([]string{"-c", "echo hello-from-delegate; echo grumble >&2"})
			So(err, ShouldBeNil)
			So(output.String(), ShouldContainSubstring, "hello-from-delegate")
			So(output.String(), ShouldNotContainSubstring, "grumble")
			So(journal.String(), ShouldContainSubstring, "grumble")
			So(journal.String(), ShouldNotContainSubstring, "hello-from-delegate")
		})
	})

	Convey("A missing delegate is a typed environment error", t, func() {
		var output, journal bytes.Buffer
		inv := ExecInvoker{Delegate: "surely-no-such-tool-on-any-host", Output: &output, Journal: &journal}

		_, err := inv.Invoke([]string{"whatever"})
		So(err, testutil.ShouldBeErrorClass, NoSuchDelegateError)
	})
}
