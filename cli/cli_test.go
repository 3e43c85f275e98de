package cli

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spacemonkeygo/errors"
	"github.com/spacemonkeygo/errors/try"

	"github.com/hannob/portage/buildenv"
	"github.com/hannob/portage/lib/testutil"
)

func catchCLIError(fn func()) (caught *errors.Error) {
	try.Do(fn).Catch(Error, func(err *errors.Error) {
		caught = err
	}).Done()
	return
}

/*
	Lays out a staging image containing `etc/x` and points the profile
	variable at a profile rooted there.  Returns the image root.
*/
func stageFixture() string {
	root, err := filepath.Abs("stage")
	if err != nil {
		panic(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "etc"), 0755); err != nil {
		panic(err)
	}
	if err := ioutil.WriteFile(filepath.Join(root, "etc", "x"), []byte("cfg\n"), 0600); err != nil {
		panic(err)
	}
	profile := fmt.Sprintf("imageRoot: %s\nprefixCapable: true\n", root)
	if err := ioutil.WriteFile("profile.yaml", []byte(profile), 0644); err != nil {
		panic(err)
	}
	os.Setenv(buildenv.ProfileEnvName, "profile.yaml")
	return root
}

func TestCLI(t *testing.T) {
	Convey("Given a staged image and profile", t, testutil.WithTmpdir(func(c C) {
		restore := os.Getenv(buildenv.ProfileEnvName)
		Reset(func() { os.Setenv(buildenv.ProfileEnvName, restore) })
		root := stageFixture()
		journal := testutil.Writer{Convey: c}

		Convey("it should not crash without args", func() {
			Main("portage-helpers", []string{"portage-helpers"}, journal, ioutil.Discard)
		})

		Convey("fperms applies the mode inside the image, not to the live path", func() {
			Main("portage-helpers", []string{"portage-helpers", "fperms", "0644", "/etc/x"}, journal, ioutil.Discard)

			info, err := os.Stat(filepath.Join(root, "etc", "x"))
			So(err, ShouldBeNil)
			So(info.Mode().Perm(), ShouldEqual, os.FileMode(0644))
		})

		Convey("fowners accepts a numeric owner spec against the staged path", func() {
			// chowning to our own uid needs no privileges and proves delegation end to end.
			self := fmt.Sprintf("%d", os.Getuid())
			Main("portage-helpers", []string{"portage-helpers", "fowners", self, "/etc/x"}, journal, ioutil.Discard)
		})

		Convey("helpers respond to their symlink basenames", func() {
			Main("fperms", []string{"fperms", "0640", "/etc/x"}, journal, ioutil.Discard)

			info, err := os.Stat(filepath.Join(root, "etc", "x"))
			So(err, ShouldBeNil)
			So(info.Mode().Perm(), ShouldEqual, os.FileMode(0640))
		})

		Convey("delegate stdout is passed through the output stream", func() {
			var output bytes.Buffer
			// `-v` is chmod's flag, not ours; it makes the delegate narrate on stdout.
			Main("portage-helpers", []string{"portage-helpers", "fperms", "-v", "0644", "/etc/x"}, journal, &output)

			So(output.String(), ShouldContainSubstring, "etc/x")
		})

		Convey("a failed delegate is fatal with the delegate-failure code", func() {
			caught := catchCLIError(func() {
				Main("portage-helpers", []string{"portage-helpers", "fperms", "0644", "/etc/missing"}, journal, ioutil.Discard)
			})
			So(caught, ShouldNotBeNil)
			So(ExitCodeFor(caught), ShouldEqual, EXIT_DELEGATEFAIL)
		})

		Convey("an unknown helper name is fatal with the badargs code", func() {
			caught := catchCLIError(func() {
				Main("portage-helpers", []string{"portage-helpers", "fchmodders"}, journal, ioutil.Discard)
			})
			So(caught, ShouldNotBeNil)
			So(ExitCodeFor(caught), ShouldEqual, EXIT_BADARGS)
		})

		Convey("a missing profile is fatal before any argument is considered", func() {
			os.Unsetenv(buildenv.ProfileEnvName)
			caught := catchCLIError(func() {
				Main("portage-helpers", []string{"portage-helpers", "fowners", "root", "/etc/x"}, journal, ioutil.Discard)
			})
			So(caught, ShouldNotBeNil)
			So(ExitCodeFor(caught), ShouldEqual, EXIT_ENV)
		})
	}))
}
