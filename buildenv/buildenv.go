package buildenv

import (
	"io/ioutil"
	"os"

	"github.com/hannob/portage/def"
)

/*
	Name of the environment variable pointing at the build profile file.

	The build orchestrator exports this before spawning any package build
	script; the helpers refuse to run without it, since mutating paths
	against an unknown image root would mean mutating the live system.
*/
const ProfileEnvName = "PORTAGE_BUILD_PROFILE"

/*
	ResolveProfile locates and loads the build profile for this invocation.

	This is the bootstrap step: it happens once, before any argument is
	examined, and any failure here is immediately fatal to the helper
	(`def.ConfigError`).  The rest of the system receives the profile as a
	plain value and never touches the process environment again.
*/
func ResolveProfile() (*def.BuildProfile, error) {
	pth := os.Getenv(ProfileEnvName)
	if pth == "" {
		return nil, def.ConfigError.New("%s is not set; helpers can only run inside a package build", ProfileEnvName)
	}
	return LoadProfile(pth)
}

func LoadProfile(pth string) (*def.BuildProfile, error) {
	ser, err := ioutil.ReadFile(pth)
	if err != nil {
		return nil, def.ConfigError.New("cannot read build profile at %q: %s", pth, err)
	}
	return def.ParseProfile(ser)
}
