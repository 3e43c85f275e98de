package def

import (
	"strings"
)

/*
	BuildProfile carries the environment-derived configuration for one build:
	where the staged image lives, and whether this build mode understands
	prefix-relocated installs at all.

	It is constructed exactly once at startup and handed down by value;
	nothing below the CLI layer reads ambient process state.
*/
type BuildProfile struct {
	// ImageRoot is the staging directory standing in for the real
	// filesystem root while the package's files are assembled.
	ImageRoot string `json:"imageRoot"`

	// PrefixCapable reports whether this build mode defines prefix-aware
	// install-root variables.  When false, the configured ImageRoot is
	// disregarded entirely and helpers operate on paths as given.
	PrefixCapable bool `json:"prefixCapable"`
}

/*
	EffectiveRoot is the string prepended to absolute path operands.

	Trailing separators are stripped so that joining with an absolute path
	can never produce a doubled slash.  A non-prefix-capable profile yields
	the empty string, which degrades rewriting to identity.
*/
func (p BuildProfile) EffectiveRoot() string {
	if !p.PrefixCapable {
		return ""
	}
	return strings.TrimRight(p.ImageRoot, "/")
}
