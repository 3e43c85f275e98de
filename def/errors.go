package def

import (
	"github.com/spacemonkeygo/errors"
)

/*
	ConfigError covers problems with the build profile itself: the profile
	file is missing, unreadable, or not parsable as a profile.  These are
	raised before any helper argument is examined.
*/
var ConfigError *errors.ErrorClass = errors.NewClass("ConfigError")

/*
	ValidationError is a base class for profile contents that parse but
	don't make sense (e.g. a relative image root).
*/
var ValidationError *errors.ErrorClass = errors.NewClass("ValidationError")
