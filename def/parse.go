package def

import (
	"bytes"

	"github.com/go-yaml/yaml"
	"github.com/spacemonkeygo/errors"
	"github.com/ugorji/go/codec"

	"github.com/hannob/portage/lib/cereal"
)

var codecBounceHandler = &codec.CborHandle{}

func ParseProfile(ser []byte) (*BuildProfile, error) {
	// Turn tabs into spaces so that tabs are acceptable inputs.
	ser = cereal.Tab2space(ser)
	// Bounce the serial form into another temporary intermediate form.
	// This lets us feed a byte area to ugorji codec that it understands,
	//  because it doesn't have any mechanisms to accept in-memory structs.
	var raw interface{}
	if err := yaml.Unmarshal(ser, &raw); err != nil {
		return nil, ConfigError.New("could not parse build profile: %s", errors.GetMessage(err))
	}
	var buf bytes.Buffer
	if err := codec.NewEncoder(&buf, codecBounceHandler).Encode(raw); err != nil {
		return nil, ConfigError.New("could not parse build profile: %s", errors.GetMessage(err))
	}
	// Actually decode with the smart codecs.
	var profile BuildProfile
	if err := codec.NewDecoder(&buf, codecBounceHandler).Decode(&profile); err != nil {
		return nil, ConfigError.New("could not parse build profile: %s", errors.GetMessage(err))
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (p BuildProfile) Validate() error {
	if p.ImageRoot != "" && p.ImageRoot[0] != '/' {
		return ValidationError.New("image root must be an absolute path (got %q)", p.ImageRoot)
	}
	return nil
}
