// Package codec provides the round-trip helpers behind the encoding
// drills. The teaching points: only exported fields travel, omitempty
// erases zero values, and a decoded zero is indistinguishable from an
// absent field unless the field is a pointer.
package codec

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/drill/internal/errors"
)

// Profile carries one field per teaching point.
type Profile struct {
	Name     string  `json:"name" yaml:"name"`
	Age      int     `json:"age,omitempty" yaml:"age,omitempty"`
	Nickname *string `json:"nickname,omitempty" yaml:"nickname,omitempty"`

	// secret never travels: unexported fields are invisible to both
	// encoders.
	secret string
}

// NewProfile builds a profile with a hidden field set, for demonstrating
// what survives a round trip.
func NewProfile(name string, age int, secret string) Profile {
	return Profile{Name: name, Age: age, secret: secret}
}

// Secret exposes the hidden field so drills can show it was dropped.
func (p Profile) Secret() string {
	return p.secret
}

// JSONRoundTrip encodes p to JSON and decodes it into a fresh value.
func JSONRoundTrip(p Profile) (Profile, string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return Profile{}, "", errors.NewInternal(errors.ErrCodeInternal, "marshal profile", err)
	}

	var out Profile
	if err := json.Unmarshal(data, &out); err != nil {
		return Profile{}, "", errors.NewInternal(errors.ErrCodeInternal, "unmarshal profile", err)
	}

	return out, string(data), nil
}

// YAMLRoundTrip encodes p to YAML and decodes it into a fresh value.
func YAMLRoundTrip(p Profile) (Profile, string, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return Profile{}, "", errors.NewInternal(errors.ErrCodeInternal, "marshal profile", err)
	}

	var out Profile
	if err := yaml.Unmarshal(data, &out); err != nil {
		return Profile{}, "", errors.NewInternal(errors.ErrCodeInternal, "unmarshal profile", err)
	}

	return out, string(data), nil
}
