package config

import "errors"

var (
	// ErrNoProfiles indicates a configuration without any profile.
	ErrNoProfiles = errors.New("config: at least one profile is required")
	// ErrDuplicateProfile indicates two profiles sharing a name.
	ErrDuplicateProfile = errors.New("config: duplicate profile name")
	// ErrInvalidProfile indicates a profile setting outside its legal range.
	ErrInvalidProfile = errors.New("config: invalid profile setting")
)
