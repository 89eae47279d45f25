// Package config loads solve profiles for the crucible search from YAML.
//
// A profile names one run-bound configuration (min/max run length, optional
// start and goal cells, optional initial directions and step budget). A
// file may hold any number of profiles; the CLI solves them all against the
// same grid.
//
// # Loading
//
//	cfg, err := config.Load("profiles.yaml")
//
// Loading reads the file, decodes it strictly (unknown keys are errors),
// applies defaults, applies environment overrides and validates.
//
// # File format
//
//	profiles:
//	  - name: tight
//	    min_run: 1
//	    max_run: 3
//	  - name: ultra
//	    min_run: 4
//	    max_run: 10
//	    start: {row: 0, col: 0}
//	    goal: {row: 12, col: 12}
//	    directions: [right, down]
//	    max_expansions: 100000
//
// # Defaults
//
// An empty profile list becomes the two classic profiles (tight 1..3 and
// ultra 4..10). A missing min_run is 1; a missing max_run is the larger of
// min_run and 3; a missing name is "profile-<n>". An explicit 0 is kept
// and rejected by Validate.
//
// # Errors
//
// Validate returns a ValidationError listing every problem. Each entry
// matches one of ErrNoProfiles, ErrDuplicateProfile or ErrInvalidProfile
// with errors.Is.
//
// # Environment Overrides
//
//   - CRUCIBLE_MAX_EXPANSIONS sets max_expansions on every profile.
package config
