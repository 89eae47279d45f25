package config

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/crucible/gridgraph"
)

// FieldError is a validation failure of one configuration field.
type FieldError struct {
	// Field is the dotted path to the field (e.g. "profiles[1].max_run").
	Field string

	// Message is a human-readable error message.
	Message string

	// Err is the sentinel the failure matches with errors.Is.
	Err error
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap returns the sentinel behind the failure.
func (e FieldError) Unwrap() error { return e.Err }

// ValidationError collects every FieldError found in a configuration.
// errors.Is and errors.As look through all of them.
type ValidationError struct {
	Errors []FieldError
}

// Error lists the problems on one line, separated by semicolons.
func (e ValidationError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "invalid profiles"
	case 1:
		return "invalid profiles: " + e.Errors[0].Error()
	}
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Error()
	}
	return fmt.Sprintf("invalid profiles (%d problems): %s", len(e.Errors), strings.Join(parts, "; "))
}

// Unwrap exposes each field error to errors.Is and errors.As.
func (e ValidationError) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, fe := range e.Errors {
		errs[i] = fe
	}
	return errs
}

// Validate checks every profile and returns a ValidationError listing all
// problems, or nil. Grid-dependent checks (start and goal inside the grid)
// are left to crucible.Search.
func Validate(cfg *Config) error {
	var errs []FieldError

	if len(cfg.Profiles) == 0 {
		errs = append(errs, FieldError{Field: "profiles", Message: "at least one profile is required", Err: ErrNoProfiles})
	}

	seen := make(map[string]int, len(cfg.Profiles))
	for i, p := range cfg.Profiles {
		prefix := fmt.Sprintf("profiles[%d]", i)
		if first, dup := seen[p.Name]; dup {
			errs = append(errs, FieldError{
				Field:   prefix + ".name",
				Message: fmt.Sprintf("duplicate profile name %q (first used by profiles[%d])", p.Name, first),
				Err:     ErrDuplicateProfile,
			})
		} else {
			seen[p.Name] = i
		}
		errs = append(errs, validateProfile(prefix, &p)...)
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

func validateProfile(prefix string, p *Profile) []FieldError {
	var errs []FieldError
	invalid := func(field, format string, args ...any) {
		errs = append(errs, FieldError{Field: prefix + field, Message: fmt.Sprintf(format, args...), Err: ErrInvalidProfile})
	}

	if p.Name == "" {
		invalid(".name", "must not be empty")
	}
	minRun, maxRun := p.RunBounds()
	if minRun < 1 {
		invalid(".min_run", "must be at least 1, got %d", minRun)
	}
	if maxRun < minRun {
		invalid(".max_run", "must be at least min_run (%d), got %d", minRun, maxRun)
	}
	if p.MaxExpansions < 0 {
		invalid(".max_expansions", "must not be negative")
	}
	checkCoord := func(field string, c *Coord) {
		if c != nil && (c.Row < 0 || c.Col < 0) {
			invalid(field, "coordinates must be non-negative, got (%d,%d)", c.Row, c.Col)
		}
	}
	checkCoord(".start", p.Start)
	checkCoord(".goal", p.Goal)

	seen := make(map[gridgraph.Direction]bool, len(p.Directions))
	for j, name := range p.Directions {
		field := fmt.Sprintf(".directions[%d]", j)
		d, err := gridgraph.ParseDirection(name)
		if err != nil {
			invalid(field, "unknown direction %q", name)
			continue
		}
		if seen[d] {
			invalid(field, "direction %s listed twice", d)
		}
		seen[d] = true
	}

	return errs
}
