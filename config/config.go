package config

import (
	"fmt"

	"github.com/katalvlaran/crucible/crucible"
	"github.com/katalvlaran/crucible/gridgraph"
)

// Config is the root of a profiles file.
type Config struct {
	// Profiles are solved in order; names must be unique.
	Profiles []Profile `yaml:"profiles"`
}

// Profile is one run-bound configuration of the search.
type Profile struct {
	Name string `yaml:"name"`

	// MinRun and MaxRun are pointers so an explicit 0 is kept and rejected
	// by Validate instead of being replaced by a default.
	MinRun *int `yaml:"min_run,omitempty"`
	MaxRun *int `yaml:"max_run,omitempty"`

	// Start and Goal default to the top-left and bottom-right corners.
	Start *Coord `yaml:"start,omitempty"`
	Goal  *Coord `yaml:"goal,omitempty"`

	// Directions restricts the first run ("up", "right", "down", "left").
	Directions []string `yaml:"directions,omitempty"`

	// MaxExpansions caps popped states; 0 means unlimited.
	MaxExpansions int `yaml:"max_expansions,omitempty"`
}

// Coord is a YAML-friendly grid coordinate.
type Coord struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Cell converts c to a gridgraph.Cell.
func (c Coord) Cell() gridgraph.Cell {
	return gridgraph.Cell{Row: c.Row, Col: c.Col}
}

// RunBounds returns the effective run bounds: MinRun defaults to 1 and
// MaxRun to the larger of MinRun and 3.
func (p Profile) RunBounds() (minRun, maxRun int) {
	minRun = crucible.TightMinRun
	if p.MinRun != nil {
		minRun = *p.MinRun
	}
	maxRun = max(minRun, crucible.TightMaxRun)
	if p.MaxRun != nil {
		maxRun = *p.MaxRun
	}
	return minRun, maxRun
}

// Options translates the profile into crucible search options.
// Direction names are parsed here; bounds against a concrete grid are
// checked by crucible.Search.
func (p Profile) Options() ([]crucible.Option, error) {
	opts := []crucible.Option{crucible.WithRunBounds(p.RunBounds())}
	if p.Start != nil {
		opts = append(opts, crucible.WithStart(p.Start.Cell()))
	}
	if p.Goal != nil {
		opts = append(opts, crucible.WithGoal(p.Goal.Cell()))
	}
	if len(p.Directions) > 0 {
		dirs := make([]gridgraph.Direction, 0, len(p.Directions))
		for _, name := range p.Directions {
			d, err := gridgraph.ParseDirection(name)
			if err != nil {
				return nil, fmt.Errorf("profile %q: %w", p.Name, err)
			}
			dirs = append(dirs, d)
		}
		opts = append(opts, crucible.WithInitialDirections(dirs...))
	}
	if p.MaxExpansions > 0 {
		opts = append(opts, crucible.WithMaxExpansions(p.MaxExpansions))
	}
	return opts, nil
}
