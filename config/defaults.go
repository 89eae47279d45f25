package config

import (
	"fmt"

	"github.com/katalvlaran/crucible/crucible"
)

// Default profile names.
const (
	DefaultTightName = "tight"
	DefaultUltraName = "ultra"
)

// Default returns the two classic profiles: tight (1..3) and ultra (4..10).
func Default() *Config {
	return &Config{Profiles: defaultProfiles()}
}

func defaultProfiles() []Profile {
	return []Profile{
		{Name: DefaultTightName, MinRun: intPtr(crucible.TightMinRun), MaxRun: intPtr(crucible.TightMaxRun)},
		{Name: DefaultUltraName, MinRun: intPtr(crucible.UltraMinRun), MaxRun: intPtr(crucible.UltraMaxRun)},
	}
}

// ApplyDefaults fills unset fields in place. Run bounds that were given,
// even as 0, are left for Validate to judge.
func ApplyDefaults(cfg *Config) {
	if len(cfg.Profiles) == 0 {
		cfg.Profiles = defaultProfiles()
		return
	}
	for i := range cfg.Profiles {
		p := &cfg.Profiles[i]
		if p.Name == "" {
			p.Name = fmt.Sprintf("profile-%d", i+1)
		}
		minRun, maxRun := p.RunBounds()
		if p.MinRun == nil {
			p.MinRun = intPtr(minRun)
		}
		if p.MaxRun == nil {
			p.MaxRun = intPtr(maxRun)
		}
	}
}

func intPtr(v int) *int { return &v }
