package domain

import "fmt"

// GantryLayout is the screen arrangement of the gantry
type GantryLayout struct {
	BottomRow []Position `json:"bottomRow" yaml:"bottomRow"`
	TopRow    []Position `json:"topRow" yaml:"topRow"`
}

// Count returns the number of gantry positions
func (g *GantryLayout) Count() int {
	if g == nil {
		return 0
	}
	return len(g.TopRow) + len(g.BottomRow)
}

// ZoneScreens lists the additional screens of one zone, in order
type ZoneScreens struct {
	Screens []string `json:"screens" yaml:"screens"`
	Zone    string   `json:"zone" yaml:"zone"`
}

// Configuration is a named template describing a site's full screen layout
type Configuration struct {
	AdditionalCount   int           `json:"additional_count" yaml:"additional_count"`
	AdditionalScreens []ZoneScreens `json:"additional_screens" yaml:"additional_screens"`
	EstimatedMinutes  int           `json:"estimated_minutes" yaml:"estimated_minutes"`
	GantryCount       int           `json:"gantry_count" yaml:"gantry_count"`
	GantryLayout      *GantryLayout `json:"gantry_layout" yaml:"gantry_layout"`
	ID                string        `json:"id" yaml:"id"`
	Name              string        `json:"name" yaml:"name"`
	TotalPositions    int           `json:"total_positions" yaml:"total_positions"`
}

// Usable reports whether the configuration carries a gantry layout
func (c Configuration) Usable() bool {
	return c.GantryLayout != nil && c.GantryLayout.Count() > 0
}

// AdditionalScreenCount returns the number of screens over all zones
func (c Configuration) AdditionalScreenCount() int {
	n := 0
	for _, zs := range c.AdditionalScreens {
		n += len(zs.Screens)
	}
	return n
}

// Verify checks that the stored counts agree with the layout.
// Edited configurations are not kept consistent automatically, so this is
// checked on demand rather than enforced on write.
func (c Configuration) Verify() error {
	layout, err := ExpandLayout(c)
	if err != nil {
		return err
	}
	if c.TotalPositions != len(layout) {
		return fmt.Errorf("configuration %q: total_positions is %d but layout has %d positions",
			c.Name, c.TotalPositions, len(layout))
	}
	if c.GantryCount != c.GantryLayout.Count() {
		return fmt.Errorf("configuration %q: gantry_count is %d but gantry has %d positions",
			c.Name, c.GantryCount, c.GantryLayout.Count())
	}
	if c.AdditionalCount != c.AdditionalScreenCount() {
		return fmt.Errorf("configuration %q: additional_count is %d but zones hold %d screens",
			c.Name, c.AdditionalCount, c.AdditionalScreenCount())
	}
	return nil
}

// AdditionalPositionID returns the id of the index-th screen of a zone
func AdditionalPositionID(zone string, index int) string {
	return fmt.Sprintf("%s-%d", zone, index)
}

// ExpandLayout flattens a configuration into its scan positions: top row,
// bottom row, then each zone's screens in order. Fails if two positions
// end up with the same id.
func ExpandLayout(c Configuration) ([]Position, error) {
	layout := make([]Position, 0, c.GantryLayout.Count()+c.AdditionalScreenCount())

	if c.GantryLayout != nil {
		for _, row := range [][]Position{c.GantryLayout.TopRow, c.GantryLayout.BottomRow} {
			for _, p := range row {
				p.Zone = GantryZone
				layout = append(layout, p)
			}
		}
	}

	for _, zs := range c.AdditionalScreens {
		for i, screen := range zs.Screens {
			layout = append(layout, Position{
				Column: nil,
				ID:     AdditionalPositionID(zs.Zone, i),
				Label:  screen,
				Row:    RowNone,
				Type:   PositionAdditional,
				Zone:   zs.Zone,
			})
		}
	}

	seen := make(map[string]struct{}, len(layout))
	for _, p := range layout {
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePositionID, p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	return layout, nil
}

// FallbackRandom selects one of the known configurations at random when a
// site has none
const FallbackRandom = "random"

// SiteConfigurations returns the configurations an engineer can choose from
// at a site. Sites without a usable configuration get one generated
// configuration chosen by the fallback policy: FallbackRandom picks a known
// name uniformly with intn, any other value must be a known name. The second
// return value reports whether the fallback was applied.
func SiteConfigurations(site Site, fallback string, intn func(int) int) ([]Configuration, bool, error) {
	var usable []Configuration
	for _, c := range site.Configurations {
		if c.Usable() {
			usable = append(usable, c)
		}
	}
	if len(usable) > 0 {
		return usable, false, nil
	}

	name := fallback
	if fallback == "" || fallback == FallbackRandom {
		names := ConfigurationNames()
		name = names[intn(len(names))]
	}

	cfg, err := GenerateConfiguration(name, site.Brand)
	if err != nil {
		return nil, false, fmt.Errorf("%w: fallback %q: %v", ErrNoConfiguration, fallback, err)
	}
	return []Configuration{cfg}, true, nil
}

// SelectConfiguration picks a configuration by id or name from the choices.
// An empty selector picks the first choice. A known configuration name that
// is not among the choices is generated for the site's brand.
func SelectConfiguration(choices []Configuration, selector string, brand Brand) (Configuration, error) {
	if selector == "" {
		if len(choices) == 0 {
			return Configuration{}, ErrNoConfiguration
		}
		return choices[0], nil
	}
	for _, c := range choices {
		if c.ID == selector || c.Name == selector {
			return c, nil
		}
	}
	return GenerateConfiguration(selector, brand)
}
