package domain

import (
	"fmt"
	"strings"
)

// Known configuration names, in display order
const (
	Config4Over4    = "4 over 4"
	Config5Over5    = "5 over 5"
	Config5Over1    = "5 over 1"
	Config5Straight = "5 straight"
	Config6Over6    = "6 over 6"
)

// Additional screen zones
const (
	ZoneOffGantry      = "offGantry"
	ZoneSportsZone     = "sportsZone"
	ZoneCounterArea    = "counterArea"
	ZoneFOBTZone       = "fobtZone"
	ZoneOppositeGantry = "oppositeGantry"
)

// zoneOrder is the expansion order of additional zones
var zoneOrder = []string{
	ZoneOffGantry,
	ZoneSportsZone,
	ZoneCounterArea,
	ZoneFOBTZone,
	ZoneOppositeGantry,
}

// zoneCatalogue lists every screen a zone can hold. Configurations take a
// prefix of each list.
var zoneCatalogue = map[string][]string{
	ZoneOffGantry:      {"Early Price Screen", "Early Price Screen 2"},
	ZoneSportsZone:     {"SKY B", "Sports TV 1", "Sports TV 2", "Sports TV 3"},
	ZoneCounterArea:    {"Manager Monitor 1", "Manager Monitor 2", "Manager Monitor 3", "Manager Display Board"},
	ZoneFOBTZone:       {"FOBT TV 1", "FOBT TV 2", "FOBT TV 3", "FOBT TV 4", "FOBT TV 5", "FOBT TV 6"},
	ZoneOppositeGantry: {"Touch Screen 1", "Touch Screen 2", "Touch Screen 3", "Touch Screen 4", "Touch Screen 5", "Touch Screen 6"},
}

type configurationTemplate struct {
	bottom           []Position
	estimatedMinutes int
	top              []Position
	// screens per zone, indexed like zoneOrder
	zoneCounts [5]int
}

func single(id, label string, column int) Position {
	return Position{ID: id, Label: label, Type: PositionSingle, Row: RowTop, Column: intPtr(column), Zone: GantryZone}
}

func sky(column int) Position {
	return Position{ID: "sky-a", Label: "SKY A", Type: PositionSky, Row: RowTop, Column: intPtr(column), Zone: GantryZone}
}

func quad(n, column int) Position {
	return Position{
		ID:     fmt.Sprintf("%da-%dd", n, n),
		Label:  fmt.Sprintf("%dA-%dD", n, n),
		Type:   PositionQuad,
		Row:    RowBottom,
		Column: intPtr(column),
		Zone:   GantryZone,
	}
}

// ctvRow builds the CTV singles counting down from n, followed by SKY A
func ctvRow(n int) []Position {
	row := make([]Position, 0, n+1)
	for i := n; i >= 1; i-- {
		row = append(row, single(fmt.Sprintf("ctv-%d", i), fmt.Sprintf("CTV %d", i), n-i))
	}
	return append(row, sky(n))
}

// quadRow builds quads numbered first..last starting at column start
func quadRow(first, last, start int) []Position {
	row := make([]Position, 0, last-first+1)
	for n := first; n <= last; n++ {
		row = append(row, quad(n, start+n-first))
	}
	return row
}

var catalogue = map[string]configurationTemplate{
	Config4Over4: {
		top:              ctvRow(3),
		bottom:           quadRow(2, 5, 0),
		zoneCounts:       [5]int{1, 3, 4, 4, 3},
		estimatedMinutes: 60,
	},
	Config5Over5: {
		top:              ctvRow(4),
		bottom:           quadRow(2, 6, 0),
		zoneCounts:       [5]int{1, 3, 4, 4, 6},
		estimatedMinutes: 75,
	},
	Config5Over1: {
		top:              ctvRow(4),
		bottom:           quadRow(6, 6, 2),
		zoneCounts:       [5]int{1, 3, 4, 2, 2},
		estimatedMinutes: 55,
	},
	Config5Straight: {
		top:              ctvRow(4),
		bottom:           []Position{},
		zoneCounts:       [5]int{2, 4, 4, 4, 6},
		estimatedMinutes: 65,
	},
	Config6Over6: {
		top:              ctvRow(5),
		bottom:           quadRow(2, 7, 0),
		zoneCounts:       [5]int{2, 4, 4, 6, 6},
		estimatedMinutes: 90,
	},
}

// ConfigurationNames returns the known configuration names in display order
func ConfigurationNames() []string {
	return []string{Config4Over4, Config5Over5, Config5Over1, Config5Straight, Config6Over6}
}

// IsKnownConfiguration reports whether name has a generator
func IsKnownConfiguration(name string) bool {
	_, ok := catalogue[name]
	return ok
}

// ConfigurationID builds the stable id of a generated configuration,
// e.g. "5-over-1-coral"
func ConfigurationID(name string, brand Brand) string {
	id := strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	if brand != "" {
		id += "-" + strings.ToLower(string(brand))
	}
	return id
}

// GenerateConfiguration builds the full configuration for a known name.
// Brand only affects the configuration id.
func GenerateConfiguration(name string, brand Brand) (Configuration, error) {
	tmpl, ok := catalogue[name]
	if !ok {
		return Configuration{}, fmt.Errorf("%w: %q", ErrUnknownConfiguration, name)
	}

	screens := make([]ZoneScreens, 0, len(zoneOrder))
	additional := 0
	for i, zone := range zoneOrder {
		n := tmpl.zoneCounts[i]
		if n == 0 {
			continue
		}
		names := make([]string, n)
		copy(names, zoneCatalogue[zone][:n])
		screens = append(screens, ZoneScreens{Zone: zone, Screens: names})
		additional += n
	}

	gantry := len(tmpl.top) + len(tmpl.bottom)
	return Configuration{
		AdditionalCount:   additional,
		AdditionalScreens: screens,
		EstimatedMinutes:  tmpl.estimatedMinutes,
		GantryCount:       gantry,
		GantryLayout: &GantryLayout{
			BottomRow: clonePositions(tmpl.bottom),
			TopRow:    clonePositions(tmpl.top),
		},
		ID:             ConfigurationID(name, brand),
		Name:           name,
		TotalPositions: gantry + additional,
	}, nil
}

func clonePositions(in []Position) []Position {
	out := make([]Position, len(in))
	for i, p := range in {
		if p.Column != nil {
			p.Column = intPtr(*p.Column)
		}
		out[i] = p
	}
	return out
}

func intPtr(v int) *int { return &v }
