package domain

import "encoding/json"

// GantryZone is the zone assigned to every gantry position
const GantryZone = "gantry"

// PositionType describes the kind of screen mounted at a position
type PositionType string

const (
	PositionAdditional PositionType = "additional"
	PositionQuad       PositionType = "quad"
	PositionSingle     PositionType = "single"
	PositionSky        PositionType = "sky"
)

// Row is the gantry row of a position. The zero value means no row.
type Row string

const (
	RowNone   Row = ""
	RowBottom Row = "bottom"
	RowTop    Row = "top"
)

// MarshalJSON encodes RowNone as null
func (r Row) MarshalJSON() ([]byte, error) {
	if r == RowNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(r))
}

// UnmarshalJSON decodes null as RowNone
func (r *Row) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = RowNone
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*r = Row(s)
	return nil
}

// Position is one scan target: a physical screen or screen group
type Position struct {
	Column *int         `json:"column" yaml:"column"`
	ID     string       `json:"id" yaml:"id"`
	Label  string       `json:"label" yaml:"label"`
	Row    Row          `json:"row" yaml:"row"`
	Type   PositionType `json:"type" yaml:"type"`
	Zone   string       `json:"zone" yaml:"zone"`
}

// IsGantry reports whether the position belongs to the gantry.
// Positions persisted without a zone are classified by their row.
func (p Position) IsGantry() bool {
	return p.Zone == GantryZone || p.Row == RowTop || p.Row == RowBottom
}

// IsQuad reports whether the position is a four-screen group
func (p Position) IsQuad() bool {
	return p.Type == PositionQuad
}

// PositionsByZone groups positions by zone, keeping layout order within
// each zone and returning zones in order of first appearance
func PositionsByZone(layout []Position) ([]string, map[string][]Position) {
	var zones []string
	byZone := make(map[string][]Position)
	for _, p := range layout {
		zone := p.Zone
		if zone == "" {
			zone = "unknown"
		}
		if _, ok := byZone[zone]; !ok {
			zones = append(zones, zone)
		}
		byZone[zone] = append(byZone[zone], p)
	}
	return zones, byZone
}
