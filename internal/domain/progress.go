package domain

// Progress summarises completion of a session's layout
type Progress struct {
	AdditionalCompleted  int     `json:"additionalCompleted"`
	AdditionalPercentage float64 `json:"additionalPercentage"`
	AdditionalTotal      int     `json:"additionalTotal"`
	GantryCompleted      int     `json:"gantryCompleted"`
	GantryPercentage     float64 `json:"gantryPercentage"`
	GantryTotal          int     `json:"gantryTotal"`
	TotalCompleted       int     `json:"totalCompleted"`
	TotalPercentage      float64 `json:"totalPercentage"`
	TotalPositions       int     `json:"totalPositions"`
}

// IsComplete reports whether every position has a complete result.
// An empty layout is never complete.
func (p Progress) IsComplete() bool {
	return p.TotalPositions > 0 && p.TotalCompleted == p.TotalPositions
}

// CalculateProgress counts the positions of the layout that have a complete
// scan result, split into gantry and additional positions
func CalculateProgress(layout []Position, results []ScanResult) Progress {
	complete := make(map[string]bool, len(results))
	for _, r := range results {
		if r.IsComplete() {
			complete[r.PositionID] = true
		}
	}

	var p Progress
	for _, pos := range layout {
		done := complete[pos.ID]
		if pos.IsGantry() {
			p.GantryTotal++
			if done {
				p.GantryCompleted++
			}
			continue
		}
		p.AdditionalTotal++
		if done {
			p.AdditionalCompleted++
		}
	}

	p.TotalPositions = p.GantryTotal + p.AdditionalTotal
	p.TotalCompleted = p.GantryCompleted + p.AdditionalCompleted
	p.GantryPercentage = percentage(p.GantryCompleted, p.GantryTotal)
	p.AdditionalPercentage = percentage(p.AdditionalCompleted, p.AdditionalTotal)
	p.TotalPercentage = percentage(p.TotalCompleted, p.TotalPositions)
	return p
}

func percentage(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}
