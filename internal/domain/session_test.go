package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertResult_ReplacesByPosition(t *testing.T) {
	s := Session{}

	replaced := s.UpsertResult(ScanResult{PositionID: "ctv-1", AssetTag: "111111"})
	assert.False(t, replaced)

	replaced = s.UpsertResult(ScanResult{PositionID: "sky-a", AssetTag: "222222"})
	assert.False(t, replaced)

	replaced = s.UpsertResult(ScanResult{PositionID: "ctv-1", AssetTag: "333333"})
	assert.True(t, replaced)

	require.Len(t, s.ScanResults, 2)
	assert.Equal(t, "333333", s.ScanResults[0].AssetTag)
	assert.Equal(t, "sky-a", s.ScanResults[1].PositionID)
}

func TestTransition_ForwardOnly(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s := Session{Status: StatusActive}

	require.NoError(t, s.Transition(StatusCompleted, now))
	assert.Equal(t, StatusCompleted, s.Status)
	require.NotNil(t, s.EndTime)
	assert.Equal(t, now, *s.EndTime)

	err := s.Transition(StatusActive, now)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	later := now.Add(time.Hour)
	require.NoError(t, s.Transition(StatusExported, later))
	assert.Equal(t, StatusExported, s.Status)
	assert.Equal(t, now, *s.EndTime)
	assert.Equal(t, later, *s.ExportedAt)

	assert.ErrorIs(t, s.Transition(StatusExported, later), ErrInvalidTransition)
}

func TestNormalize(t *testing.T) {
	s := Session{
		Layout: []Position{
			{ID: "ctv-1", Row: RowTop},
			{ID: "fobtZone-0", Zone: ZoneFOBTZone},
		},
		Status: "weird",
	}

	s.Normalize()

	assert.NotNil(t, s.ScanResults)
	assert.Equal(t, GantryZone, s.Layout[0].Zone)
	assert.Equal(t, PositionAdditional, s.Layout[1].Type)
	assert.Equal(t, StatusActive, s.Status)
}

func TestRowJSON(t *testing.T) {
	data, err := json.Marshal(Position{ID: "x", Row: RowNone})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"row":null`)

	var p Position
	require.NoError(t, json.Unmarshal([]byte(`{"id":"y","row":"top"}`), &p))
	assert.Equal(t, RowTop, p.Row)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"z","row":null}`), &p))
	assert.Equal(t, RowNone, p.Row)
}

func TestPositionsByZone(t *testing.T) {
	zones, byZone := PositionsByZone([]Position{
		{ID: "a", Zone: GantryZone},
		{ID: "b", Zone: ZoneSportsZone},
		{ID: "c", Zone: GantryZone},
		{ID: "d"},
	})

	assert.Equal(t, []string{GantryZone, ZoneSportsZone, "unknown"}, zones)
	assert.Len(t, byZone[GantryZone], 2)
}
