package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConfiguration_CountsMatchLayout(t *testing.T) {
	tests := []struct {
		name             string
		gantry           int
		additional       int
		estimatedMinutes int
	}{
		{Config4Over4, 8, 15, 60},
		{Config5Over5, 10, 18, 75},
		{Config5Over1, 6, 12, 55},
		{Config5Straight, 5, 20, 65},
		{Config6Over6, 12, 22, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := GenerateConfiguration(tt.name, BrandCoral)
			require.NoError(t, err)

			assert.Equal(t, tt.gantry, cfg.GantryCount)
			assert.Equal(t, tt.additional, cfg.AdditionalCount)
			assert.Equal(t, tt.estimatedMinutes, cfg.EstimatedMinutes)
			assert.Equal(t, cfg.GantryCount+cfg.AdditionalCount, cfg.TotalPositions)

			layout, err := ExpandLayout(cfg)
			require.NoError(t, err)
			assert.Len(t, layout, cfg.TotalPositions)
			assert.NoError(t, cfg.Verify())
		})
	}
}

func TestExpandLayout_IDsUnique(t *testing.T) {
	for _, name := range ConfigurationNames() {
		t.Run(name, func(t *testing.T) {
			cfg, err := GenerateConfiguration(name, BrandLadbrokes)
			require.NoError(t, err)

			layout, err := ExpandLayout(cfg)
			require.NoError(t, err)

			seen := make(map[string]bool)
			for _, p := range layout {
				assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
				seen[p.ID] = true
			}
		})
	}
}

func TestExpandLayout_Order(t *testing.T) {
	cfg, err := GenerateConfiguration(Config5Over1, BrandCoral)
	require.NoError(t, err)

	layout, err := ExpandLayout(cfg)
	require.NoError(t, err)
	require.Len(t, layout, 18)

	assert.Equal(t, "ctv-4", layout[0].ID)
	assert.Equal(t, "sky-a", layout[4].ID)
	assert.Equal(t, "6a-6d", layout[5].ID)
	assert.Equal(t, RowBottom, layout[5].Row)
	require.NotNil(t, layout[5].Column)
	assert.Equal(t, 2, *layout[5].Column)

	for _, p := range layout[:6] {
		assert.Equal(t, GantryZone, p.Zone)
	}

	first := layout[6]
	assert.Equal(t, "offGantry-0", first.ID)
	assert.Equal(t, "Early Price Screen", first.Label)
	assert.Equal(t, PositionAdditional, first.Type)
	assert.Equal(t, RowNone, first.Row)
	assert.Nil(t, first.Column)
}

func TestExpandLayout_DetectsCollision(t *testing.T) {
	cfg := Configuration{
		Name: "custom",
		GantryLayout: &GantryLayout{
			TopRow: []Position{{ID: "fobtZone-0", Label: "Odd", Type: PositionSingle, Row: RowTop}},
		},
		AdditionalScreens: []ZoneScreens{{Zone: ZoneFOBTZone, Screens: []string{"FOBT TV 1"}}},
	}

	_, err := ExpandLayout(cfg)
	assert.ErrorIs(t, err, ErrDuplicatePositionID)
}

func TestGenerateConfiguration_Unknown(t *testing.T) {
	_, err := GenerateConfiguration("7 over 7", BrandCoral)
	assert.ErrorIs(t, err, ErrUnknownConfiguration)
}

func TestConfigurationID(t *testing.T) {
	assert.Equal(t, "5-over-1-coral", ConfigurationID(Config5Over1, BrandCoral))
	assert.Equal(t, "5-straight", ConfigurationID(Config5Straight, ""))
}

func TestVerify_DetectsStaleTotal(t *testing.T) {
	cfg, err := GenerateConfiguration(Config4Over4, BrandCoral)
	require.NoError(t, err)

	cfg.TotalPositions = 40
	assert.Error(t, cfg.Verify())
}

func TestSiteConfigurations_UsesStoredConfigurations(t *testing.T) {
	stored, err := GenerateConfiguration(Config6Over6, BrandBetfred)
	require.NoError(t, err)

	site := Site{Brand: BrandBetfred, Configurations: []Configuration{{Name: "legacy"}, stored}}

	choices, fallback, err := SiteConfigurations(site, FallbackRandom, func(int) int {
		t.Fatal("random fallback must not be used")
		return 0
	})
	require.NoError(t, err)
	assert.False(t, fallback)
	require.Len(t, choices, 1)
	assert.Equal(t, Config6Over6, choices[0].Name)
}

func TestSiteConfigurations_RandomFallback(t *testing.T) {
	site := Site{Brand: BrandCoral}

	choices, fallback, err := SiteConfigurations(site, FallbackRandom, func(n int) int {
		assert.Equal(t, 5, n)
		return 2
	})
	require.NoError(t, err)
	assert.True(t, fallback)
	require.Len(t, choices, 1)
	assert.Equal(t, Config5Over1, choices[0].Name)
	assert.Equal(t, "5-over-1-coral", choices[0].ID)
}

func TestSiteConfigurations_FixedFallback(t *testing.T) {
	choices, fallback, err := SiteConfigurations(Site{Brand: BrandCoral}, Config5Straight, nil)
	require.NoError(t, err)
	assert.True(t, fallback)
	assert.Equal(t, Config5Straight, choices[0].Name)

	_, _, err = SiteConfigurations(Site{Brand: BrandCoral}, "nonsense", nil)
	assert.ErrorIs(t, err, ErrNoConfiguration)
}

func TestSelectConfiguration(t *testing.T) {
	a, _ := GenerateConfiguration(Config4Over4, BrandCoral)
	b, _ := GenerateConfiguration(Config5Over5, BrandCoral)
	choices := []Configuration{a, b}

	got, err := SelectConfiguration(choices, "", BrandCoral)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	got, err = SelectConfiguration(choices, b.ID, BrandCoral)
	require.NoError(t, err)
	assert.Equal(t, Config5Over5, got.Name)

	got, err = SelectConfiguration(choices, Config5Over1, BrandCoral)
	require.NoError(t, err)
	assert.Equal(t, Config5Over1, got.Name)

	_, err = SelectConfiguration(choices, "bogus", BrandCoral)
	assert.ErrorIs(t, err, ErrUnknownConfiguration)
}
