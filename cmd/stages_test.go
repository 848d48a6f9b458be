package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/cruise-sim/sim"
)

// changedSet simulates cmd.Flags().Changed for the named flags.
func changedSet(names ...string) func(string) bool {
	set := map[string]bool{}
	for _, n := range names {
		set[n] = true
	}
	return func(name string) bool { return set[name] }
}

func TestResolveConfig_PresetOnly(t *testing.T) {
	cfg, err := resolveConfig(stagesOptions{preset: "optimistic", numCruises: 1}, changedSet())
	require.NoError(t, err)

	// Unchanged flags must not overwrite preset values
	assert.Equal(t, sim.OptimisticConfig(), cfg)
}

func TestResolveConfig_ChangedFlagsOverride(t *testing.T) {
	opts := stagesOptions{
		preset:                  "default",
		numCruises:              5,
		includeBreaks:           false,
		includeAdvancedTraining: true,
	}
	cfg, err := resolveConfig(opts, changedSet("num-cruises", "include-breaks", "include-advanced-training"))
	require.NoError(t, err)

	want := sim.DefaultConfig()
	want.NumCruises = 5
	want.IncludeBreaks = false
	want.IncludeAdvancedTraining = true
	assert.Equal(t, want, cfg)
}

func TestResolveConfig_FlagsWinOverFile(t *testing.T) {
	// GIVEN a config file setting num_cruises and disabling the offer stage
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte("num_cruises: 6\ninclude_offer_stage: false\n"), 0o644))

	// WHEN --num-cruises is also given
	opts := stagesOptions{preset: "baseline", configPath: path, numCruises: 2}
	cfg, err := resolveConfig(opts, changedSet("num-cruises"))
	require.NoError(t, err)

	// THEN the flag wins and the file still applies elsewhere
	assert.Equal(t, 2, cfg.NumCruises)
	assert.False(t, cfg.IncludeOfferStage)
	assert.Equal(t, sim.BaselineConfig().DisneyFirstCruiseSalary, cfg.DisneyFirstCruiseSalary)
}

func TestResolveConfig_UnknownPreset(t *testing.T) {
	_, err := resolveConfig(stagesOptions{preset: "nope"}, changedSet())
	assert.Error(t, err)
}

func TestResolveConfig_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not_a_field: 1\n"), 0o644))

	_, err := resolveConfig(stagesOptions{preset: "default", configPath: path}, changedSet())
	assert.Error(t, err)
}
