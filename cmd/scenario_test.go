package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	m "clonesim.dev/pkg/clonesim/internal/model"
)

func TestParseSharedGroupFlag(t *testing.T) {
	group, err := parseSharedGroupFlag("2 3=12")
	require.NoError(t, err)
	require.Equal(t, m.SharedGroup{Clones: []int{2, 3}, Count: 12}, group)
}

func TestParseSharedGroupFlag_MissingSeparator(t *testing.T) {
	_, err := parseSharedGroupFlag("2 3")
	require.Error(t, err)
	require.Contains(t, err.Error(), "must look like")
}

func TestParseSharedGroupFlag_BadIndices(t *testing.T) {
	_, err := parseSharedGroupFlag("2 x=12")
	require.Error(t, err)
}

func TestParseSharedGroupFlag_BadCount(t *testing.T) {
	_, err := parseSharedGroupFlag("2 3=many")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not an integer")
}

func useScenarioFile(t *testing.T, content string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	viper.Set(scenarioFlagName, path)
	t.Cleanup(func() { viper.Set(scenarioFlagName, defaultScenarioFile) })
}

func TestBuildScenario_FromFile(t *testing.T) {
	useScenarioFile(t, "clone_frequencies: [0.5, 0.2]\nprivate_mutations: [3, 4]\nfounder_mutations: 7\n")

	sc, err := buildScenario(newSimulateCmd())
	require.NoError(t, err)

	require.Equal(t, []float64{0.5, 0.2}, sc.CloneFrequencies)
	require.Equal(t, 7, sc.FounderMutations)
	// Untouched keys keep their defaults.
	require.True(t, sc.Biological.Enabled)
}

func TestBuildScenario_FileWithFlagOverride(t *testing.T) {
	useScenarioFile(t, "clone_frequencies: [0.5]\nprivate_mutations: [3]\n")

	cmd := newSimulateCmd()
	require.NoError(t, cmd.Flags().Set(seedFlagName, "11"))

	sc, err := buildScenario(cmd)
	require.NoError(t, err)
	require.NotNil(t, sc.Seed)
	require.Equal(t, uint64(11), *sc.Seed)
}

func TestBuildScenario_FlagOnlyRun(t *testing.T) {
	viper.Set(scenarioFlagName, filepath.Join(t.TempDir(), "absent.yaml"))
	t.Cleanup(func() { viper.Set(scenarioFlagName, defaultScenarioFile) })

	cmd := newSimulateCmd()
	require.NoError(t, cmd.Flags().Set(cloneFrequenciesFlagName, "0.3,0.4"))
	require.NoError(t, cmd.Flags().Set(privateMutationsFlagName, "5,5"))
	require.NoError(t, cmd.Flags().Set(sharedGroupFlagName, "1 2=6"))

	sc, err := buildScenario(cmd)
	require.NoError(t, err)
	require.Equal(t, []float64{0.3, 0.4}, sc.CloneFrequencies)
	require.Equal(t, []m.SharedGroup{{Clones: []int{1, 2}, Count: 6}}, sc.SharedGroups)
}

func TestBuildScenario_MissingFileWithoutFlags(t *testing.T) {
	viper.Set(scenarioFlagName, filepath.Join(t.TempDir(), "absent.yaml"))
	t.Cleanup(func() { viper.Set(scenarioFlagName, defaultScenarioFile) })

	_, err := buildScenario(newSimulateCmd())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read scenario")
}

func TestBuildScenario_MalformedYAML(t *testing.T) {
	useScenarioFile(t, "clone_frequencies: [0.5\n")

	_, err := buildScenario(newSimulateCmd())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse scenario")
}
