package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	m "clonesim.dev/pkg/clonesim/internal/model"
)

const (
	cloneFrequenciesFlagName = "clone-frequencies"
	privateMutationsFlagName = "private-mutations"
	founderMutationsFlagName = "founder-mutations"
	sharedGroupFlagName      = "shared"
	germlineFlagName         = "germline"
	seedFlagName             = "seed"
)

var cloneFrequenciesFlag []float64
var privateMutationsFlag []int
var founderMutationsFlag int
var sharedGroupFlags []string
var germlineFlag bool
var seedFlag uint64

// configureScenarioFlags registers the flags that override (or replace) the
// scenario file, shared by simulate and plan.
func configureScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().Float64SliceVar(&cloneFrequenciesFlag, cloneFrequenciesFlagName, nil, "clone frequencies, e.g. 0.3,0.4,0.3")
	cmd.Flags().IntSliceVar(&privateMutationsFlag, privateMutationsFlagName, nil, "private mutation count per clone, e.g. 20,25,15")
	cmd.Flags().IntVar(&founderMutationsFlag, founderMutationsFlagName, m.DefaultFounderMutations, "number of founder mutations")
	cmd.Flags().StringArrayVar(&sharedGroupFlags, sharedGroupFlagName, nil, `shared group as "CLONES=COUNT", e.g. "2 3=12" (can be repeated)`)
	cmd.Flags().BoolVar(&germlineFlag, germlineFlagName, false, "include germline variants")
	cmd.Flags().Uint64Var(&seedFlag, seedFlagName, 0, "random seed (omit for a fresh seed)")
}

// buildScenario loads the scenario file (when present) on top of the defaults
// and then applies any flag overrides. A missing scenario file is only an
// error when no clone frequencies were given on the command line.
func buildScenario(cmd *cobra.Command) (m.Scenario, error) {
	sc := m.DefaultScenario()
	path := viper.GetString(scenarioFlagName)

	data, err := os.ReadFile(path)

	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &sc); err != nil {
			return m.Scenario{}, fmt.Errorf("failed to parse scenario %s: %w", path, err)
		}
	case os.IsNotExist(err) && cmd.Flags().Changed(cloneFrequenciesFlagName):
		// Flag-only run.
	default:
		return m.Scenario{}, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}

	if cmd.Flags().Changed(cloneFrequenciesFlagName) {
		sc.CloneFrequencies = cloneFrequenciesFlag
	}

	if cmd.Flags().Changed(privateMutationsFlagName) {
		sc.PrivateMutations = privateMutationsFlag
	}

	if cmd.Flags().Changed(founderMutationsFlagName) {
		sc.FounderMutations = founderMutationsFlag
	}

	if cmd.Flags().Changed(sharedGroupFlagName) {
		groups, err := parseSharedGroupFlags(sharedGroupFlags)
		if err != nil {
			return m.Scenario{}, err
		}

		sc.SharedGroups = groups
	}

	if cmd.Flags().Changed(germlineFlagName) {
		sc.Germline.Enabled = germlineFlag
	}

	if cmd.Flags().Changed(seedFlagName) {
		seed := seedFlag
		sc.Seed = &seed
	}

	return sc, nil
}

func parseSharedGroupFlags(values []string) ([]m.SharedGroup, error) {
	groups := make([]m.SharedGroup, 0, len(values))

	for _, value := range values {
		group, err := parseSharedGroupFlag(value)
		if err != nil {
			return nil, err
		}

		groups = append(groups, group)
	}

	return groups, nil
}

func parseSharedGroupFlag(value string) (m.SharedGroup, error) {
	sep := strings.LastIndex(value, "=")
	if sep < 0 {
		return m.SharedGroup{}, fmt.Errorf(`shared group %q must look like "2 3=12"`, value)
	}

	ids, err := m.ParseCloneIDs(value[:sep])
	if err != nil {
		return m.SharedGroup{}, fmt.Errorf("shared group %q: %w", value, err)
	}

	count, err := strconv.Atoi(strings.TrimSpace(value[sep+1:]))
	if err != nil {
		return m.SharedGroup{}, fmt.Errorf("shared group %q: mutation count is not an integer", value)
	}

	return m.SharedGroup{Clones: ids, Count: count}, nil
}
