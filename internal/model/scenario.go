package model

import "fmt"

// DepthDistribution selects the sequencing-depth sampling model.
type DepthDistribution string

const (
	// DepthNegativeBinomial draws overdispersed depths (mean/size parameterization).
	DepthNegativeBinomial DepthDistribution = "negative_binomial"
	// DepthPoisson draws Poisson depths.
	DepthPoisson DepthDistribution = "poisson"
	// DepthUniform assigns round(mean) to every mutation, for test fixtures.
	DepthUniform DepthDistribution = "uniform"
)

// BiologicalNoise configures Beta-distributed spread of true VAFs around the
// clonal target frequency. Higher concentration means tighter clustering.
type BiologicalNoise struct {
	Enabled       bool    `yaml:"enabled"`
	Concentration float64 `yaml:"concentration"`
}

// SequencingNoise configures depth sampling and binomial read sampling.
type SequencingNoise struct {
	Enabled          bool              `yaml:"enabled"`
	Distribution     DepthDistribution `yaml:"distribution"`
	MeanDepth        float64           `yaml:"mean_depth"`
	Dispersion       float64           `yaml:"dispersion"`
	ErrorRate        float64           `yaml:"error_rate"`
	BinomialSampling bool              `yaml:"binomial_sampling"`
}

// GermlineConfig configures the germline variant group. The target VAF is not
// scaled by tumor purity: a heterozygous germline variant sits at ~0.5 in both
// the tumor and normal fractions, so purity cancels out.
type GermlineConfig struct {
	Enabled bool    `yaml:"enabled"`
	Count   int     `yaml:"mutations"`
	VAF     float64 `yaml:"vaf"`
}

// Scenario is the full input surface of one simulation run.
//
// Loaders unmarshal scenario files on top of DefaultScenario so absent keys
// keep their defaults; that is the single defaulting step, nothing downstream
// checks for missing values.
type Scenario struct {
	CloneNames       []string        `yaml:"clone_names,omitempty"`
	CloneFrequencies []float64       `yaml:"clone_frequencies"`
	PrivateMutations []int           `yaml:"private_mutations"`
	FounderMutations int             `yaml:"founder_mutations"`
	SharedGroups     []SharedGroup   `yaml:"shared_groups,omitempty"`
	Biological       BiologicalNoise `yaml:"biological_noise"`
	Sequencing       SequencingNoise `yaml:"sequencing_noise"`
	Germline         GermlineConfig  `yaml:"germline"`
	Seed             *uint64         `yaml:"seed,omitempty"`
}

// Defaults for scenario parameters not supplied by the user.
const (
	DefaultFounderMutations = 10
	DefaultConcentration    = 100.0
	DefaultMeanDepth        = 100.0
	DefaultDispersion       = 3.0
	DefaultErrorRate        = 0.001
	DefaultGermlineCount    = 100
	DefaultGermlineVAF      = 0.5
)

// DefaultScenario returns a scenario with every optional knob at its default.
// Clone frequencies and private mutation counts have no default; they must be
// supplied by the caller.
func DefaultScenario() Scenario {
	return Scenario{
		FounderMutations: DefaultFounderMutations,
		Biological: BiologicalNoise{
			Enabled:       true,
			Concentration: DefaultConcentration,
		},
		Sequencing: SequencingNoise{
			Enabled:          true,
			Distribution:     DepthNegativeBinomial,
			MeanDepth:        DefaultMeanDepth,
			Dispersion:       DefaultDispersion,
			ErrorRate:        DefaultErrorRate,
			BinomialSampling: true,
		},
		Germline: GermlineConfig{
			Enabled: false,
			Count:   DefaultGermlineCount,
			VAF:     DefaultGermlineVAF,
		},
	}
}

// Clones assembles the clone frequency set, naming unnamed clones Clone1..N.
func (sc Scenario) Clones() CloneFrequencySet {
	names := sc.CloneNames
	if len(names) != len(sc.CloneFrequencies) {
		names = make([]string, len(sc.CloneFrequencies))
		for i := range names {
			names[i] = fmt.Sprintf("Clone%d", i+1)
		}
	}

	counts := sc.PrivateMutations
	if len(counts) != len(sc.CloneFrequencies) {
		counts = make([]int, len(sc.CloneFrequencies))
		copy(counts, sc.PrivateMutations)
	}

	return CloneFrequencySet{
		Names:         names,
		Frequencies:   sc.CloneFrequencies,
		PrivateCounts: counts,
	}
}
