package domain

import (
	"fmt"
	"log/slog"

	m "clonesim.dev/pkg/clonesim/internal/model"
)

// frequencySumTolerance absorbs float accumulation when checking that clone
// frequencies sum to at most 1.
const frequencySumTolerance = 1e-9

// Resolver turns a scenario into the ordered plan of mutation groups:
// founder first, then shared groups in spec order, then private groups in
// clone order, then the germline group if enabled.
type Resolver interface {
	Resolve(sc m.Scenario) ([]GroupSpec, []string, error)
}

type resolver struct{}

// NewResolver creates a stateless clonal structure resolver.
func NewResolver() Resolver {
	return &resolver{}
}

// Resolve validates the scenario and produces the group plan. Validation
// failures are fatal and happen before any group is planned. A shared group
// referencing a clone index outside the configured set is the one recoverable
// condition: it is skipped with a warning naming the group, and the rest of
// the plan proceeds.
func (r *resolver) Resolve(sc m.Scenario) ([]GroupSpec, []string, error) {
	if err := ValidateScenario(sc); err != nil {
		return nil, nil, err
	}

	clones := sc.Clones()
	purity := clones.Purity()

	specs := make([]GroupSpec, 0, 2+len(sc.SharedGroups)+clones.Len())
	warnings := make([]string, 0)

	specs = append(specs, r.founderSpec(clones, sc.FounderMutations, purity))

	for _, group := range sc.SharedGroups {
		spec, ok := r.sharedSpec(clones, group)
		if !ok {
			warning := fmt.Sprintf(
				"shared group %s references a clone index outside the configured %d clone(s); skipping it",
				group.Label(), clones.Len(),
			)
			warnings = append(warnings, warning)
			slog.Warn("skipping shared group", "group", group.Label(), "clones", clones.Len())

			continue
		}

		specs = append(specs, spec)
	}

	for i := 0; i < clones.Len(); i++ {
		specs = append(specs, GroupSpec{
			Type:      m.MutationPrivate,
			Label:     m.CloneLabel([]int{i + 1}),
			CloneIDs:  []int{i + 1},
			Frequency: clones.Frequencies[i],
			Count:     clones.PrivateCounts[i],
		})
	}

	if sc.Germline.Enabled {
		// Tumor purity deliberately does not scale the germline target: a
		// heterozygous germline variant is present at ~0.5 VAF in both the
		// tumor and normal fractions, so purity cancels out of the mixture.
		slog.Debug("planning germline group", "purity", purity, "target_vaf", sc.Germline.VAF)

		specs = append(specs, GroupSpec{
			Type:      m.MutationGermline,
			Label:     "Germline",
			Frequency: sc.Germline.VAF,
			Count:     sc.Germline.Count,
		})
	}

	return specs, warnings, nil
}

func (r *resolver) founderSpec(clones m.CloneFrequencySet, count int, purity float64) GroupSpec {
	ids := make([]int, clones.Len())
	for i := range ids {
		ids[i] = i + 1
	}

	return GroupSpec{
		Type:      m.MutationFounder,
		Label:     "Founder",
		CloneIDs:  ids,
		Frequency: purity,
		Count:     count,
	}
}

func (r *resolver) sharedSpec(clones m.CloneFrequencySet, group m.SharedGroup) (GroupSpec, bool) {
	frequency := 0.0

	for _, id := range group.Clones {
		if id < 1 || id > clones.Len() {
			return GroupSpec{}, false
		}

		frequency += clones.Frequencies[id-1]
	}

	return GroupSpec{
		Type:      m.MutationShared,
		Label:     group.Label(),
		CloneIDs:  group.Clones,
		Frequency: frequency,
		Count:     group.Count,
	}, true
}

// ValidateScenario checks every parameter constraint up front, before any
// stochastic draw. Each failure names the constraint that was violated.
func ValidateScenario(sc m.Scenario) error {
	if len(sc.CloneFrequencies) == 0 {
		return invalidParamf("at least one clone frequency is required")
	}

	sum := 0.0

	for i, f := range sc.CloneFrequencies {
		if f < 0 || f > 1 {
			return invalidParamf("clone frequency %d must be in [0,1], got %g", i+1, f)
		}

		sum += f
	}

	if sum > 1+frequencySumTolerance {
		return invalidParamf("clone frequencies must sum to at most 1, got %g", sum)
	}

	if len(sc.PrivateMutations) != len(sc.CloneFrequencies) {
		return invalidParamf(
			"private mutation counts (%d) must match clone frequencies (%d)",
			len(sc.PrivateMutations), len(sc.CloneFrequencies),
		)
	}

	for i, n := range sc.PrivateMutations {
		if n < 0 {
			return invalidParamf("private mutation count for clone %d must be >= 0, got %d", i+1, n)
		}
	}

	if sc.FounderMutations < 0 {
		return invalidParamf("founder mutation count must be >= 0, got %d", sc.FounderMutations)
	}

	for _, group := range sc.SharedGroups {
		if group.Count < 0 {
			return invalidParamf("shared group %s: mutation count must be >= 0, got %d", group.Label(), group.Count)
		}

		if len(group.Clones) == 0 {
			return invalidParamf("shared groups must reference at least one clone")
		}
	}

	if err := validateNoise(sc); err != nil {
		return err
	}

	return nil
}

func validateNoise(sc m.Scenario) error {
	if sc.Biological.Enabled && sc.Biological.Concentration <= 0 {
		return invalidParamf("concentration must be > 0, got %g", sc.Biological.Concentration)
	}

	if sc.Sequencing.Enabled {
		if sc.Sequencing.MeanDepth <= 0 {
			return invalidParamf("mean depth must be > 0, got %g", sc.Sequencing.MeanDepth)
		}

		switch sc.Sequencing.Distribution {
		case m.DepthNegativeBinomial:
			if sc.Sequencing.Dispersion <= 0 {
				return invalidParamf("dispersion must be > 0 for negative_binomial depths, got %g", sc.Sequencing.Dispersion)
			}
		case m.DepthPoisson, m.DepthUniform:
		default:
			return invalidParamf("unknown depth distribution %q", sc.Sequencing.Distribution)
		}

		if sc.Sequencing.ErrorRate < 0 || sc.Sequencing.ErrorRate > 1 {
			return invalidParamf("error rate must be in [0,1], got %g", sc.Sequencing.ErrorRate)
		}
	}

	if sc.Germline.Enabled {
		if sc.Germline.VAF < 0 || sc.Germline.VAF > 1 {
			return invalidParamf("germline VAF must be in [0,1], got %g", sc.Germline.VAF)
		}

		if sc.Germline.Count < 0 {
			return invalidParamf("germline mutation count must be >= 0, got %d", sc.Germline.Count)
		}
	}

	return nil
}
