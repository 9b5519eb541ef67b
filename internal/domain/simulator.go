package domain

import (
	"log/slog"
	"math/rand/v2"
	"time"

	m "clonesim.dev/pkg/clonesim/internal/model"
)

// Simulator runs one full simulation call: validate, resolve the group plan,
// generate every group, attach cosmetic coordinates, and package the result.
type Simulator interface {
	Run(sc m.Scenario) (m.SimulationResult, []string, error)
}

type simulator struct {
	resolver Resolver
}

// NewSimulator creates the top-level simulation orchestrator.
func NewSimulator() Simulator {
	return &simulator{resolver: NewResolver()}
}

// Run executes one simulation. It either returns a complete result (plus any
// skipped-group warnings) or fails on validation with nothing generated.
// The scenario's seed, or a fresh one when none is given, is recorded in the
// result metadata; re-running with that seed reproduces the run exactly.
func (s *simulator) Run(sc m.Scenario) (m.SimulationResult, []string, error) {
	specs, warnings, err := s.resolver.Resolve(sc)
	if err != nil {
		return m.SimulationResult{}, nil, err
	}

	seed := resolveSeed(sc.Seed)
	rng := NewRNG(seed)
	gen := NewGroupGenerator(
		NewBiologicalNoiseSampler(rng),
		NewDepthSampler(rng),
		NewReadSampler(rng),
	)

	records := make([]m.MutationRecord, 0)

	for _, spec := range specs {
		groupRecords, err := gen.Generate(spec, sc.Biological, sc.Sequencing)
		if err != nil {
			return m.SimulationResult{}, warnings, err
		}

		slog.Debug("generated group",
			"group", spec.Label,
			"type", spec.Type,
			"mutations", len(groupRecords),
			"target_vaf", spec.Frequency,
		)

		records = append(records, groupRecords...)
	}

	attachCoordinates(rng, records)

	result := m.SimulationResult{
		Records:    records,
		Params:     sc,
		CloneTable: cloneTable(sc.Clones()),
		Metadata: m.Metadata{
			CreatedAt: time.Now().UTC(),
			Version:   m.Version,
			Seed:      seed,
		},
	}

	slog.Info("simulation complete",
		"mutations", len(records),
		"groups", len(specs),
		"skipped_groups", len(warnings),
		"seed", seed,
	)

	return result, warnings, nil
}

// resolveSeed returns the configured seed, or draws one so the run stays
// replayable after the fact.
func resolveSeed(seed *uint64) uint64 {
	if seed != nil {
		return *seed
	}

	return rand.Uint64()
}

// attachCoordinates assigns cosmetic genomic coordinates to the concatenated
// table: uniform autosome, uniform position, and independent uniform ref/alt
// bases. Ref and alt may coincide; filtering those rows is exporter policy.
func attachCoordinates(rng *RNG, records []m.MutationRecord) {
	for i := range records {
		records[i].Chrom = m.Autosomes[rng.IntN(len(m.Autosomes))]
		records[i].Pos = 1 + rng.IntN(m.MaxPosition)
		records[i].Ref = m.Nucleotides[rng.IntN(len(m.Nucleotides))]
		records[i].Alt = m.Nucleotides[rng.IntN(len(m.Nucleotides))]
	}
}

func cloneTable(clones m.CloneFrequencySet) []m.CloneTableRow {
	rows := make([]m.CloneTableRow, clones.Len())
	for i := range rows {
		rows[i] = m.CloneTableRow{
			Name:             clones.Names[i],
			Frequency:        clones.Frequencies[i],
			PrivateMutations: clones.PrivateCounts[i],
		}
	}

	return rows
}
