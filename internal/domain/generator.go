package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	m "clonesim.dev/pkg/clonesim/internal/model"
)

// defaultDepth is the constant coverage assigned when sequencing noise is
// disabled.
const defaultDepth = 100

// GroupSpec describes one mutation group to generate: a set of mutations
// sharing a clonal origin and a target frequency.
type GroupSpec struct {
	Type      m.MutationType
	Label     string
	CloneIDs  []int
	Frequency float64
	Count     int
}

// CloneIDsToken returns the clone-membership encoding stored on records.
func (g GroupSpec) CloneIDsToken() string {
	if g.Type == m.MutationGermline {
		return m.GermlineCloneIDs
	}

	return m.EncodeCloneIDs(g.CloneIDs)
}

// recordID builds the unique per-run identifier for the k-th (1-based)
// mutation of the group.
func (g GroupSpec) recordID(k int) string {
	switch g.Type {
	case m.MutationFounder:
		return fmt.Sprintf("Founder_%d", k)
	case m.MutationShared:
		ids := make([]string, 0, len(g.CloneIDs))
		for _, id := range g.CloneIDs {
			ids = append(ids, strconv.Itoa(id))
		}

		return fmt.Sprintf("Shared_C%s_mut%d", strings.Join(ids, "_"), k)
	case m.MutationPrivate:
		return fmt.Sprintf("Clone%d_mut%d", g.CloneIDs[0], k)
	case m.MutationGermline:
		return fmt.Sprintf("Germline_%d", k)
	default:
		return fmt.Sprintf("Mutation_%d", k)
	}
}

// GroupGenerator produces the mutation records for one group.
type GroupGenerator interface {
	Generate(spec GroupSpec, bio m.BiologicalNoise, seq m.SequencingNoise) ([]m.MutationRecord, error)
}

type groupGenerator struct {
	bio   BiologicalNoiseSampler
	depth DepthSampler
	reads ReadSampler
}

// NewGroupGenerator wires the three samplers into a group generator.
func NewGroupGenerator(bio BiologicalNoiseSampler, depth DepthSampler, reads ReadSampler) GroupGenerator {
	return &groupGenerator{
		bio:   bio,
		depth: depth,
		reads: reads,
	}
}

// Generate runs the per-group pipeline: true VAFs, then depths, then observed
// read counts. Each of the three noise stages degrades to its deterministic
// form when the corresponding config is disabled.
func (g *groupGenerator) Generate(spec GroupSpec, bio m.BiologicalNoise, seq m.SequencingNoise) ([]m.MutationRecord, error) {
	if spec.Count < 0 {
		return nil, invalidParamf("group %q: mutation count must be >= 0, got %d", spec.Label, spec.Count)
	}

	if spec.Count == 0 {
		return []m.MutationRecord{}, nil
	}

	trueVAF, err := g.trueVAFs(spec, bio)
	if err != nil {
		return nil, err
	}

	depths, err := g.depths(spec.Count, seq)
	if err != nil {
		return nil, err
	}

	counts, err := g.readCounts(trueVAF, depths, seq)
	if err != nil {
		return nil, err
	}

	records := make([]m.MutationRecord, spec.Count)
	for i := range records {
		records[i] = m.MutationRecord{
			ID:         spec.recordID(i + 1),
			TrueVAF:    trueVAF[i],
			VAF:        counts.VAF[i],
			Depth:      depths[i],
			AltReads:   counts.AltReads[i],
			RefReads:   counts.RefReads[i],
			CloneLabel: spec.Label,
			Type:       spec.Type,
			CloneIDs:   spec.CloneIDsToken(),
		}
	}

	return records, nil
}

func (g *groupGenerator) trueVAFs(spec GroupSpec, bio m.BiologicalNoise) ([]float64, error) {
	if bio.Enabled {
		return g.bio.Sample(spec.Frequency, spec.Count, bio.Concentration)
	}

	// Noise off: every mutation sits exactly at the target frequency,
	// unclamped.
	vafs := make([]float64, spec.Count)
	for i := range vafs {
		vafs[i] = spec.Frequency
	}

	return vafs, nil
}

func (g *groupGenerator) depths(count int, seq m.SequencingNoise) ([]int, error) {
	if seq.Enabled {
		return g.depth.Sample(count, seq.MeanDepth, seq.Distribution, seq.Dispersion)
	}

	depths := make([]int, count)
	for i := range depths {
		depths[i] = defaultDepth
	}

	return depths, nil
}

func (g *groupGenerator) readCounts(trueVAF []float64, depths []int, seq m.SequencingNoise) (ReadCounts, error) {
	if seq.Enabled && seq.BinomialSampling {
		return g.reads.Sample(trueVAF, depths, seq.ErrorRate)
	}

	// No sampling noise: the observed VAF equals the true VAF and read counts
	// follow by rounding.
	counts := ReadCounts{
		VAF:      make([]float64, len(trueVAF)),
		AltReads: make([]int, len(trueVAF)),
		RefReads: make([]int, len(trueVAF)),
	}

	for i, vaf := range trueVAF {
		alt := int(math.Round(vaf * float64(depths[i])))
		counts.VAF[i] = vaf
		counts.AltReads[i] = alt
		counts.RefReads[i] = depths[i] - alt
	}

	return counts, nil
}
