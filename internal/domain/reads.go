package domain

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// maxSamplingProb caps the error-adjusted alternate-allele probability so a
// base-error shift can never push it to certainty.
const maxSamplingProb = 0.99

// ReadCounts holds the read-level outcome for a group of mutations. The
// invariant AltReads[i]+RefReads[i] == depth[i] holds for every entry, and
// VAF[i] is the realized alt fraction of the draw, not the sampling
// probability.
type ReadCounts struct {
	VAF      []float64
	AltReads []int
	RefReads []int
}

// ReadSampler draws observed alternate-read counts from true VAFs and depths.
type ReadSampler interface {
	Sample(trueVAF []float64, depth []int, errorRate float64) (ReadCounts, error)
}

type binomialReadSampler struct {
	rng *RNG
}

// NewReadSampler creates a binomial read sampler backed by the given generator.
func NewReadSampler(rng *RNG) ReadSampler {
	return &binomialReadSampler{rng: rng}
}

func (s *binomialReadSampler) Sample(trueVAF []float64, depth []int, errorRate float64) (ReadCounts, error) {
	if len(trueVAF) != len(depth) {
		return ReadCounts{}, invalidParamf("true VAF and depth lengths differ: %d vs %d", len(trueVAF), len(depth))
	}

	if errorRate < 0 || errorRate > 1 {
		return ReadCounts{}, invalidParamf("error rate must be in [0,1], got %g", errorRate)
	}

	for i, vaf := range trueVAF {
		if vaf < 0 || vaf > 1 {
			return ReadCounts{}, invalidParamf("true VAF must be in [0,1], got %g at index %d", vaf, i)
		}

		if depth[i] <= 0 {
			return ReadCounts{}, invalidParamf("depth must be > 0, got %d at index %d", depth[i], i)
		}
	}

	counts := ReadCounts{
		VAF:      make([]float64, len(trueVAF)),
		AltReads: make([]int, len(trueVAF)),
		RefReads: make([]int, len(trueVAF)),
	}

	for i, vaf := range trueVAF {
		// The error rate shifts the expected alt fraction upward, modeling
		// miscall contamination.
		p := math.Min(vaf+errorRate, maxSamplingProb)

		bin := distuv.Binomial{
			N:   float64(depth[i]),
			P:   p,
			Src: s.rng.Source(),
		}

		alt := int(bin.Rand())
		counts.AltReads[i] = alt
		counts.RefReads[i] = depth[i] - alt
		counts.VAF[i] = float64(alt) / float64(depth[i])
	}

	return counts, nil
}
