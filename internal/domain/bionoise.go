package domain

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// minShape floors the Beta shape parameters so a target frequency of
	// exactly 0 or 1 still yields a proper distribution.
	minShape = 0.1

	// trueVAFFloor and trueVAFCeil bound every biological draw. A heterozygous
	// variant never sits at exactly 0 or 1 in a real tumor sample.
	trueVAFFloor = 0.01
	trueVAFCeil  = 0.99
)

// BiologicalNoiseSampler draws per-mutation true VAFs spread around a target
// clone frequency.
type BiologicalNoiseSampler interface {
	Sample(frequency float64, count int, concentration float64) ([]float64, error)
}

type betaNoiseSampler struct {
	rng *RNG
}

// NewBiologicalNoiseSampler creates a Beta-distribution noise sampler backed
// by the given generator.
func NewBiologicalNoiseSampler(rng *RNG) BiologicalNoiseSampler {
	return &betaNoiseSampler{rng: rng}
}

// Sample draws count true VAFs from Beta(f*c, (1-f)*c), clamped into
// [0.01, 0.99]. count=0 returns an empty slice.
func (s *betaNoiseSampler) Sample(frequency float64, count int, concentration float64) ([]float64, error) {
	if frequency < 0 || frequency > 1 {
		return nil, invalidParamf("target frequency must be in [0,1], got %g", frequency)
	}

	if concentration <= 0 {
		return nil, invalidParamf("concentration must be > 0, got %g", concentration)
	}

	if count < 0 {
		return nil, invalidParamf("mutation count must be >= 0, got %d", count)
	}

	dist := distuv.Beta{
		Alpha: math.Max(frequency*concentration, minShape),
		Beta:  math.Max((1-frequency)*concentration, minShape),
		Src:   s.rng.Source(),
	}

	samples := make([]float64, count)
	for i := range samples {
		samples[i] = clamp(dist.Rand(), trueVAFFloor, trueVAFCeil)
	}

	return samples, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
