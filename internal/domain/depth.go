package domain

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	m "clonesim.dev/pkg/clonesim/internal/model"
)

// minDepth is the minimum usable coverage. Every sampled depth is floored
// here, whatever the distribution.
const minDepth = 10

// DepthSampler draws per-mutation sequencing depths.
type DepthSampler interface {
	Sample(count int, meanDepth float64, distribution m.DepthDistribution, dispersion float64) ([]int, error)
}

type depthSampler struct {
	rng *RNG
}

// NewDepthSampler creates a depth sampler backed by the given generator.
func NewDepthSampler(rng *RNG) DepthSampler {
	return &depthSampler{rng: rng}
}

func (s *depthSampler) Sample(count int, meanDepth float64, distribution m.DepthDistribution, dispersion float64) ([]int, error) {
	if count < 0 {
		return nil, invalidParamf("mutation count must be >= 0, got %d", count)
	}

	if meanDepth <= 0 {
		return nil, invalidParamf("mean depth must be > 0, got %g", meanDepth)
	}

	switch distribution {
	case m.DepthNegativeBinomial:
		if dispersion <= 0 {
			return nil, invalidParamf("dispersion must be > 0 for negative_binomial depths, got %g", dispersion)
		}

		return s.negativeBinomial(count, meanDepth, dispersion), nil
	case m.DepthPoisson:
		return s.poisson(count, meanDepth), nil
	case m.DepthUniform:
		return uniformDepths(count, meanDepth), nil
	default:
		return nil, invalidParamf("unknown depth distribution %q", distribution)
	}
}

// negativeBinomial samples the mean/size parameterization (variance =
// mean + mean^2/size) as a Gamma-Poisson mixture with shape=size and
// rate=size/mean.
func (s *depthSampler) negativeBinomial(count int, mean, size float64) []int {
	gamma := distuv.Gamma{
		Alpha: size,
		Beta:  size / mean,
		Src:   s.rng.Source(),
	}

	depths := make([]int, count)
	for i := range depths {
		pois := distuv.Poisson{Lambda: gamma.Rand(), Src: s.rng.Source()}
		depths[i] = flooredDepth(pois.Rand())
	}

	return depths
}

func (s *depthSampler) poisson(count int, mean float64) []int {
	pois := distuv.Poisson{Lambda: mean, Src: s.rng.Source()}

	depths := make([]int, count)
	for i := range depths {
		depths[i] = flooredDepth(pois.Rand())
	}

	return depths
}

func uniformDepths(count int, mean float64) []int {
	depth := flooredDepth(math.Round(mean))

	depths := make([]int, count)
	for i := range depths {
		depths[i] = depth
	}

	return depths
}

func flooredDepth(v float64) int {
	depth := int(v)
	if depth < minDepth {
		return minDepth
	}

	return depth
}
