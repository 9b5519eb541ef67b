package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	m "clonesim.dev/pkg/clonesim/internal/model"
)

func TestDepthSampler_UniformIsDeterministic(t *testing.T) {
	sampler := NewDepthSampler(NewRNG(1))

	depths, err := sampler.Sample(20, 99.6, m.DepthUniform, 0)
	require.NoError(t, err)
	require.Len(t, depths, 20)

	for _, d := range depths {
		require.Equal(t, 100, d)
	}
}

func TestDepthSampler_UniformAppliesFloor(t *testing.T) {
	sampler := NewDepthSampler(NewRNG(1))

	depths, err := sampler.Sample(5, 4, m.DepthUniform, 0)
	require.NoError(t, err)

	for _, d := range depths {
		require.Equal(t, 10, d)
	}
}

func TestDepthSampler_PoissonCentersOnMean(t *testing.T) {
	sampler := NewDepthSampler(NewRNG(11))

	depths, err := sampler.Sample(5000, 100, m.DepthPoisson, 0)
	require.NoError(t, err)

	require.InDelta(t, 100, meanOfInts(depths), 1)
}

func TestDepthSampler_NegativeBinomialFloorsAtMinDepth(t *testing.T) {
	sampler := NewDepthSampler(NewRNG(5))

	// Low mean and strong overdispersion push many raw draws below 10.
	depths, err := sampler.Sample(2000, 12, m.DepthNegativeBinomial, 0.5)
	require.NoError(t, err)

	for _, d := range depths {
		require.GreaterOrEqual(t, d, 10)
	}
}

func TestDepthSampler_NegativeBinomialIsOverdispersed(t *testing.T) {
	nb, err := NewDepthSampler(NewRNG(9)).Sample(3000, 100, m.DepthNegativeBinomial, 2)
	require.NoError(t, err)

	pois, err := NewDepthSampler(NewRNG(9)).Sample(3000, 100, m.DepthPoisson, 0)
	require.NoError(t, err)

	// Variance 100 + 100^2/2 = 5100 against 100 for Poisson.
	require.Greater(t, varianceOfInts(nb), 5*varianceOfInts(pois))
}

func TestDepthSampler_MeanDepthMustBePositive(t *testing.T) {
	sampler := NewDepthSampler(NewRNG(1))

	_, err := sampler.Sample(10, 0, m.DepthPoisson, 0)
	require.ErrorIs(t, err, ErrInvalidParameter)
	require.Contains(t, err.Error(), "mean depth")
}

func TestDepthSampler_DispersionRequiredForNegativeBinomial(t *testing.T) {
	sampler := NewDepthSampler(NewRNG(1))

	_, err := sampler.Sample(10, 100, m.DepthNegativeBinomial, 0)
	require.ErrorIs(t, err, ErrInvalidParameter)
	require.Contains(t, err.Error(), "dispersion")

	// Poisson does not consult dispersion at all.
	_, err = sampler.Sample(10, 100, m.DepthPoisson, 0)
	require.NoError(t, err)
}

func TestDepthSampler_UnknownDistribution(t *testing.T) {
	sampler := NewDepthSampler(NewRNG(1))

	_, err := sampler.Sample(10, 100, "lognormal", 1)
	require.ErrorIs(t, err, ErrInvalidParameter)
	require.Contains(t, err.Error(), "lognormal")
}

func TestDepthSampler_NegativeCount(t *testing.T) {
	sampler := NewDepthSampler(NewRNG(1))

	_, err := sampler.Sample(-1, 100, m.DepthPoisson, 0)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func meanOfInts(values []int) float64 {
	xs := make([]float64, len(values))
	for i, v := range values {
		xs[i] = float64(v)
	}

	return stat.Mean(xs, nil)
}

func varianceOfInts(values []int) float64 {
	xs := make([]float64, len(values))
	for i, v := range values {
		xs[i] = float64(v)
	}

	return stat.Variance(xs, nil)
}
