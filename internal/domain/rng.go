package domain

import "math/rand/v2"

// RNG is the pseudorandom generator owned by one simulation call. Every draw
// in the call goes through it, so one seed reproduces one full output
// sequence. Nothing re-seeds mid-call; separate calls need separate RNGs.
type RNG struct {
	src *rand.PCG
	*rand.Rand
}

// NewRNG returns a generator seeded with the given value.
func NewRNG(seed uint64) *RNG {
	src := rand.NewPCG(seed, seed)

	return &RNG{
		src:  src,
		Rand: rand.New(src),
	}
}

// Source exposes the underlying source for distribution samplers. It shares
// state with the uniform helpers, keeping the draw sequence deterministic.
func (r *RNG) Source() rand.Source {
	return r.src
}
