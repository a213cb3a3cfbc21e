package rng

import (
	"math/rand"
	"time"
)

var _ RNG = &UniformRNG{}

// UniformRNG generates uniform random numbers on [0,1) from a seedable source
type UniformRNG struct {
	r *rand.Rand
}

func (u *UniformRNG) Rand() float64 {
	return u.r.Float64()
}

func NewUniformRNG(seed int64) *UniformRNG {
	return &UniformRNG{
		r: rand.New(rand.NewSource(seed)),
	}
}

// NewUnseededUniformRNG seeds the source from the wall clock.  Use NewUniformRNG
// with a fixed seed when results must be reproducible.
func NewUnseededUniformRNG() *UniformRNG {
	return NewUniformRNG(time.Now().UnixNano())
}
