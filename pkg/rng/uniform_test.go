package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformRNGRange(t *testing.T) {
	r := NewUnseededUniformRNG()
	for i := 0; i < 10000; i++ {
		v := r.Rand()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestUniformRNGReproducible(t *testing.T) {
	a := NewUniformRNG(42)
	b := NewUniformRNG(42)
	for i := 0; i < 1000; i++ {
		assert.Equal(t, a.Rand(), b.Rand())
	}
}
