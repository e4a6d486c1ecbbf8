package random

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Int(), b.Int())
	}

	first := New(7).Int()
	s := New(7)
	s.Int()
	s.Seed(7)
	assert.Equal(t, first, s.Int())
}

func TestIntRange(t *testing.T) {
	s := New(1)
	for i := 0; i < 1000; i++ {
		n := s.Int()
		assert.GreaterOrEqual(t, n, 0)
		assert.LessOrEqual(t, n, math.MaxInt32)
	}
}

func TestIntInRange(t *testing.T) {
	s := New(2)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		n := s.IntInRange(-2, 2)
		assert.GreaterOrEqual(t, n, -2)
		assert.LessOrEqual(t, n, 2)
		seen[n] = true
	}
	assert.Len(t, seen, 5)
	assert.Equal(t, 3, s.IntInRange(3, 3))
}

func TestFloat32InRange(t *testing.T) {
	s := New(3)
	for i := 0; i < 1000; i++ {
		f := s.Float32InRange(-1.5, 2.5)
		assert.GreaterOrEqual(t, f, float32(-1.5))
		assert.LessOrEqual(t, f, float32(2.5))
	}
}
