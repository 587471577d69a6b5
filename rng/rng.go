// Package rng implements a small seeded xorshift128+ generator whose output is
// identical on every platform for a given seed.
package rng

import (
	log "github.com/sirupsen/logrus"
)

type Rand struct {
	s0, s1 uint64
}

// New seeds the generator by running splitmix64 over seed. A zero seed is a
// programming error.
func New(seed uint64) *Rand {
	if seed == 0 {
		log.Panic("rng: seed must be non-zero")
	}
	sm := seed
	r := &Rand{
		s0: splitmix64(&sm),
		s1: splitmix64(&sm),
	}
	return r
}

func splitmix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Uint64 advances the state and returns the next value.
func (r *Rand) Uint64() uint64 {
	s1 := r.s0
	s0 := r.s1
	result := s0 + s1
	r.s0 = s0
	s1 ^= s1 << 23
	r.s1 = s1 ^ s0 ^ (s1 >> 18) ^ (s0 >> 5)
	return result
}

// Intn returns a value in [0, n). It panics if n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		log.Panicf("rng: invalid argument to Intn: %d", n)
	}
	return int(r.Uint64() % uint64(n))
}

// Shuffle is a Fisher-Yates shuffle over n elements, walking from the end.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}

func ShuffleSlice[T any](r *Rand, s []T) {
	r.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}
