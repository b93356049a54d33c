package utils

import (
	"math/rand"
	"time"
)

// NewSeededRand returns a generator seeded for this call only. Presentation
// shuffles must not share generator state across requests, so each caller
// gets its own.
func NewSeededRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Shuffle permutes s in place using rng.
func Shuffle[T any](rng *rand.Rand, s []T) {
	rng.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}
