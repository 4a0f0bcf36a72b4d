// Package seed turns the player-facing string seed into deterministic
// pseudo-random streams. Map generation and every gameplay-time random choice
// draw from streams built here, so a seed fully reproduces a play-through.
package seed

import (
	"hash/fnv"
	"math/rand"
)

// alphabet is the base-36 digit set used for generated seeds.
const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Length is the number of characters in a generated seed.
const Length = 6

// New returns a stream seeded from s. Equal strings always yield equal streams.
func New(s string) *rand.Rand {
	return rand.New(rand.NewSource(hash(s)))
}

// Derive returns a stream keyed by s plus any number of extra parts.
// The engine uses it to give each kill its own reproducible shuffle.
func Derive(s string, parts ...string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(s)) //nolint:errcheck
	for _, p := range parts {
		h.Write([]byte{0}) //nolint:errcheck
		h.Write([]byte(p)) //nolint:errcheck
	}
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

// Random draws a fresh base-36 seed of Length characters from r.
func Random(r *rand.Rand) string {
	b := make([]byte, Length)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(b)
}

func hash(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s)) //nolint:errcheck
	return int64(h.Sum64())
}
