package game

import "math/rand/v2"

// Bounds of the secret value, inclusive.
const (
	MinSecret = 1
	MaxSecret = 100
)

// SecretSource provides one uniformly distributed integer in
// [MinSecret, MaxSecret] on demand.
type SecretSource interface {
	Secret() uint32
}

// RandomSource draws secrets from math/rand/v2.
type RandomSource struct{}

// NewRandomSource creates a new RandomSource.
func NewRandomSource() *RandomSource {
	return &RandomSource{}
}

// Secret returns a value in [MinSecret, MaxSecret].
func (s *RandomSource) Secret() uint32 {
	return MinSecret + rand.Uint32N(MaxSecret-MinSecret+1)
}

// FixedSource always returns the same value. Used to make runs deterministic.
type FixedSource uint32

// Secret returns the fixed value.
func (s FixedSource) Secret() uint32 {
	return uint32(s)
}

// Verify implementations at compile time.
var (
	_ SecretSource = (*RandomSource)(nil)
	_ SecretSource = FixedSource(0)
)
