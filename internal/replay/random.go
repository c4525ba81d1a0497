// Package replay provides the deterministic record/replay harness of
// spec.md §6: a seeded RandomSource, a queued ChoiceOracle that replays a
// recorded ChoiceResult sequence, and a ReplayEngine that drives a full
// game from a ports.GameConfig plus that sequence.
//
// Grounded on the teacher's app.NewService(rng *rand.Rand) constructor-
// injected RNG pattern (Server/internal/app/service.go), extended from "one
// injected *rand.Rand used for shuffles" to a full seeded source shared by
// both the deck shuffle and every in-game reshuffle.
package replay

import (
	"math/rand"

	"legendcore/internal/model"
)

// RandomSource is the sole source of non-determinism the engine is allowed
// to touch, per spec.md §6: every shuffle in a replayed game must derive
// from the same seed to reproduce identically.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource seeds a RandomSource, grounded on the teacher's
// rand.New(rand.NewSource(seed)) construction in its service wiring.
func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

// NextInt returns a value in [min, max).
func (r *RandomSource) NextInt(minInclusive, maxExclusive int) int {
	if maxExclusive <= minInclusive {
		return minInclusive
	}
	return minInclusive + r.rng.Intn(maxExclusive-minInclusive)
}

// ShuffleCards satisfies the engine's func([]model.Card) shuffle contract
// (initializer.Initializer.Shuffle, turn.Engine.Shuffle) using
// math/rand.Rand.Shuffle's Fisher-Yates implementation.
func (r *RandomSource) ShuffleCards(cards []model.Card) {
	r.rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}
