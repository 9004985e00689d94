package drawservice

import (
	"math/rand"
	"time"
)

// drawSeed mixes the clock with the draw id so draws executed in the same
// instant still get distinct permutations, while a draw's outcome cannot be
// predicted from its id alone.
func drawSeed(drawID int64) int64 {
	return time.Now().UnixNano() ^ drawID
}

// selectWinners picks up to count distinct identities from the population by
// uniformly shuffling a copy and taking its head. Every permutation is equally
// likely, so no position in the input is favoured.
func selectWinners(population []string, count int, seed int64) []string {
	rng := rand.New(rand.NewSource(seed))

	shuffled := make([]string, len(population))
	copy(shuffled, population)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}
