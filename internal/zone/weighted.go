package zone

import "math/rand"

// RandomIndex draws an index with probability weights[i]/sum(weights).
// It returns -1 when the weights sum to zero or less.
func RandomIndex(rng *rand.Rand, weights []int) int {
	sum := 0
	for _, w := range weights {
		sum += w
	}
	if sum <= 0 {
		return -1
	}
	roll := rng.Intn(sum)
	sum = 0
	for i, w := range weights {
		sum += w
		if roll < sum {
			return i
		}
	}
	return -1
}
