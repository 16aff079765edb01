package sampler

import (
	crand "crypto/rand"
	"fmt"
	"math/rand/v2"
)

type shuffleSampler struct {
	rng *rand.Rand
}

// New creates a Sampler that draws without replacement using a partial
// Fisher-Yates shuffle. A nil rng is replaced by NewSource().
func New(rng *rand.Rand) Sampler {
	if rng == nil {
		rng = NewSource()
	}
	return &shuffleSampler{rng: rng}
}

// NewSource returns a ChaCha8 generator seeded from crypto/rand.
func NewSource() *rand.Rand {
	var seed [32]byte
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = crand.Read(seed[:])
	return rand.New(rand.NewChaCha8(seed))
}

func (s *shuffleSampler) Sample(candidates []string, n int) ([]string, error) {
	if n < 0 {
		return nil, ErrInvalidSize
	}
	if n > len(candidates) {
		return nil, fmt.Errorf("%w: requested %d, have %d", ErrInsufficientCandidates, n, len(candidates))
	}
	if n == 0 {
		return []string{}, nil
	}

	pool := make([]string, len(candidates))
	copy(pool, candidates)

	for i := 0; i < n; i++ {
		j := i + s.rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:n:n], nil
}
