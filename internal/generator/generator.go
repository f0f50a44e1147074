// Package generator produces random process descriptors for test inputs.
package generator

import (
	"fmt"
	"math/rand/v2"

	"github.com/me/cpusched/pkg/model"
)

// Params bounds the generated values. Creation times fall in
// [0, MaxCreation), durations in [1, MaxDuration] and priorities in
// [0, MaxPriority).
type Params struct {
	Count       int
	MaxCreation int
	MaxDuration int
	MaxPriority int
}

// Validate checks that every bound is usable.
func (p Params) Validate() error {
	switch {
	case p.Count < 1:
		return fmt.Errorf("count must be >= 1, got %d", p.Count)
	case p.MaxCreation < 1:
		return fmt.Errorf("max creation time must be >= 1, got %d", p.MaxCreation)
	case p.MaxDuration < 1:
		return fmt.Errorf("max duration must be >= 1, got %d", p.MaxDuration)
	case p.MaxPriority < 1:
		return fmt.Errorf("max priority must be >= 1, got %d", p.MaxPriority)
	}
	return nil
}

// Generate returns p.Count random descriptors drawn from rng.
func Generate(rng *rand.Rand, p Params) ([]model.Descriptor, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	descs := make([]model.Descriptor, p.Count)
	for i := range descs {
		descs[i] = model.Descriptor{
			CreationTime: rng.IntN(p.MaxCreation),
			Duration:     rng.IntN(p.MaxDuration) + 1,
			Priority:     rng.IntN(p.MaxPriority),
		}
	}
	return descs, nil
}

// Seeded returns a deterministic random source for seed.
func Seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}
