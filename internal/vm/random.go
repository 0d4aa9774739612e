package vm

import "math/rand/v2"

// RandomSource produces uniformly distributed random bytes.
type RandomSource interface {
	Byte() byte
}

type randomBytes struct {
	rng *rand.Rand
}

// newRandomSource returns a source that is seeded from the runtime's
// non-deterministic entropy.
func newRandomSource() *randomBytes {
	return &randomBytes{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

func (r *randomBytes) Byte() byte {
	return byte(r.rng.UintN(256))
}
