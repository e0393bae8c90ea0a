package words

import "math/rand"

// Option applies a configuration option to a FileSource.
type Option func(*FileSource)

// WithRand replaces the random generator, e.g. with a seeded one in tests.
func WithRand(rng *rand.Rand) Option {
	return func(s *FileSource) {
		if rng != nil {
			s.rng = rng
		}
	}
}
