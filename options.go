package twisty

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
)

// Option configures Cube behavior.
type Option func(*config)

// CollisionPolicy decides what the scrambler does when it samples the same
// face as the previously applied move.
type CollisionPolicy int

const (
	// CollisionResample draws again for the same slot, so a scramble of
	// length L always holds exactly L moves.
	CollisionResample CollisionPolicy = iota

	// CollisionSkip drops the slot. The scramble may hold fewer than L moves.
	CollisionSkip
)

func (p CollisionPolicy) String() string {
	switch p {
	case CollisionResample:
		return "resample"
	case CollisionSkip:
		return "skip"
	default:
		return "unknown"
	}
}

type config struct {
	logger    *log.Logger
	rng       *rand.Rand
	collision CollisionPolicy
}

func defaultConfig() *config {
	return &config{
		logger:    log.New(io.Discard),
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		collision: CollisionResample,
	}
}

// WithLogger sets the logger used for debug output such as skipped
// notation tokens. By default nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRand sets the random source used by the scrambler.
// Pass a seeded source to get reproducible scrambles.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed is shorthand for WithRand with a PCG source seeded from seed.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithCollisionPolicy selects how the scrambler handles a same-face sample.
// The default is CollisionResample.
func WithCollisionPolicy(p CollisionPolicy) Option {
	return func(c *config) {
		c.collision = p
	}
}
