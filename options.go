package lettercube

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/SeamusWaldron/lettercube/internal/facelet"
	"github.com/SeamusWaldron/lettercube/internal/scheme"
)

// Option configures a Session.
type Option func(*config)

type config struct {
	logger      *zap.SugaredLogger
	scheme      scheme.Scheme
	store       LabelStore
	rng         *rand.Rand
	front, top  facelet.Color
	avoidRepeat bool
}

func defaultConfig() *config {
	return &config{
		logger:      zap.NewNop().Sugar(),
		scheme:      scheme.Default,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		front:       facelet.Green,
		top:         facelet.White,
		avoidRepeat: true,
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithScheme selects the buffer preset.
func WithScheme(s scheme.Scheme) Option {
	return func(c *config) {
		c.scheme = s
	}
}

// WithStore persists labels through store. Without a store labels live
// only in memory.
func WithStore(store LabelStore) Option {
	return func(c *config) {
		c.store = store
	}
}

// WithRand sets the random source used by scrambles and drills.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithOrientation sets the initial front and top colors.
func WithOrientation(front, top facelet.Color) Option {
	return func(c *config) {
		c.front, c.top = front, top
	}
}

// WithAvoidRepeat controls whether drills may ask the same thing twice in
// a row. Enabled by default.
func WithAvoidRepeat(enabled bool) Option {
	return func(c *config) {
		c.avoidRepeat = enabled
	}
}
