package vivaldi

import (
	"math/rand"
	"sync"

	"github.com/sean-/seed"
)

// RandSource supplies uniform samples in [0, 1). *rand.Rand satisfies this
// directly, so tests can inject a deterministically seeded source while
// production code uses the package default.
type RandSource interface {
	Float64() float64
}

// lockedRand wraps a *rand.Rand with a mutex so the package default can be
// shared safely across Coordinates driven from multiple goroutines, without
// requiring every Coordinate to carry its own private generator.
type lockedRand struct {
	mu  sync.Mutex
	src *rand.Rand
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}

var defaultRand RandSource

func init() {
	if seededSecurely, err := seed.Init(); !seededSecurely || err != nil {
		log.Debug("vivaldi: falling back to time-based seed for default RandSource")
	}
	defaultRand = &lockedRand{src: rand.New(rand.NewSource(rand.Int63()))}
}
