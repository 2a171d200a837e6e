package utils

import (
	"sync"
	"time"
)

// Jitter is a seeded xorshift64* generator used to perturb synthetic figures.
// The same seed always yields the same sequence.
type Jitter struct {
	lock  sync.Mutex
	state uint64
}

func NewJitter(seed uint64) *Jitter {
	if seed == 0 {
		// xorshift never leaves the zero state
		seed = xorShift64StarMultiplier
	}
	return &Jitter{state: seed}
}

func NewTimeJitter() *Jitter {
	return NewJitter(uint64(time.Now().UnixNano()))
}

func (j *Jitter) Uint64() uint64 {
	j.lock.Lock()
	defer j.lock.Unlock()
	j.state = xorShift64(j.state)
	return j.state * xorShift64StarMultiplier
}

// Float64 returns a value in [0, 1)
func (j *Jitter) Float64() float64 {
	return float64(j.Uint64()>>11) / (1 << 53)
}

// Spread returns base scaled by a uniform factor in [1-ratio, 1+ratio).
func (j *Jitter) Spread(base, ratio float64) float64 {
	return base * (1 + (2*j.Float64()-1)*ratio)
}
