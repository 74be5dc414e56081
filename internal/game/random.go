package game

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Rand is the only source of randomness the simulation reads.
// Float64 returns a uniform value in [0,1).
type Rand interface {
	Float64() float64
}

// NewRand returns a PCG-backed source. A zero seed derives one from the wall clock.
func NewRand(seed uint64) Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// ScriptedRand replays a fixed sequence of values, wrapping around at the end.
// It is deterministic and test-friendly.
type ScriptedRand struct {
	mu     sync.Mutex
	values []float64
	next   int
}

func NewScriptedRand(values ...float64) *ScriptedRand {
	if len(values) == 0 {
		values = []float64{0}
	}
	return &ScriptedRand{values: values}
}

func (r *ScriptedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

// uniformInt draws an integer in [lo,hi].
func uniformInt(rng Rand, lo, hi int) int {
	return lo + int(rng.Float64()*float64(hi-lo+1))
}
