package core

import "math/rand"

// Rand is the random source a simulation core draws from. Production code
// uses a seeded *rand.Rand; tests inject scripted sources.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// FixedRand always returns the same fraction. Intn maps it onto [0, n).
type FixedRand float64

// Float64 returns the fixed fraction.
func (f FixedRand) Float64() float64 {
	return float64(f)
}

// Intn returns floor(f * n), clamped to n-1.
func (f FixedRand) Intn(n int) int {
	v := int(float64(f) * float64(n))
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}

// ScriptedRand replays Values in order and then repeats the last one.
type ScriptedRand struct {
	Values []float64
	pos    int
}

// Float64 returns the next scripted value.
func (s *ScriptedRand) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[min(s.pos, len(s.Values)-1)]
	s.pos++
	return v
}

// Intn maps the next scripted value onto [0, n).
func (s *ScriptedRand) Intn(n int) int {
	return FixedRand(s.Float64()).Intn(n)
}
