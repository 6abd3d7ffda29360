package core

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Digest accumulates snapshot fields into a 64-bit hash. Two runs with the
// same seed and inputs must produce the same digest.
type Digest struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewDigest creates an empty digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// Int adds an integer field.
func (g *Digest) Int(v int64) *Digest {
	binary.LittleEndian.PutUint64(g.buf[:], uint64(v))
	_, _ = g.d.Write(g.buf[:])
	return g
}

// Float adds a float field by its bit pattern.
func (g *Digest) Float(v float64) *Digest {
	binary.LittleEndian.PutUint64(g.buf[:], math.Float64bits(v))
	_, _ = g.d.Write(g.buf[:])
	return g
}

// Bool adds a boolean field.
func (g *Digest) Bool(v bool) *Digest {
	if v {
		return g.Int(1)
	}
	return g.Int(0)
}

// Sum returns the hash.
func (g *Digest) Sum() uint64 {
	return g.d.Sum64()
}
