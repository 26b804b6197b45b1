// Package sampling implements deterministic sampling of bytes, integers and floats
// from an explicit, caller-supplied source of randomness.
package sampling

import (
	"encoding/binary"
	"fmt"

	"github.com/zeebo/blake3"
	"golang.org/x/exp/constraints"
)

// KeySize is the size in bytes of the keys returned by DeriveKey.
const KeySize = 32

// DeriveKey hashes a seed and a list of labels into a PRNG key.
// Distinct label lists yield independent streams from the same seed.
func DeriveKey(seed []byte, labels ...string) []byte {
	hasher := blake3.New()

	var size [8]byte
	binary.LittleEndian.PutUint64(size[:], uint64(len(seed)))
	hasher.Write(size[:])
	hasher.Write(seed)

	for _, label := range labels {
		binary.LittleEndian.PutUint64(size[:], uint64(len(label)))
		hasher.Write(size[:])
		hasher.Write([]byte(label))
	}

	return hasher.Sum(nil)[:KeySize]
}

// Source draws uniform integers and floats from a PRNG.
// A Source is not safe for concurrent use.
type Source struct {
	prng PRNG
	buf  [8]byte
}

// NewSource creates a new Source reading from prng.
func NewSource(prng PRNG) *Source {
	return &Source{prng: prng}
}

// NewKeyedSource creates a new Source over a KeyedPRNG keyed by DeriveKey(seed, labels...).
func NewKeyedSource(seed []byte, labels ...string) (*Source, error) {
	prng, err := NewKeyedPRNG(DeriveKey(seed, labels...))
	if err != nil {
		return nil, fmt.Errorf("cannot NewKeyedSource: %w", err)
	}
	return NewSource(prng), nil
}

func (s *Source) fill(n int) []byte {
	if _, err := s.prng.Read(s.buf[:n]); err != nil {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("cannot read from PRNG: %w", err))
	}
	return s.buf[:n]
}

// Uint32 returns a uniform value in [0, 2^32).
func (s *Source) Uint32() uint32 {
	return binary.LittleEndian.Uint32(s.fill(4))
}

// Uint64 returns a uniform value in [0, 2^64).
func (s *Source) Uint64() uint64 {
	return binary.LittleEndian.Uint64(s.fill(8))
}

// Float64 returns a uniform value in [0, 1) with 53 bits of randomness.
func (s *Source) Float64() float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}

// Float32 returns a uniform value in [0, 1) with 24 bits of randomness.
func (s *Source) Float32() float32 {
	return float32(s.Uint32()>>8) / (1 << 24)
}

// UniformFloat returns a uniform value of type F in [min, max).
func UniformFloat[F constraints.Float](s *Source, min, max F) F {
	var f F
	switch any(f).(type) {
	case float32:
		f = F(s.Float32())
	default:
		f = F(s.Float64())
	}
	return min + f*(max-min)
}
