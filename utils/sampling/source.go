// Package sampling implements a deterministic random source for the samplers.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
)

// Source is a deterministic stream of random bytes expanded
// from a 32-byte seed with the BLAKE2b XOF.
// Two sources instantiated with the same seed produce the same
// stream, which makes every sampler built on top of a [Source]
// reproducible.
//
// Source implements [math/rand.Source64] and [io.Reader].
// A Source is not safe for concurrent use; use [Source.Clone]
// to derive an independent source per goroutine.
type Source struct {
	seed [32]byte
	xof  blake2b.XOF
}

// NewSeed returns a fresh seed sampled from [crypto/rand].
func NewSeed() (seed [32]byte) {
	if _, err := rand.Read(seed[:]); err != nil {
		panic(fmt.Errorf("crypto/rand.Read: %w", err))
	}
	return
}

// NewSource instantiates a new [Source] from the provided seed.
func NewSource(seed [32]byte) (s *Source) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, seed[:])
	if err != nil {
		// Only reachable with a key larger than 64 bytes.
		panic(fmt.Errorf("blake2b.NewXOF: %w", err))
	}
	return &Source{seed: seed, xof: xof}
}

// GetSeed returns the seed the receiver was instantiated with.
func (s *Source) GetSeed() [32]byte {
	return s.seed
}

// Clone returns an independent copy of the receiver with
// an identical state, which can be used concurrently with
// the receiver.
func (s *Source) Clone() *Source {
	return &Source{seed: s.seed, xof: s.xof.Clone()}
}

// Reset restores the receiver to its initial state.
func (s *Source) Reset() {
	*s = *NewSource(s.seed)
}

// Read fills p with random bytes, implementing [io.Reader].
func (s *Source) Read(p []byte) (n int, err error) {
	return s.xof.Read(p)
}

// Uint64 returns a uniform uint64.
func (s *Source) Uint64() uint64 {
	var b [8]byte
	if _, err := io.ReadFull(s.xof, b[:]); err != nil {
		panic(fmt.Errorf("blake2b XOF read: %w", err))
	}
	return binary.LittleEndian.Uint64(b[:])
}

// Int63 implements [math/rand.Source].
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Seed implements [math/rand.Source] by expanding the int64
// seed into a 32-byte seed.
func (s *Source) Seed(seed int64) {
	var b [32]byte
	binary.LittleEndian.PutUint64(b[:8], uint64(seed))
	*s = *NewSource(b)
}

// Float64 returns a uniform float64 in [min, max).
func (s *Source) Float64(min, max float64) float64 {
	f := float64(s.Uint64()>>11) / (1 << 53)
	return min + f*(max-min)
}
