// Package testutil provides shared helpers for wordvec tests: a seeded RNG
// for vector data and a model-file fixture builder.
package testutil

import (
	"bytes"
	"math/rand"
	"sync"
	"testing"

	"github.com/hupe1980/wordvec/modelfile"
	"github.com/stretchr/testify/require"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// FillUniform fills dst with random values in range [-1, 1).
// Locks only once per call (preferred over calling Float32 in a loop).
func (r *RNG) FillUniform(dst []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float32()*2 - 1
	}
}

// UniformVectors generates random vectors with values in range [-1, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformVectors(num int, dimensions int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dimensions)
	vectors := make([][]float32, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float32()*2 - 1
		}
		vectors[i] = vec
	}

	return vectors
}

// ModelFile builds in-memory model file bytes for the given words and
// vectors. Words and vectors must have equal length; every vector must have
// dim components.
func ModelFile(tb testing.TB, dim int, words []string, vectors [][]float32) []byte {
	tb.Helper()

	require.Len(tb, vectors, len(words))

	var buf bytes.Buffer
	enc, err := modelfile.NewEncoder(&buf, len(words), dim)
	require.NoError(tb, err)
	for i := range words {
		require.NoError(tb, enc.Write(words[i], vectors[i]))
	}
	require.NoError(tb, enc.Flush())

	return buf.Bytes()
}
