// Package vecmath provides checked float32 vector primitives for embedding math.
//
// Unlike raw kernels that leave length validation to the caller, the exported
// operations here verify operand dimensionality up front and return
// *ErrDimensionMismatch on unequal lengths. They never read out of bounds and
// never silently truncate to the shorter operand.
package vecmath

import (
	"fmt"
	"math"
	"slices"
)

// ErrDimensionMismatch is a named error type for dimension mismatch.
type ErrDimensionMismatch struct {
	Expected int // Expected dimensions
	Actual   int // Actual dimensions
}

// Error returns the error message for dimension mismatch.
func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Dot calculates the dot product of two vectors.
func Dot(v1, v2 []float32) (float32, error) {
	if len(v1) != len(v2) {
		return 0, &ErrDimensionMismatch{Expected: len(v1), Actual: len(v2)}
	}
	return dot(v1, v2), nil
}

// Add returns the elementwise sum of v1 and v2 as a new vector.
func Add(v1, v2 []float32) ([]float32, error) {
	if len(v1) != len(v2) {
		return nil, &ErrDimensionMismatch{Expected: len(v1), Actual: len(v2)}
	}
	out := make([]float32, len(v1))
	for i := range v1 {
		out[i] = v1[i] + v2[i]
	}
	return out, nil
}

// Subtract returns the elementwise difference v1 - v2 as a new vector.
func Subtract(v1, v2 []float32) ([]float32, error) {
	if len(v1) != len(v2) {
		return nil, &ErrDimensionMismatch{Expected: len(v1), Actual: len(v2)}
	}
	out := make([]float32, len(v1))
	for i := range v1 {
		out[i] = v1[i] - v2[i]
	}
	return out, nil
}

// NormalizeL2InPlace L2-normalizes v in place.
// A zero-norm vector is left unchanged; the return value reports whether v
// was scaled.
func NormalizeL2InPlace(v []float32) bool {
	if len(v) == 0 {
		return false
	}
	norm2 := dot(v, v)
	if norm2 == 0 {
		return false
	}
	inv := 1 / float32(math.Sqrt(float64(norm2)))
	for i := range v {
		v[i] *= inv
	}
	return true
}

// NormalizeL2Copy returns a normalized copy of src.
// Returns false if src has zero L2 norm.
func NormalizeL2Copy(src []float32) ([]float32, bool) {
	dst := slices.Clone(src)
	if !NormalizeL2InPlace(dst) {
		return nil, false
	}
	return dst, true
}

// DotBatch calculates dot products for a batch of vectors.
// targets is a flattened array of N vectors, each of dimension dim.
// out must have length N (len(targets) / dim); extra entries are ignored.
func DotBatch(query []float32, targets []float32, dim int, out []float32) {
	if dim <= 0 || len(out) == 0 {
		return
	}
	if len(query) < dim {
		return
	}

	q := query[:dim]
	n := len(targets) / dim
	if len(out) < n {
		n = len(out)
	}

	for i := 0; i < n; i++ {
		offset := i * dim
		out[i] = dot(q, targets[offset:offset+dim])
	}
}

// dot assumes len(a) == len(b); exported callers validate first.
func dot(a, b []float32) float32 {
	var ret float32
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}
