package wordvec

import (
	"slices"
)

// Table is an immutable word-embedding table: a fixed vocabulary mapped to
// float32 vectors of one shared dimensionality.
//
// Vectors live in a single row-major backing array indexed by dense row ids,
// with a map resolving words to rows. Nothing mutates the backing store after
// load, so all methods are safe for concurrent use without locking.
type Table struct {
	words  []string          // row -> word, in first-seen stream order
	rows   map[string]uint32 // word -> row
	data   []float32         // row-major vectors, len == len(words)*dim
	dim    int
	logger *Logger
}

// Len returns the number of words in the table. This counts entries actually
// inserted, which can be below the model header's declared count when
// records were dropped or the stream ended early.
func (t *Table) Len() int {
	return len(t.words)
}

// Dimension returns the shared vector dimensionality.
func (t *Table) Dimension() int {
	return t.dim
}

// Has reports whether word is in the table.
func (t *Table) Has(word string) bool {
	_, ok := t.rows[word]
	return ok
}

// Vector returns a copy of the stored vector for word. The boolean is false
// when the word is not in the table; a missing word is not an error.
func (t *Table) Vector(word string) ([]float32, bool) {
	row, ok := t.rows[word]
	if !ok {
		return nil, false
	}
	out := make([]float32, t.dim)
	copy(out, t.row(row))
	return out, true
}

// Words returns the vocabulary in ascending lexicographic order.
func (t *Table) Words() []string {
	out := slices.Clone(t.words)
	slices.Sort(out)
	return out
}

// row returns the backing slice for a row id. Callers must not write to it
// and must not let it escape to API consumers.
func (t *Table) row(id uint32) []float32 {
	off := int(id) * t.dim
	return t.data[off : off+t.dim]
}
