package modelfile

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/hupe1980/wordvec/vecmath"
)

// Encoder writes a model file in the byte format the Decoder reads. It exists
// for fixture generation and round-trip tests; this module never trains or
// exports embeddings of its own.
type Encoder struct {
	w   *bufio.Writer
	dim int
	buf []byte
}

// NewEncoder writes the header line for a table of vocab records with dim
// components each and returns the record writer.
func NewEncoder(w io.Writer, vocab, dim int) (*Encoder, error) {
	if vocab < 0 || dim < 0 {
		return nil, fmt.Errorf("%w: negative vocab or dim", ErrMalformedHeader)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", vocab, dim); err != nil {
		return nil, err
	}

	return &Encoder{
		w:   bw,
		dim: dim,
		buf: make([]byte, dim*4),
	}, nil
}

// Write appends one record. The word must be non-empty and free of the space
// and newline delimiter bytes; the vector must match the header dimension.
func (e *Encoder) Write(word string, vec []float32) error {
	if word == "" || strings.ContainsAny(word, " \n") {
		return fmt.Errorf("%w: unencodable word %q", ErrMalformedRecord, word)
	}
	if len(vec) != e.dim {
		return &vecmath.ErrDimensionMismatch{Expected: e.dim, Actual: len(vec)}
	}

	if _, err := e.w.WriteString(word); err != nil {
		return err
	}
	if err := e.w.WriteByte(' '); err != nil {
		return err
	}
	for i, x := range vec {
		binary.LittleEndian.PutUint32(e.buf[i*4:], math.Float32bits(x))
	}
	if _, err := e.w.Write(e.buf); err != nil {
		return err
	}
	return e.w.WriteByte('\n')
}

// Flush writes any buffered records to the underlying writer.
func (e *Encoder) Flush() error {
	return e.w.Flush()
}
