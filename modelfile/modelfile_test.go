package modelfile

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// record builds raw record bytes by hand so that tests control every byte.
func record(word string, vec []float32, newline bool) []byte {
	var buf bytes.Buffer
	buf.WriteString(word)
	buf.WriteByte(' ')
	for _, x := range vec {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(x))
		buf.Write(b[:])
	}
	if newline {
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func TestDecoder(t *testing.T) {
	t.Run("ThreeRecords", func(t *testing.T) {
		var buf bytes.Buffer
		buf.WriteString("3 3\n")
		buf.Write(record("cat", []float32{1, 0, 0}, true))
		buf.Write(record("dog", []float32{0.9, 0.1, 0}, true))
		buf.Write(record("fish", []float32{0, 1, 0}, true))

		d, err := NewDecoder(&buf)
		require.NoError(t, err)
		assert.Equal(t, Header{Vocab: 3, Dim: 3}, d.Header())

		word, vec, err := d.Next()
		require.NoError(t, err)
		assert.Equal(t, "cat", word)
		assert.Equal(t, []float32{1, 0, 0}, vec)

		word, _, err = d.Next()
		require.NoError(t, err)
		assert.Equal(t, "dog", word)

		word, vec, err = d.Next()
		require.NoError(t, err)
		assert.Equal(t, "fish", word)
		assert.Equal(t, []float32{0, 1, 0}, vec)

		_, _, err = d.Next()
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("NoTrailingNewlines", func(t *testing.T) {
		// The record newline is optional; back-to-back records must parse.
		var buf bytes.Buffer
		buf.WriteString("2 2\n")
		buf.Write(record("up", []float32{1, 2}, false))
		buf.Write(record("down", []float32{3, 4}, false))

		d, err := NewDecoder(&buf)
		require.NoError(t, err)

		word, vec, err := d.Next()
		require.NoError(t, err)
		assert.Equal(t, "up", word)
		assert.Equal(t, []float32{1, 2}, vec)

		word, vec, err = d.Next()
		require.NoError(t, err)
		assert.Equal(t, "down", word)
		assert.Equal(t, []float32{3, 4}, vec)
	})

	t.Run("ShortStreamStopsAtBoundary", func(t *testing.T) {
		// Header declares 5 records, stream carries 2: clean EOF after 2.
		var buf bytes.Buffer
		buf.WriteString("5 2\n")
		buf.Write(record("one", []float32{1, 1}, true))
		buf.Write(record("two", []float32{2, 2}, true))

		d, err := NewDecoder(&buf)
		require.NoError(t, err)

		for _, want := range []string{"one", "two"} {
			word, _, err := d.Next()
			require.NoError(t, err)
			assert.Equal(t, want, word)
		}

		_, _, err = d.Next()
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("TruncatedVector", func(t *testing.T) {
		var buf bytes.Buffer
		buf.WriteString("1 3\n")
		full := record("cat", []float32{1, 2, 3}, false)
		buf.Write(full[:len(full)-5]) // cut into the float bytes

		d, err := NewDecoder(&buf)
		require.NoError(t, err)

		_, _, err = d.Next()
		assert.ErrorIs(t, err, ErrUnexpectedEOF)
	})

	t.Run("WordWithoutVector", func(t *testing.T) {
		var buf bytes.Buffer
		buf.WriteString("1 2\n")
		buf.WriteString("dangling") // no delimiter, no vector bytes

		d, err := NewDecoder(&buf)
		require.NoError(t, err)

		_, _, err = d.Next()
		assert.ErrorIs(t, err, ErrUnexpectedEOF)
	})

	t.Run("ZeroDim", func(t *testing.T) {
		var buf bytes.Buffer
		buf.WriteString("1 0\n")
		buf.Write(record("empty", nil, true))

		d, err := NewDecoder(&buf)
		require.NoError(t, err)

		word, vec, err := d.Next()
		require.NoError(t, err)
		assert.Equal(t, "empty", word)
		assert.Empty(t, vec)
	})
}

func TestDecoderHeader(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"NoNewline", "3 3"},
		{"OneField", "3\n"},
		{"ThreeFields", "3 3 3\n"},
		{"NonInteger", "three 3\n"},
		{"NegativeVocab", "-1 3\n"},
		{"NegativeDim", "3 -3\n"},
		{"Float", "3.5 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDecoder(bytes.NewReader([]byte(tt.input)))
			assert.ErrorIs(t, err, ErrMalformedHeader)
		})
	}
}

func TestDecoderEmptyWordPolicy(t *testing.T) {
	// An empty word means the delimiter shows up immediately. The vector
	// bytes still belong to the record and must be consumed, otherwise every
	// following record is misparsed.
	build := func() *bytes.Buffer {
		var buf bytes.Buffer
		buf.WriteString("3 2\n")
		buf.Write(record("cat", []float32{1, 2}, true))
		buf.Write(record("", []float32{9, 9}, true))
		buf.Write(record("dog", []float32{3, 4}, true))
		return &buf
	}

	t.Run("LenientDropsAndStaysAligned", func(t *testing.T) {
		d, err := NewDecoder(build())
		require.NoError(t, err)

		word, vec, err := d.Next()
		require.NoError(t, err)
		assert.Equal(t, "cat", word)
		assert.Equal(t, []float32{1, 2}, vec)

		// The empty record is dropped; the next record is still aligned.
		word, vec, err = d.Next()
		require.NoError(t, err)
		assert.Equal(t, "dog", word)
		assert.Equal(t, []float32{3, 4}, vec)

		_, _, err = d.Next()
		assert.ErrorIs(t, err, io.EOF)
		assert.Equal(t, 1, d.Skipped())
	})

	t.Run("StrictFails", func(t *testing.T) {
		d, err := NewDecoder(build(), func(o *Options) { o.Strict = true })
		require.NoError(t, err)

		_, _, err = d.Next()
		require.NoError(t, err)

		_, _, err = d.Next()
		assert.ErrorIs(t, err, ErrMalformedRecord)
	})
}

func TestEncoderRoundTrip(t *testing.T) {
	words := []string{"alpha", "beta", "gamma"}
	vecs := [][]float32{{1, -1}, {0.5, 0.25}, {-3, 4}}

	var buf bytes.Buffer
	enc, err := NewEncoder(&buf, len(words), 2)
	require.NoError(t, err)
	for i := range words {
		require.NoError(t, enc.Write(words[i], vecs[i]))
	}
	require.NoError(t, enc.Flush())

	d, err := NewDecoder(&buf)
	require.NoError(t, err)
	assert.Equal(t, Header{Vocab: 3, Dim: 2}, d.Header())

	for i := range words {
		word, vec, err := d.Next()
		require.NoError(t, err)
		assert.Equal(t, words[i], word)
		assert.Equal(t, vecs[i], vec)
	}

	_, _, err = d.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestEncoderRejectsBadInput(t *testing.T) {
	enc, err := NewEncoder(io.Discard, 1, 2)
	require.NoError(t, err)

	assert.ErrorIs(t, enc.Write("", []float32{1, 2}), ErrMalformedRecord)
	assert.ErrorIs(t, enc.Write("two words", []float32{1, 2}), ErrMalformedRecord)
	assert.Error(t, enc.Write("ok", []float32{1}))

	_, err = NewEncoder(io.Discard, -1, 2)
	assert.ErrorIs(t, err, ErrMalformedHeader)
}
