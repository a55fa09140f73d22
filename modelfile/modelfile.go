// Package modelfile implements the compact binary encoding for pre-trained
// word-embedding tables.
//
// A model file is a single text header line followed by fixed-size binary
// records:
//
//	<header>       ::= ASCII-decimal vocab SP ASCII-decimal dim '\n'
//	<record>       ::= <word-bytes> SP <vector-bytes> [ '\n' ]
//	<word-bytes>   ::= UTF-8 bytes, no embedded 0x20 or 0x0A
//	<vector-bytes> ::= dim * 4 bytes, little-endian IEEE-754 single precision
//
// The newline after a record is optional: it is consumed only when present,
// otherwise the byte already belongs to the next word.
//
// Model files may additionally be wrapped in a gzip, zstd or lz4 container;
// the decoder detects these by their magic bytes and decompresses
// transparently.
package modelfile

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrMalformedHeader is returned when the header line is missing or its
	// fields do not parse as non-negative integers.
	ErrMalformedHeader = errors.New("modelfile: malformed header")

	// ErrUnexpectedEOF is returned when the stream ends inside a record.
	ErrUnexpectedEOF = errors.New("modelfile: unexpected end of stream")

	// ErrMalformedRecord is returned in strict mode for a record whose word
	// is empty.
	ErrMalformedRecord = errors.New("modelfile: malformed record")
)

// Header describes the declared shape of a model file.
type Header struct {
	// Vocab is the declared record count. The number of usable records can be
	// lower when the stream ends early or empty-word records are dropped.
	Vocab int

	// Dim is the shared vector dimensionality.
	Dim int
}

// Options contains configuration options for the decoder.
type Options struct {
	// Strict makes an empty-word record fail the decode with
	// ErrMalformedRecord instead of being dropped.
	Strict bool

	// BufferSize is the size of the read buffer.
	BufferSize int
}

// DefaultOptions contains the default configuration options for the decoder.
var DefaultOptions = Options{
	Strict:     false,
	BufferSize: 256 * 1024,
}

// maxDim bounds the accepted header dimension. 2^20 components (4 MiB per
// vector) is far beyond any published embedding model.
const maxDim = 1 << 20

// Decoder reads a model file record by record.
//
// Empty-word records are a hazard: dropping one without consuming its vector
// bytes would desynchronize every record that follows. The decoder therefore
// always consumes the full record. By default an empty-word record is dropped
// after its vector bytes are read (the stream stays aligned); in strict mode
// it aborts the decode with ErrMalformedRecord.
//
// Duplicate words are surfaced in stream order; collapsing them is the
// caller's concern.
type Decoder struct {
	r       *bufio.Reader
	header  Header
	strict  bool
	buf     []byte // vector scratch, Dim*4 bytes
	read    int    // records consumed so far, dropped ones included
	skipped int    // empty-word records dropped
}

// NewDecoder wraps r, decompresses it when needed and parses the header.
func NewDecoder(r io.Reader, optFns ...func(o *Options)) (*Decoder, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.BufferSize <= 0 {
		opts.BufferSize = DefaultOptions.BufferSize
	}

	br := bufio.NewReaderSize(r, opts.BufferSize)
	cr, err := wrapCompression(br)
	if err != nil {
		return nil, err
	}
	if cr != io.Reader(br) {
		br = bufio.NewReaderSize(cr, opts.BufferSize)
	}

	d := &Decoder{
		r:      br,
		strict: opts.Strict,
	}
	if err := d.readHeader(); err != nil {
		return nil, err
	}
	d.buf = make([]byte, d.header.Dim*4)

	return d, nil
}

// Header returns the parsed header.
func (d *Decoder) Header() Header {
	return d.header
}

// Skipped returns the number of empty-word records dropped so far.
func (d *Decoder) Skipped() int {
	return d.skipped
}

// Next returns the next record in stream order. The returned vector is a
// fresh slice of length Header().Dim owned by the caller.
//
// io.EOF signals a clean end of the stream: either all declared records were
// read or the stream ended exactly on a record boundary. An end of stream
// inside a record is ErrUnexpectedEOF.
func (d *Decoder) Next() (string, []float32, error) {
	for {
		if d.read >= d.header.Vocab {
			return "", nil, io.EOF
		}

		word, err := d.readWord()
		if err != nil {
			return "", nil, err
		}

		vec := make([]float32, d.header.Dim)
		if err := d.readVector(vec); err != nil {
			return "", nil, err
		}
		d.maybeNewline()
		d.read++

		if word == "" {
			if d.strict {
				return "", nil, fmt.Errorf("%w: empty word in record %d", ErrMalformedRecord, d.read)
			}
			d.skipped++
			continue
		}

		return word, vec, nil
	}
}

func (d *Decoder) readHeader() error {
	line, err := d.r.ReadString('\n')
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}

	fields := strings.Fields(strings.TrimSuffix(line, "\n"))
	if len(fields) != 2 {
		return fmt.Errorf("%w: expected %q, got %q", ErrMalformedHeader, "<vocab> <dim>", strings.TrimSuffix(line, "\n"))
	}

	vocab, err := strconv.Atoi(fields[0])
	if err != nil || vocab < 0 {
		return fmt.Errorf("%w: invalid vocabulary size %q", ErrMalformedHeader, fields[0])
	}
	dim, err := strconv.Atoi(fields[1])
	if err != nil || dim < 0 {
		return fmt.Errorf("%w: invalid dimension %q", ErrMalformedHeader, fields[1])
	}
	// Headers are untrusted input; a dimension beyond any real embedding
	// model would force a multi-GB scratch allocation per record.
	if dim > maxDim {
		return fmt.Errorf("%w: implausible dimension %d", ErrMalformedHeader, dim)
	}

	d.header = Header{Vocab: vocab, Dim: dim}
	return nil
}

// readWord consumes bytes up to and including the 0x20 delimiter and returns
// them without the delimiter. A clean EOF before any word byte is a record
// boundary and surfaces as io.EOF; an EOF after word bytes is truncation.
func (d *Decoder) readWord() (string, error) {
	raw, err := d.r.ReadBytes(' ')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if len(raw) == 0 {
				return "", io.EOF
			}
			return "", fmt.Errorf("%w: word without vector at record %d", ErrUnexpectedEOF, d.read+1)
		}
		return "", err
	}
	return string(raw[:len(raw)-1]), nil
}

func (d *Decoder) readVector(dst []float32) error {
	if len(dst) == 0 {
		return nil
	}
	if _, err := io.ReadFull(d.r, d.buf); err != nil {
		return fmt.Errorf("%w: truncated vector at record %d: %v", ErrUnexpectedEOF, d.read+1, err)
	}
	for i := range dst {
		dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(d.buf[i*4:]))
	}
	return nil
}

// maybeNewline consumes a single trailing newline if present. Any other byte
// belongs to the next word and is left in the stream.
func (d *Decoder) maybeNewline() {
	b, err := d.r.ReadByte()
	if err != nil {
		return
	}
	if b != '\n' {
		_ = d.r.UnreadByte()
	}
}
