package modelfile

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Magic prefixes of the supported compression containers.
var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// peeker is the subset of bufio.Reader the sniffer needs.
type peeker interface {
	io.Reader
	Peek(n int) ([]byte, error)
}

// wrapCompression sniffs r and returns a decompressing reader when the stream
// is a gzip, zstd or lz4 container, or r itself for raw model files.
func wrapCompression(r peeker) (io.Reader, error) {
	magic, err := r.Peek(4)
	if err != nil {
		// Streams shorter than 4 bytes cannot be compressed containers;
		// let the header parser report what is wrong with them.
		return r, nil
	}

	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		return gzip.NewReader(r)
	case bytes.Equal(magic, zstdMagic):
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	case bytes.Equal(magic, lz4Magic):
		return lz4.NewReader(r), nil
	default:
		return r, nil
	}
}
