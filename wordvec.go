package wordvec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hupe1980/wordvec/blobstore"
	"github.com/hupe1980/wordvec/modelfile"
	"github.com/hupe1980/wordvec/vecmath"
)

// Preallocation bounds for untrusted header counts (see read).
const (
	maxPreallocRows   = 1 << 16
	maxPreallocFloats = 1 << 24
)

// Load reads a model file from path and builds the table.
//
// A missing file is reported as an error wrapping ErrNotFound; parse failures
// surface the modelfile sentinels. Loading is all or nothing: on error no
// table is returned.
//
// Duplicate words in the stream follow last-write-wins: the later record's
// vector replaces the earlier one. Records with an empty word are handled per
// the configured policy (see WithStrictRecords).
func Load(path string, optFns ...Option) (*Table, error) {
	o := applyOptions(optFns)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		o.logger.LogLoad(path, 0, 0, 0, err)
		return nil, err
	}
	defer f.Close()

	return read(f, path, o)
}

// Read builds a table from an arbitrary model byte stream.
// The same contract as Load applies, minus the file handling.
func Read(r io.Reader, optFns ...Option) (*Table, error) {
	return read(r, "stream", applyOptions(optFns))
}

// LoadFromStore fetches a model blob from store and builds the table.
// A missing blob is reported as an error wrapping ErrNotFound.
func LoadFromStore(ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) (*Table, error) {
	o := applyOptions(optFns)

	rc, err := store.Open(ctx, name)
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			err = fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		o.logger.LogLoad(name, 0, 0, 0, err)
		return nil, err
	}
	defer rc.Close()

	return read(rc, name, o)
}

func read(r io.Reader, source string, o options) (*Table, error) {
	dec, err := modelfile.NewDecoder(r, func(mo *modelfile.Options) {
		mo.Strict = o.strict
	})
	if err != nil {
		o.logger.LogLoad(source, 0, 0, 0, err)
		return nil, err
	}

	h := dec.Header()

	// The declared vocabulary is untrusted; cap preallocation so a bogus
	// header cannot force a huge up-front allocation. The slices still grow
	// to whatever the stream actually carries.
	preRows := h.Vocab
	if preRows > maxPreallocRows {
		preRows = maxPreallocRows
	}
	preFloats := maxPreallocFloats
	if h.Dim == 0 || preRows <= maxPreallocFloats/h.Dim {
		preFloats = preRows * h.Dim
	}

	t := &Table{
		words:  make([]string, 0, preRows),
		rows:   make(map[string]uint32, preRows),
		data:   make([]float32, 0, preFloats),
		dim:    h.Dim,
		logger: o.logger,
	}

	for {
		word, vec, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			o.logger.LogLoad(source, 0, 0, dec.Skipped(), err)
			return nil, err
		}

		if o.normalize {
			vecmath.NormalizeL2InPlace(vec)
		}

		if row, ok := t.rows[word]; ok {
			// Last write wins; the word keeps its original row.
			copy(t.data[int(row)*t.dim:(int(row)+1)*t.dim], vec)
			continue
		}

		row := uint32(len(t.words))
		t.words = append(t.words, word)
		t.rows[word] = row
		t.data = append(t.data, vec...)
	}

	o.logger.LogLoad(source, t.Len(), t.dim, dec.Skipped(), nil)
	return t, nil
}
