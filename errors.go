package wordvec

import "errors"

var (
	// ErrNotFound is returned by Load and LoadFromStore when the model blob
	// does not exist. Parse failures surface the modelfile sentinels
	// (ErrMalformedHeader, ErrUnexpectedEOF, ErrMalformedRecord) instead.
	ErrNotFound = errors.New("model not found")

	// ErrInvalidTopN is returned by Rank when topN is negative.
	ErrInvalidTopN = errors.New("topN must be non-negative")
)
