package wordvec

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/wordvec/internal/queue"
	"github.com/hupe1980/wordvec/vecmath"
)

// RankedEntry is a single ranking result.
type RankedEntry struct {
	Word string

	// Score is the raw dot product between the query and the entry's vector.
	// It is not renormalized at query time: it reads as cosine similarity
	// only when the stored vectors are unit length.
	Score float32
}

// Rank scans every table entry against the query vector and returns the topN
// highest-scoring entries, excluded words left out. Fewer than topN entries
// are returned when the table has fewer eligible words.
//
// Ordering is descending by score with ties broken by ascending word, so
// results are reproducible and independent of map iteration order. The
// bounded-heap selection is exactly equivalent to a full sort truncated to
// topN.
//
// A negative topN is ErrInvalidTopN; a query of the wrong length is
// *vecmath.ErrDimensionMismatch.
func (t *Table) Rank(query []float32, topN int, exclude ...string) ([]RankedEntry, error) {
	if topN < 0 {
		t.logger.LogRank(topN, 0, ErrInvalidTopN)
		return nil, ErrInvalidTopN
	}
	if len(query) != t.dim {
		err := &vecmath.ErrDimensionMismatch{Expected: t.dim, Actual: len(query)}
		t.logger.LogRank(topN, 0, err)
		return nil, err
	}
	if topN == 0 || t.Len() == 0 {
		return nil, nil
	}

	excluded := roaring.New()
	for _, word := range exclude {
		if row, ok := t.rows[word]; ok {
			excluded.Add(row)
		}
	}

	scores := make([]float32, t.Len())
	vecmath.DotBatch(query, t.data, t.dim, scores)

	top := queue.NewBounded(topN)
	for row, score := range scores {
		if excluded.Contains(uint32(row)) {
			continue
		}
		top.Push(queue.Candidate{
			Row:   uint32(row),
			Word:  t.words[row],
			Score: score,
		})
	}

	ranked := make([]RankedEntry, 0, top.Len())
	for _, c := range top.Drain() {
		ranked = append(ranked, RankedEntry{Word: c.Word, Score: c.Score})
	}

	t.logger.LogRank(topN, len(ranked), nil)
	return ranked, nil
}

// Similar returns the topN entries most similar to word, the word itself
// excluded. The boolean is false when word is not in the table; a missing
// word is not an error. A negative topN is treated as 0.
func (t *Table) Similar(word string, topN int) ([]RankedEntry, bool) {
	row, ok := t.rows[word]
	if !ok {
		return nil, false
	}
	if topN < 0 {
		topN = 0
	}

	ranked, err := t.Rank(t.row(row), topN, word)
	if err != nil {
		// Unreachable: topN is clamped and the query is a table row.
		t.logger.Error("similar query failed", "word", word, "error", err)
		return nil, false
	}
	return ranked, true
}

// Analogy answers "a is to b as c is to ?" by ranking the vocabulary against
// target = normalize(vec(b) - vec(a) + vec(c)), with a, b and c excluded from
// the results. The boolean is false when any of the three words is missing;
// no partial ranking is ever returned. A negative topN is treated as 0.
func (t *Table) Analogy(a, b, c string, topN int) ([]RankedEntry, bool) {
	va, ok := t.Vector(a)
	if !ok {
		return nil, false
	}
	vb, ok := t.Vector(b)
	if !ok {
		return nil, false
	}
	vc, ok := t.Vector(c)
	if !ok {
		return nil, false
	}
	if topN < 0 {
		topN = 0
	}

	diff, err := vecmath.Subtract(vb, va)
	if err != nil {
		return nil, false
	}
	target, err := vecmath.Add(diff, vc)
	if err != nil {
		return nil, false
	}
	vecmath.NormalizeL2InPlace(target)

	ranked, err := t.Rank(target, topN, a, b, c)
	if err != nil {
		t.logger.Error("analogy query failed",
			"a", a, "b", b, "c", c,
			"error", err,
		)
		return nil, false
	}
	return ranked, true
}
