// Package queue provides the bounded candidate heap used for top-N ranking.
package queue

// Candidate is a scored vocabulary entry flowing through a ranking scan.
type Candidate struct {
	Row   uint32 // table row id
	Word  string
	Score float32 // raw dot product against the query
}

// worse reports whether a ranks strictly below b in the final ordering:
// lower score loses, and on equal scores the lexicographically larger word
// loses. Words are unique within a table, so this is a total order.
func worse(a, b Candidate) bool {
	if a.Score != b.Score {
		return a.Score < b.Score
	}
	return a.Word > b.Word
}

// Bounded keeps the best capacity candidates seen so far.
//
// The heap root is always the current worst candidate, so selection matches a
// full sort by (descending score, ascending word) truncated to capacity —
// tie-break included. Value-based storage, no pointer indirection.
type Bounded struct {
	capacity int
	items    []Candidate
}

// NewBounded initializes a bounded candidate heap.
// A capacity of 0 yields a heap that drops everything.
func NewBounded(capacity int) *Bounded {
	initial := capacity
	if initial < 0 {
		initial = 0
	}
	if initial > 16 {
		initial = 16
	}
	return &Bounded{
		capacity: capacity,
		items:    make([]Candidate, 0, initial),
	}
}

// Len returns the number of buffered candidates.
func (q *Bounded) Len() int { return len(q.items) }

// Push offers a candidate, evicting the current worst when the heap is full.
func (q *Bounded) Push(c Candidate) {
	if q.capacity <= 0 {
		return
	}

	if len(q.items) < q.capacity {
		q.items = append(q.items, c)
		q.siftUp(len(q.items) - 1)
		return
	}

	if worse(c, q.items[0]) {
		return
	}
	q.items[0] = c
	q.siftDown(0)
}

// Drain removes all candidates and returns them best first.
// The heap is empty afterwards.
func (q *Bounded) Drain() []Candidate {
	out := make([]Candidate, len(q.items))
	for i := len(q.items) - 1; i >= 0; i-- {
		out[i], _ = q.pop()
	}
	return out
}

// pop removes and returns the worst buffered candidate.
func (q *Bounded) pop() (Candidate, bool) {
	n := len(q.items)
	if n == 0 {
		return Candidate{}, false
	}
	root := q.items[0]
	last := q.items[n-1]
	q.items[n-1] = Candidate{}
	q.items = q.items[:n-1]
	if n-1 > 0 {
		q.items[0] = last
		q.siftDown(0)
	}
	return root, true
}

func (q *Bounded) less(i, j int) bool {
	return worse(q.items[i], q.items[j])
}

func (q *Bounded) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !q.less(i, p) {
			return
		}
		q.items[i], q.items[p] = q.items[p], q.items[i]
		i = p
	}
}

func (q *Bounded) siftDown(i int) {
	n := len(q.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		r := l + 1
		if r < n && q.less(r, l) {
			best = r
		}
		if !q.less(best, i) {
			return
		}
		q.items[i], q.items[best] = q.items[best], q.items[i]
		i = best
	}
}
