package dfs

// sentinel marks the parent slot of the start entry.
const sentinel = -1

// ledgerEntry records one push: the node and the arena index of its parent.
type ledgerEntry[N comparable] struct {
	node   N
	parent int
}

// ledger is the per-search discovery record. Every push appends an entry;
// first maps a node to the index of its earliest entry, which is the one used
// for parent links, depth and path reconstruction. Later entries for the same
// node only keep the arena aligned with the pushes.
type ledger[N comparable] struct {
	entries []ledgerEntry[N]
	first   map[N]int
}

// newLedger returns a ledger seeded with start under the sentinel parent.
func newLedger[N comparable](start N) *ledger[N] {
	l := &ledger[N]{
		entries: make([]ledgerEntry[N], 0, 16),
		first:   make(map[N]int, 16),
	}
	l.record(start, sentinel)

	return l
}

// record appends an entry for n with the given parent index.
func (l *ledger[N]) record(n N, parent int) {
	if _, ok := l.first[n]; !ok {
		l.first[n] = len(l.entries)
	}
	l.entries = append(l.entries, ledgerEntry[N]{node: n, parent: parent})
}

// indexOf returns the index of n's first entry, or sentinel if n was never
// recorded.
func (l *ledger[N]) indexOf(n N) int {
	if i, ok := l.first[n]; ok {
		return i
	}

	return sentinel
}

// depth counts parent hops from n's first entry back to the sentinel.
// The start node has depth 0. Parent indices always precede their child, so
// the walk terminates.
func (l *ledger[N]) depth(n N) int {
	d := 0
	for i := l.entries[l.indexOf(n)].parent; i != sentinel; i = l.entries[i].parent {
		d++
	}

	return d
}

// pathTo rebuilds the start-to-n path by walking parent links from n's first
// entry. It returns nil if n was never recorded.
func (l *ledger[N]) pathTo(n N) Path[N] {
	i := l.indexOf(n)
	if i == sentinel {
		return nil
	}
	var rev []N
	for ; i != sentinel; i = l.entries[i].parent {
		rev = append(rev, l.entries[i].node)
	}

	return Path[N](reverse(rev))
}

// size returns the number of entries (pushes) recorded.
func (l *ledger[N]) size() int { return len(l.entries) }
