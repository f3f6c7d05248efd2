// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqueue

// Binomial implements Queue as a binomial heap: a forest of min-heap
// ordered binomial trees indexed by rank, with at most one tree per
// rank. A tree of rank r has exactly 2^r nodes and r children of
// ranks 0..r-1, so the occupied ranks are the binary representation
// of the heap's size. Push is amortized O(1), Pop and Merge are
// O(log n).
type Binomial[K Ordered, D any] struct {
	ranks []*binomialTree[K, D] // ranks[r] is the tree of rank r, or nil
	size  int
}

type binomialTree[K Ordered, D any] struct {
	key      K
	data     D
	children []*binomialTree[K, D] // children[i] has rank i
}

// NewBinomial returns a new instance of Binomial. The zero value is
// also ready to use.
func NewBinomial[K Ordered, D any]() *Binomial[K, D] {
	return &Binomial[K, D]{}
}

// Len returns the number of entries currently stored.
func (h *Binomial[K, D]) Len() int {
	return h.size
}

// Push adds the entry by merging a singleton rank-0 tree into the
// receiver. The returned Ref is always the zero Ref.
func (h *Binomial[K, D]) Push(key K, data D) Ref {
	h.Merge(&Binomial[K, D]{
		ranks: []*binomialTree[K, D]{{key: key, data: data}},
		size:  1,
	})
	return Ref{}
}

// Merge merges other into the receiver, leaving other empty. It walks
// the two rank sequences as a carry-propagating binary addition:
// whenever two trees of equal rank meet they are linked into a single
// tree of the next rank and carried. The shorter rank sequence is
// always the one walked, swapping the underlying storage if
// necessary.
func (h *Binomial[K, D]) Merge(other *Binomial[K, D]) {
	if len(other.ranks) > len(h.ranks) {
		h.ranks, other.ranks = other.ranks, h.ranks
	}
	h.size += other.size
	var carry *binomialTree[K, D]
	for rank, otherTree := range other.ranks {
		first, second, third := gather(h.ranks[rank], otherTree, carry)
		carry = nil
		if second != nil {
			carry = link(first, second)
			h.ranks[rank] = third
			continue
		}
		h.ranks[rank] = first
	}
	for rank := len(other.ranks); carry != nil; rank++ {
		if rank == len(h.ranks) {
			h.ranks = append(h.ranks, carry)
			break
		}
		if t := h.ranks[rank]; t != nil {
			h.ranks[rank] = nil
			carry = link(t, carry)
			continue
		}
		h.ranks[rank] = carry
		carry = nil
	}
	other.ranks, other.size = nil, 0
}

// Pop removes and returns an entry with the smallest key, or false if
// the queue is empty. The extracted tree's children form a valid
// binomial heap of their own and are merged back into the receiver.
func (h *Binomial[K, D]) Pop() (Entry[K, D], bool) {
	minRank := h.minRank()
	if minRank < 0 {
		return Entry[K, D]{}, false
	}
	t := h.ranks[minRank]
	h.ranks[minRank] = nil
	h.size -= 1 << uint(minRank)
	h.Merge(&Binomial[K, D]{
		ranks: t.children,
		size:  1<<uint(minRank) - 1,
	})
	return Entry[K, D]{Key: t.key, Data: t.data}, true
}

// Peek returns the entry that Pop would return without removing it.
func (h *Binomial[K, D]) Peek() (Entry[K, D], bool) {
	minRank := h.minRank()
	if minRank < 0 {
		return Entry[K, D]{}, false
	}
	t := h.ranks[minRank]
	return Entry[K, D]{Key: t.key, Data: t.data}, true
}

// minRank returns the rank of the tree with the smallest root key, or
// -1 if the heap is empty. The scan is linear in the number of ranks,
// ie. O(log n).
func (h *Binomial[K, D]) minRank() int {
	minRank := -1
	for rank, t := range h.ranks {
		if t == nil {
			continue
		}
		if minRank < 0 || t.key < h.ranks[minRank].key {
			minRank = rank
		}
	}
	return minRank
}

// link combines two trees of equal rank into one of the next rank:
// the tree whose root key is larger becomes the highest ranked child
// of the other.
func link[K Ordered, D any](a, b *binomialTree[K, D]) *binomialTree[K, D] {
	if a.key > b.key {
		a, b = b, a
	}
	a.children = append(a.children, b)
	return a
}

// gather returns the non-nil trees among the receiver's, the other
// heap's and the carried tree at a given rank, in order.
func gather[K Ordered, D any](trees ...*binomialTree[K, D]) (first, second, third *binomialTree[K, D]) {
	for _, t := range trees {
		switch {
		case t == nil:
		case first == nil:
			first = t
		case second == nil:
			second = t
		default:
			third = t
		}
	}
	return
}
