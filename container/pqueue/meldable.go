// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqueue

import "math/rand"

// Meldable implements Queue as a randomized meldable heap: a binary
// tree with min-heap ordered keys and no balance bookkeeping at all.
// Merging recurses into a uniformly random child at every step, which
// keeps the expected depth, and hence the expected cost of every
// operation, logarithmic. The random source can be supplied with
// WithRand; by default the shared process-wide source is used.
type Meldable[K Ordered, D any] struct {
	root *meldNode[K, D]
	size int
	rnd  *rand.Rand
}

type meldNode[K Ordered, D any] struct {
	key   K
	data  D
	left  *meldNode[K, D]
	right *meldNode[K, D]
}

// NewMeldable returns a new instance of Meldable. The zero value is
// also ready to use and draws from the process-wide random source.
func NewMeldable[K Ordered, D any](opts ...Option) *Meldable[K, D] {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return &Meldable[K, D]{rnd: o.rnd}
}

// Len returns the number of entries currently stored.
func (h *Meldable[K, D]) Len() int {
	return h.size
}

// Push adds the entry by melding a singleton heap into the receiver.
// The returned Ref is always the zero Ref.
func (h *Meldable[K, D]) Push(key K, data D) Ref {
	h.root = h.meld(h.root, &meldNode[K, D]{key: key, data: data})
	h.size++
	return Ref{}
}

// Meld merges other into the receiver, leaving other empty. The
// receiver's random source is used for the merge.
func (h *Meldable[K, D]) Meld(other *Meldable[K, D]) {
	h.root = h.meld(h.root, other.root)
	h.size += other.size
	other.root, other.size = nil, 0
}

// Pop removes and returns an entry with the smallest key, or false if
// the queue is empty. The root's two children are melded together to
// form the remaining heap.
func (h *Meldable[K, D]) Pop() (Entry[K, D], bool) {
	if h.root == nil {
		return Entry[K, D]{}, false
	}
	n := h.root
	h.root = h.meld(n.left, n.right)
	h.size--
	return Entry[K, D]{Key: n.key, Data: n.data}, true
}

// Peek returns the entry that Pop would return without removing it.
func (h *Meldable[K, D]) Peek() (Entry[K, D], bool) {
	if h.root == nil {
		return Entry[K, D]{}, false
	}
	return Entry[K, D]{Key: h.root.key, Data: h.root.data}, true
}

func (h *Meldable[K, D]) meld(a, b *meldNode[K, D]) *meldNode[K, D] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.key < a.key {
		a, b = b, a
	}
	if h.flip() {
		a.right = h.meld(a.right, b)
	} else {
		a.left = h.meld(a.left, b)
	}
	return a
}

func (h *Meldable[K, D]) flip() bool {
	if h.rnd != nil {
		return h.rnd.Int63()&1 == 0
	}
	return rand.Int63()&1 == 0 // #nosec: G404
}
