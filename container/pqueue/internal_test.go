// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqueue

import "testing"

func (h *Binary[K, D]) Verify(t *testing.T) {
	t.Helper()
	for i := 1; i < len(h.keys); i++ {
		p := (i - 1) / 2
		if h.keys[i] < h.keys[p] {
			t.Errorf("heap inconsistent: [%v] %v < parent [%v] %v", i, h.keys[i], p, h.keys[p])
		}
	}
	for i, id := range h.ids {
		if h.slots[id] != i {
			t.Errorf("handle table inconsistent: slot %v holds handle %v but slots[%v] = %v", i, id, id, h.slots[id])
		}
	}
	for id, slot := range h.slots {
		if slot >= 0 && (slot >= len(h.ids) || h.ids[slot] != id) {
			t.Errorf("handle table inconsistent: handle %v claims slot %v", id, slot)
		}
	}
}

func (h *Binomial[K, D]) Verify(t *testing.T) {
	t.Helper()
	total := 0
	for rank, tr := range h.ranks {
		if tr == nil {
			continue
		}
		total += tr.verify(t, rank)
	}
	if total != h.size {
		t.Errorf("binomial heap inconsistent: counted %v nodes, size is %v", total, h.size)
	}
}

func (tr *binomialTree[K, D]) verify(t *testing.T, rank int) int {
	t.Helper()
	if len(tr.children) != rank {
		t.Errorf("binomial tree inconsistent: rank %v tree has %v children", rank, len(tr.children))
		return 1
	}
	n := 1
	for i, c := range tr.children {
		if c.key < tr.key {
			t.Errorf("binomial tree inconsistent: child key %v < parent key %v", c.key, tr.key)
		}
		n += c.verify(t, i)
	}
	return n
}

// RankOccupancy reports which ranks currently hold a tree, including
// any trailing empty ranks.
func (h *Binomial[K, D]) RankOccupancy() []bool {
	occupied := make([]bool, len(h.ranks))
	for i, t := range h.ranks {
		occupied[i] = t != nil
	}
	return occupied
}

func (h *Meldable[K, D]) Verify(t *testing.T) {
	t.Helper()
	if n := h.root.verify(t); n != h.size {
		t.Errorf("meldable heap inconsistent: counted %v nodes, size is %v", n, h.size)
	}
}

func (n *meldNode[K, D]) verify(t *testing.T) int {
	t.Helper()
	if n == nil {
		return 0
	}
	total := 1
	for _, c := range []*meldNode[K, D]{n.left, n.right} {
		if c != nil && c.key < n.key {
			t.Errorf("meldable heap inconsistent: child key %v < parent key %v", c.key, n.key)
		}
		total += c.verify(t)
	}
	return total
}
