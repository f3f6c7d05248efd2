// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqueue

// Binary implements Queue and KeyDecreaser as an array backed binary
// min-heap. In addition to the parallel key and data slices it keeps
// a handle table that maps the Ref returned by Push to the entry's
// current slot; the table is updated on every swap so Refs remain
// valid across any sequence of operations until their entry is
// extracted. Push, Pop and DecreaseKey are all O(log n).
type Binary[K Ordered, D any] struct {
	keys  []K
	vals  []D
	ids   []int    // slot -> handle
	slots []int    // handle -> slot, -1 for a dead handle
	gens  []uint32 // handle -> generation, bumped when the handle dies
	free  []int    // dead handles available for reuse
}

// NewBinary returns a new instance of Binary. The zero value is also
// ready to use.
func NewBinary[K Ordered, D any](opts ...Option) *Binary[K, D] {
	var o options
	o.sliceCap = 1
	for _, fn := range opts {
		fn(&o)
	}
	return &Binary[K, D]{
		keys: make([]K, 0, o.sliceCap),
		vals: make([]D, 0, o.sliceCap),
		ids:  make([]int, 0, o.sliceCap),
	}
}

// Len returns the number of entries currently stored.
func (h *Binary[K, D]) Len() int {
	return len(h.keys)
}

// Push adds the entry and returns a Ref that remains valid until the
// entry is extracted.
func (h *Binary[K, D]) Push(key K, data D) Ref {
	id := h.alloc()
	h.keys = append(h.keys, key)
	h.vals = append(h.vals, data)
	h.ids = append(h.ids, id)
	h.slots[id] = len(h.keys) - 1
	h.siftUp(len(h.keys) - 1)
	return Ref{id: id, gen: h.gens[id]}
}

// Pop removes and returns an entry with the smallest key, or false if
// the queue is empty. The entry's Ref is invalidated.
func (h *Binary[K, D]) Pop() (Entry[K, D], bool) {
	n := len(h.keys)
	if n == 0 {
		return Entry[K, D]{}, false
	}
	e := Entry[K, D]{Key: h.keys[0], Data: h.vals[0]}
	h.swap(0, n-1)
	id := h.ids[n-1]
	h.keys = h.keys[:n-1]
	h.vals = h.vals[:n-1]
	h.ids = h.ids[:n-1]
	h.release(id)
	if n > 1 {
		h.siftDown(0)
	}
	return e, true
}

// Peek returns the entry that Pop would return without removing it.
func (h *Binary[K, D]) Peek() (Entry[K, D], bool) {
	if len(h.keys) == 0 {
		return Entry[K, D]{}, false
	}
	return Entry[K, D]{Key: h.keys[0], Data: h.vals[0]}, true
}

// DecreaseKey lowers the key of the entry identified by ref to key.
// Passing a Ref that no longer refers to a live entry, or a key
// greater than the entry's current key, is a programming error and
// panics rather than corrupting the heap.
func (h *Binary[K, D]) DecreaseKey(ref Ref, key K) {
	if !h.Valid(ref) {
		panic("pqueue: DecreaseKey called with a stale or invalid Ref")
	}
	slot := h.slots[ref.id]
	if key > h.keys[slot] {
		panic("pqueue: DecreaseKey called with a key greater than the entry's current key")
	}
	h.keys[slot] = key
	h.siftUp(slot)
}

// Valid reports whether ref refers to an entry that is still stored
// in the queue.
func (h *Binary[K, D]) Valid(ref Ref) bool {
	return ref.id >= 0 && ref.id < len(h.gens) &&
		h.gens[ref.id] == ref.gen && h.slots[ref.id] >= 0
}

func (h *Binary[K, D]) alloc() int {
	if n := len(h.free); n > 0 {
		id := h.free[n-1]
		h.free = h.free[:n-1]
		return id
	}
	h.slots = append(h.slots, -1)
	h.gens = append(h.gens, 1)
	return len(h.slots) - 1
}

func (h *Binary[K, D]) release(id int) {
	h.slots[id] = -1
	h.gens[id]++
	h.free = append(h.free, id)
}

func (h *Binary[K, D]) swap(i, j int) {
	h.keys[i], h.keys[j] = h.keys[j], h.keys[i]
	h.vals[i], h.vals[j] = h.vals[j], h.vals[i]
	h.ids[i], h.ids[j] = h.ids[j], h.ids[i]
	h.slots[h.ids[i]] = i
	h.slots[h.ids[j]] = j
}

func (h *Binary[K, D]) siftUp(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || h.keys[i] <= h.keys[j] {
			break
		}
		h.swap(i, j)
		j = i
	}
}

func (h *Binary[K, D]) siftDown(i int) {
	n := len(h.keys)
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child, wins ties
		if j2 := j1 + 1; j2 < n && h.keys[j2] < h.keys[j1] {
			j = j2
		}
		if h.keys[i] <= h.keys[j] {
			break
		}
		h.swap(i, j)
		i = j
	}
}
