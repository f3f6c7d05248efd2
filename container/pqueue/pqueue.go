// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pqueue provides interchangeable priority queue containers:
// an array backed binary heap, a binomial heap and a randomized
// meldable heap. All three store key/data entries, support insertion
// and extraction of the entry with the smallest key and satisfy the
// Queue interface. The binary heap additionally supports decreasing
// the key of a previously inserted entry via the reference returned
// by Push.
//
// None of the containers is safe for concurrent use; each instance
// must be owned and mutated by a single caller at a time.
package pqueue

// Ordered represents the set of types that can be used as keys. Keys
// must be totally ordered; the data associated with a key is never
// compared.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64 | ~string
}

// Entry is a single key/data pair stored in a queue. Data is an
// opaque payload that is carried alongside the key but plays no part
// in ordering.
type Entry[K Ordered, D any] struct {
	Key  K
	Data D
}

// Ref identifies a live entry in a queue that supports updating
// entries after insertion. Refs are generation checked: a Ref becomes
// invalid as soon as its entry is extracted and is never silently
// re-pointed at another entry, even when the queue's internal storage
// is reused. The zero Ref is never valid.
//
// Only Binary returns usable Refs; the other containers return the
// zero Ref from Push.
type Ref struct {
	id  int
	gen uint32
}

// Queue is the contract shared by all of the containers in this
// package.
type Queue[K Ordered, D any] interface {
	// Len returns the number of entries currently stored.
	Len() int
	// Push adds an entry and returns a reference to it. The
	// reference is meaningful only for implementations that also
	// satisfy KeyDecreaser.
	Push(key K, data D) Ref
	// Pop removes and returns an entry with the smallest key, or
	// false if the queue is empty. No ordering is guaranteed between
	// entries with equal keys.
	Pop() (Entry[K, D], bool)
	// Peek returns the entry that Pop would return without removing
	// it, or false if the queue is empty.
	Peek() (Entry[K, D], bool)
}

// KeyDecreaser is satisfied by queues that can lower the key of a
// live entry in place.
type KeyDecreaser[K Ordered, D any] interface {
	Queue[K, D]
	// DecreaseKey lowers the key of the entry identified by ref to
	// key. It is a programming error, and panics, if ref does not
	// refer to a live entry or if key is greater than the entry's
	// current key.
	DecreaseKey(ref Ref, key K)
}

var (
	_ KeyDecreaser[int, int] = (*Binary[int, int])(nil)
	_ Queue[int, int]        = (*Binomial[int, int])(nil)
	_ Queue[int, int]        = (*Meldable[int, int])(nil)
)
