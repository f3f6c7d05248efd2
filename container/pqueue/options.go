// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqueue

import "math/rand"

type options struct {
	sliceCap int
	rnd      *rand.Rand
}

// Option represents the options that can be passed to NewBinary and
// NewMeldable.
type Option func(*options)

// WithSliceCap sets the initial capacity of the slices used by the
// binary queue to hold keys and data. It is ignored by NewMeldable.
func WithSliceCap(n int) Option {
	return func(o *options) {
		o.sliceCap = n
	}
}

// WithRand sets the random source used by the meldable queue when
// choosing which child to meld into. Supplying a source with a fixed
// seed makes the queue's shape, and hence its extraction order for
// equal keys, deterministic. When unset the shared process-wide
// source is used. It is ignored by NewBinary.
func WithRand(rnd *rand.Rand) Option {
	return func(o *options) {
		o.rnd = rnd
	}
}
