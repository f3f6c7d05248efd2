// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sync"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/pqueue/container/pqueue"
	"cloudeng.io/sync/errgroup"
)

// Operation counts are bucketed in the csv output so that timings can
// be aggregated per heap-size range.
const bucketSize = 10000

// benchmark describes a single benchmark run: the queue variants to
// time, the input size and the trials to perform. It doubles as the
// yaml schema for suite files.
type benchmark struct {
	Size     int      `yaml:"size"`
	Trials   int      `yaml:"trials"`
	Seed     int64    `yaml:"seed"`
	Variants []string `yaml:"variants"`
	Parallel bool     `yaml:"parallel"`
	Output   string   `yaml:"output"`
}

func newQueue(name string) (pqueue.Queue[int, int], error) {
	switch name {
	case "binary":
		return pqueue.NewBinary[int, int](), nil
	case "binomial":
		return pqueue.NewBinomial[int, int](), nil
	case "randomized":
		return pqueue.NewMeldable[int, int](), nil
	}
	return nil, fmt.Errorf("unsupported queue variant: %v", name)
}

func (b benchmark) validate() error {
	errs := errors.M{}
	if b.Size <= 0 {
		errs.Append(fmt.Errorf("size must be positive, got %v", b.Size))
	}
	if b.Trials <= 0 {
		errs.Append(fmt.Errorf("trials must be positive, got %v", b.Trials))
	}
	if len(b.Variants) == 0 {
		errs.Append(fmt.Errorf("no queue variants specified"))
	}
	for _, name := range b.Variants {
		if _, err := newQueue(name); err != nil {
			errs.Append(err)
		}
	}
	return errs.Err()
}

func (b benchmark) run(ctx context.Context) error {
	if err := b.validate(); err != nil {
		return err
	}
	out := io.Writer(os.Stdout)
	if len(b.Output) > 0 {
		f, err := os.Create(b.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	w := newRowWriter(out)
	w.writeHeader()
	if b.Parallel {
		g, ctx := errgroup.WithContext(ctx)
		for i := 0; i < b.Trials; i++ {
			seed := b.Seed + int64(i)
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				return b.trial(w, seed)
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		return w.flush()
	}
	for i := 0; i < b.Trials; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := b.trial(w, b.Seed+int64(i)); err != nil {
			return err
		}
	}
	return w.flush()
}

// trial runs a single timing trial: insert a seeded permutation of
// 0..size-1 into every variant, then extract every entry, verifying
// that the variants agree on the minimum at every step.
func (b benchmark) trial(w *rowWriter, seed int64) error {
	keys := rand.New(rand.NewSource(seed)).Perm(b.Size) // #nosec: G404
	queues := make([]pqueue.Queue[int, int], len(b.Variants))
	for i, name := range b.Variants {
		q, err := newQueue(name)
		if err != nil {
			return err
		}
		queues[i] = q
	}
	for i, k := range keys {
		for vi, q := range queues {
			start := time.Now()
			q.Push(k, 0)
			elapsed := time.Since(start)
			w.row(b.Variants[vi], "insert", i/bucketSize, elapsed.Nanoseconds())
		}
	}
	for i := 0; i < b.Size; i++ {
		agreed := 0
		for vi, q := range queues {
			start := time.Now()
			e, ok := q.Pop()
			elapsed := time.Since(start)
			if !ok {
				return fmt.Errorf("%v: queue empty after %v of %v extractions", b.Variants[vi], i, b.Size)
			}
			w.row(b.Variants[vi], "delete", i/bucketSize, elapsed.Nanoseconds())
			if vi == 0 {
				agreed = e.Key
				continue
			}
			if e.Key != agreed {
				return fmt.Errorf("extraction mismatch at step %v: %v returned %v but %v returned %v",
					i, b.Variants[0], agreed, b.Variants[vi], e.Key)
			}
		}
	}
	return nil
}

// rowWriter serializes csv rows from concurrently running trials.
// Write errors are deferred to flush via the underlying bufio.Writer.
type rowWriter struct {
	mu sync.Mutex
	w  *bufio.Writer
}

func newRowWriter(w io.Writer) *rowWriter {
	return &rowWriter{w: bufio.NewWriter(w)}
}

func (rw *rowWriter) writeHeader() {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	fmt.Fprintln(rw.w, "heap,operation,n,time")
}

func (rw *rowWriter) row(variant, op string, bucket int, ns int64) {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	fmt.Fprintf(rw.w, "%v,%v,%v,%v\n", variant, op, bucket, ns)
}

func (rw *rowWriter) flush() error {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	return rw.w.Flush()
}
