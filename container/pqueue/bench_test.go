// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqueue_test

import (
	"math/rand"
	"testing"

	"cloudeng.io/pqueue/container/pqueue"
)

const benchmarkInputSize = 10000

func zipfRand(seed int64, n int) []uint64 {
	rnd := rand.New(rand.NewSource(seed))                // #nosec: G404
	gen := rand.NewZipf(rnd, 3.0, 1.1, 8*1024*1024*1024) // 8Gib
	r := make([]uint64, n)
	for i := range r {
		r[i] = gen.Uint64()
	}
	return r
}

func benchmarkQueue[K pqueue.Ordered](b *testing.B, q pqueue.Queue[K, int], keys []K) {
	for i := 0; i < b.N; i++ {
		for j := range keys {
			q.Push(keys[j], 0)
		}
		for q.Len() > 0 {
			q.Pop()
		}
	}
}

func BenchmarkBinaryDup_10000(b *testing.B) {
	b.ReportAllocs()
	keys := make([]int, benchmarkInputSize)
	h := pqueue.NewBinary[int, int](pqueue.WithSliceCap(len(keys)))
	b.ResetTimer()
	benchmarkQueue(b, h, keys)
}

func BenchmarkBinaryRand_10000(b *testing.B) {
	b.ReportAllocs()
	keys := uniformRand(0, benchmarkInputSize)
	h := pqueue.NewBinary[int, int](pqueue.WithSliceCap(len(keys)))
	b.ResetTimer()
	benchmarkQueue(b, h, keys)
}

func BenchmarkBinaryZipf_10000(b *testing.B) {
	b.ReportAllocs()
	keys := zipfRand(0, benchmarkInputSize)
	h := pqueue.NewBinary[uint64, int](pqueue.WithSliceCap(len(keys)))
	b.ResetTimer()
	benchmarkQueue(b, h, keys)
}

func BenchmarkBinomialDup_10000(b *testing.B) {
	b.ReportAllocs()
	keys := make([]int, benchmarkInputSize)
	h := pqueue.NewBinomial[int, int]()
	b.ResetTimer()
	benchmarkQueue(b, h, keys)
}

func BenchmarkBinomialRand_10000(b *testing.B) {
	b.ReportAllocs()
	keys := uniformRand(0, benchmarkInputSize)
	h := pqueue.NewBinomial[int, int]()
	b.ResetTimer()
	benchmarkQueue(b, h, keys)
}

func BenchmarkMeldableDup_10000(b *testing.B) {
	b.ReportAllocs()
	keys := make([]int, benchmarkInputSize)
	h := pqueue.NewMeldable[int, int]()
	b.ResetTimer()
	benchmarkQueue(b, h, keys)
}

func BenchmarkMeldableRand_10000(b *testing.B) {
	b.ReportAllocs()
	keys := uniformRand(0, benchmarkInputSize)
	h := pqueue.NewMeldable[int, int]()
	b.ResetTimer()
	benchmarkQueue(b, h, keys)
}
