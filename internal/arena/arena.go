// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package arena defines an allocation Arena with compressed pointers.
//
// Values allocated on an [Arena] are addressed by a 4-byte [Pointer] instead
// of an 8-byte machine pointer, which halves the size of any structure that
// holds many cross-references into the same arena. Allocated values are never
// moved, so a *T obtained from [Arena.Deref] remains valid for the lifetime
// of the arena.
package arena

import (
	"fmt"
	"math/bits"
	"strings"
)

// blockMinLenShift is the log2 of the size of the smallest block in an Arena.
const (
	blockMinLenShift = 4
	blockMinLen      = 1 << blockMinLenShift
)

// Pointer is a compressed arena pointer.
//
// It cannot be dereferenced directly; see [Arena.Deref]. The pointer value is
// one plus the number of elements allocated on the arena before it.
//
// The zero value is nil.
type Pointer[T any] uint32

// Nil returns whether this pointer is nil.
func (p Pointer[T]) Nil() bool {
	return p == 0
}

// Arena is a slice-like allocator whose values are addressed by compressed
// pointers and are guaranteed never to move once allocated.
//
// It maintains a table of exponentially-growing blocks that mimics the
// resizing behavior of an ordinary slice without ever reallocating a block.
// Lookup remains O(1), at the cost of two pointer loads instead of one.
//
// A zero Arena[T] is empty and ready to use.
type Arena[T any] struct {
	// Invariants:
	// 1. cap(table[0]) == blockMinLen.
	// 2. cap(table[n]) == 2*cap(table[n-1]).
	// 3. cap(table[n]) == len(table[n]) for n < len(table)-1.
	//
	// These invariants are what make O(1) lookup possible.
	table [][]T
}

// New allocates a new value on the arena and returns its pointer.
func (a *Arena[T]) New(value T) Pointer[T] {
	if a.table == nil {
		a.table = [][]T{make([]T, 0, blockMinLen)}
	}

	last := &a.table[len(a.table)-1]
	if len(*last) == cap(*last) {
		a.table = append(a.table, make([]T, 0, 2*cap(*last)))
		last = &a.table[len(a.table)-1]
	}

	*last = append(*last, value)
	return Pointer[T](a.Len())
}

// Deref returns the value that p points to.
//
// p must have been returned by a.New, otherwise this will return an arbitrary
// value or panic. Dereferencing a nil pointer panics.
func (a *Arena[T]) Deref(p Pointer[T]) *T {
	if p.Nil() {
		a = nil // Trigger an ordinary nil dereference on purpose.
	}
	block, idx := a.coordinates(int(p) - 1)
	return &a.table[block][idx]
}

// Len returns the number of values allocated on this arena so far.
func (a *Arena[T]) Len() int {
	if len(a.table) == 0 {
		return 0
	}

	// Only the last block can be partially filled.
	return a.lenOfFirstNBlocks(len(a.table)-1) + len(a.table[len(a.table)-1])
}

// String implements [fmt.Stringer].
//
// The boundaries between the underlying blocks are made visible, which the
// tests use to check the growth pattern.
func (a *Arena[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, block := range a.table {
		if i != 0 {
			b.WriteByte('|')
		}
		for j, v := range block {
			if j != 0 {
				b.WriteByte(' ')
			}
			fmt.Fprint(&b, v)
		}
	}
	b.WriteByte(']')
	return b.String()
}

// lenOfNthBlock returns the capacity of the nth block, even if it isn't
// allocated yet.
func (*Arena[T]) lenOfNthBlock(n int) int {
	return blockMinLen << n
}

// lenOfFirstNBlocks returns the total capacity of the first n blocks.
func (a *Arena[T]) lenOfFirstNBlocks(n int) int {
	// 2^m + 2^(m+1) + ... + 2^n == 2^(n+1) - 2^m, so the sum of
	// lenOfNthBlock(i) for i in [0, n) telescopes to the following.
	return max(0, a.lenOfNthBlock(n)-a.lenOfNthBlock(0))
}

// coordinates converts an index into a (block, offset) pair, bounds-checking
// along the way.
func (a *Arena[T]) coordinates(idx int) (int, int) {
	if idx >= a.Len() || idx < 0 {
		panic(fmt.Sprintf("arena: pointer out of range: %#x", idx))
	}

	// With blockMinLenShift == s, block n starts at cumulative index
	// (2^n - 1) << s. Adding blockMinLen (1 << s) to an index therefore
	// lands it in the half-open range [2^n << s, 2^(n+1) << s) exactly when
	// it belongs to block n, so the high bit position of idx+blockMinLen
	// identifies the block directly.
	block := bits.UintSize - bits.LeadingZeros(uint(idx)+blockMinLen)
	block -= blockMinLenShift + 1

	// The offset within the block is whatever is left over after the
	// blocks before it.
	idx -= a.lenOfFirstNBlocks(block)

	return block, idx
}
