// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package phare

// FixedVec is an append-only container with a capacity fixed at construction.
// It never allocates after construction and never grows; a push against a
// full vector is rejected rather than silently dropped, so callers that fill
// one element at a time can react per element. The codec uses byte vectors as
// staging areas during encode and decode.
type FixedVec[T any] struct {
	n   int
	buf []T
}

// NewFixedVec creates a FixedVec holding at most capacity elements.
func NewFixedVec[T any](capacity int) *FixedVec[T] {
	return &FixedVec[T]{buf: make([]T, capacity)}
}

// Push appends val and reports whether it was accepted. A false return means
// the vector is full; the caller still holds val and loses nothing.
func (v *FixedVec[T]) Push(val T) bool {
	if v.n >= len(v.buf) {
		return false
	}
	v.buf[v.n] = val
	v.n++
	return true
}

// Pop removes and returns the last element. The second result is false when
// the vector is empty.
func (v *FixedVec[T]) Pop() (T, bool) {
	if v.n == 0 {
		var zero T
		return zero, false
	}
	v.n--
	return v.buf[v.n], true
}

// PushSlice appends as many elements of vals as fit and returns the count
// accepted.
func (v *FixedVec[T]) PushSlice(vals []T) int {
	count := copy(v.buf[v.n:], vals)
	v.n += count
	return count
}

// Len returns the number of elements currently held.
func (v *FixedVec[T]) Len() int {
	return v.n
}

// Cap returns the fixed capacity.
func (v *FixedVec[T]) Cap() int {
	return len(v.buf)
}

// Clear resets the length to zero. Storage is not zeroed.
func (v *FixedVec[T]) Clear() {
	v.n = 0
}

// Slice returns a view of the current contents. The view aliases internal
// storage and is invalidated by the next Push, Pop, or Clear.
func (v *FixedVec[T]) Slice() []T {
	return v.buf[:v.n]
}
