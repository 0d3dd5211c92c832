// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package phare

import "sync"

// RingBuffer is a fixed-capacity byte ring with independent producer (head)
// and consumer (tail) cursors. It is the hand-off point between the byte
// source feeding a link (a receive interrupt, a reader goroutine) and the
// consumer scanning for frames.
//
// The contract is single-producer/single-consumer: exactly one context
// pushes and exactly one pops. Index manipulation happens inside an internal
// critical section, so neither side ever observes a half-updated cursor.
// One slot is sacrificed to distinguish full from empty: a ring constructed
// with capacity C holds at most C-1 bytes.
type RingBuffer struct {
	mu   sync.Mutex
	buf  []byte
	head int // next write slot, producer-owned
	tail int // next read slot, consumer-owned
}

// NewRingBuffer creates a ring buffer with the given slot count.
func NewRingBuffer(capacity int) *RingBuffer {
	if capacity < 2 {
		capacity = 2
	}
	return &RingBuffer{buf: make([]byte, capacity)}
}

// TryPush appends b and reports whether it was accepted. A false return
// means the buffer is full; nothing is overwritten.
func (r *RingBuffer) TryPush(b byte) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := (r.head + 1) % len(r.buf)
	if next == r.tail {
		return false
	}
	r.buf[r.head] = b
	r.head = next
	return true
}

// PushOverwrite appends b, evicting the oldest byte when the buffer is full.
// This is the receive-overrun policy: availability of fresh bytes wins over
// completeness of old ones. Only the producer side may call it.
func (r *RingBuffer) PushOverwrite(b byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.buf[r.head] = b
	r.head = (r.head + 1) % len(r.buf)
	if r.head == r.tail {
		r.tail = (r.tail + 1) % len(r.buf)
	}
}

// TryPop removes and returns the oldest byte. The second result is false
// when the buffer is empty.
func (r *RingBuffer) TryPop() (byte, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.tail == r.head {
		return 0, false
	}
	b := r.buf[r.tail]
	r.tail = (r.tail + 1) % len(r.buf)
	return b, true
}

// Len returns the number of occupied bytes.
func (r *RingBuffer) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lenLocked()
}

// Cap returns the total slot count. Usable capacity is one less.
func (r *RingBuffer) Cap() int {
	return len(r.buf)
}

func (r *RingBuffer) lenLocked() int {
	if r.head >= r.tail {
		return r.head - r.tail
	}
	return len(r.buf) - r.tail + r.head
}
