// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package phare

// Extractor recovers complete frames from the raw byte stream accumulating
// in a RingBuffer. Each call to Next performs one finite, restartable scan:
//
//  1. Advance the consumer cursor to the first bare BeginByte, discarding
//     inter-frame junk.
//  2. Scan forward for a bare EndByte. Finding another BeginByte first
//     abandons the stale candidate and resynchronizes on the newer one.
//  3. Reaching head without an EndByte leaves the cursor at the BeginByte so
//     the scan resumes once more bytes arrive.
//  4. Otherwise the window is decoded and consumed exactly once — corrupted
//     frames are dropped, never retried.
//
// Bare begin/end bytes can only be true delimiters: every occurrence inside
// a valid body is escaped, so the scan never needs to decode ahead of time.
//
// The whole scan runs inside the ring's critical section. Next must only be
// called from the buffer's single consumer context.
type Extractor struct {
	rb    *RingBuffer
	stats Statistics
}

// NewExtractor creates an extractor draining rb.
func NewExtractor(rb *RingBuffer) *Extractor {
	return &Extractor{rb: rb}
}

// Next extracts at most one frame. The second result is false when no
// complete valid frame is currently available; calling Next in a loop until
// then drains every fully-received frame in the buffer.
func (x *Extractor) Next() (*Frame, bool) {
	rb := x.rb
	rb.mu.Lock()
	defer rb.mu.Unlock()

	size := len(rb.buf)

	// Step 1: skip to the next frame start.
	for rb.tail != rb.head && rb.buf[rb.tail] != BeginByte {
		rb.tail = (rb.tail + 1) % size
		x.stats.SkippedBytes++
	}
	if rb.tail == rb.head {
		return nil, false
	}

	// Step 2: find the matching end delimiter.
	idx := (rb.tail + 1) % size
	for idx != rb.head && rb.buf[idx] != EndByte {
		if rb.buf[idx] == BeginByte {
			// A fresh frame started before the old one completed. Abandon
			// the stale candidate and resynchronize on the newer start.
			rb.tail = idx
			x.stats.Resyncs++
			return nil, false
		}
		idx = (idx + 1) % size
	}

	// Step 3: frame still arriving, resume here next call.
	if idx == rb.head {
		return nil, false
	}

	// Step 4: decode and consume the window no matter the outcome.
	frame, err := deserializeRingLocked(rb, idx)
	rb.tail = (idx + 1) % size

	x.stats.recordDecode(err)
	if err != nil {
		return nil, false
	}
	return frame, true
}

// Stats returns a snapshot of the extractor's counters. Next and Stats must
// be called from the same consumer context.
func (x *Extractor) Stats() Statistics {
	return x.stats
}
