// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package phare

import "testing"

func mustSerialize(t *testing.T, f *Frame) []byte {
	t.Helper()
	encoded, err := f.Serialize()
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}
	return encoded
}

func feed(rb *RingBuffer, data []byte) {
	for _, b := range data {
		rb.PushOverwrite(b)
	}
}

func TestExtractor_SingleFrame(t *testing.T) {
	rb := NewRingBuffer(256)
	x := NewExtractor(rb)

	want := &Frame{Sender: 1, Receiver: 100, Data: []byte("STATUS")}
	feed(rb, mustSerialize(t, want))

	got, ok := x.Next()
	if !ok {
		t.Fatal("Next should extract the frame")
	}
	if !got.Equal(want) {
		t.Errorf("Extracted frame mismatch: got %v, expected %v", got, want)
	}

	if _, ok := x.Next(); ok {
		t.Error("Next should report false once the buffer is drained")
	}

	stats := x.Stats()
	if stats.ValidFrames != 1 {
		t.Errorf("ValidFrames should be 1, got %d", stats.ValidFrames)
	}
}

func TestExtractor_SkipsJunkBeforeFrame(t *testing.T) {
	rb := NewRingBuffer(256)
	x := NewExtractor(rb)

	want := &Frame{Sender: 1, Receiver: 100, Data: []byte("ON")}
	feed(rb, []byte("noise"))
	feed(rb, mustSerialize(t, want))

	got, ok := x.Next()
	if !ok {
		t.Fatal("Next should extract the frame past the junk")
	}
	if !got.Equal(want) {
		t.Errorf("Extracted frame mismatch: got %v, expected %v", got, want)
	}

	stats := x.Stats()
	if stats.SkippedBytes != 5 {
		t.Errorf("SkippedBytes should be 5, got %d", stats.SkippedBytes)
	}
}

func TestExtractor_ResumesPartialFrame(t *testing.T) {
	rb := NewRingBuffer(256)
	x := NewExtractor(rb)

	want := &Frame{Sender: 1, Receiver: 100, Data: []byte("SET_FREQ 1000")}
	encoded := mustSerialize(t, want)

	feed(rb, encoded[:len(encoded)/2])
	if _, ok := x.Next(); ok {
		t.Fatal("Next should not extract a half-received frame")
	}

	feed(rb, encoded[len(encoded)/2:])
	got, ok := x.Next()
	if !ok {
		t.Fatal("Next should extract the frame once complete")
	}
	if !got.Equal(want) {
		t.Errorf("Extracted frame mismatch: got %v, expected %v", got, want)
	}
}

func TestExtractor_ResyncsOnNewStart(t *testing.T) {
	rb := NewRingBuffer(256)
	x := NewExtractor(rb)

	// A frame start whose remainder never arrived, then a complete frame.
	feed(rb, []byte{BeginByte, 'a', 'b', 'c'})
	want := &Frame{Sender: 1, Receiver: 100, Data: []byte("OFF")}
	feed(rb, mustSerialize(t, want))

	// First call abandons the stale candidate; second extracts the frame.
	if _, ok := x.Next(); ok {
		t.Fatal("First Next should abandon the stale start without a frame")
	}
	got, ok := x.Next()
	if !ok {
		t.Fatal("Second Next should extract the complete frame")
	}
	if !got.Equal(want) {
		t.Errorf("Extracted frame mismatch: got %v, expected %v", got, want)
	}

	stats := x.Stats()
	if stats.Resyncs != 1 {
		t.Errorf("Resyncs should be 1, got %d", stats.Resyncs)
	}
}

func TestExtractor_DropsCorruptedFrame(t *testing.T) {
	rb := NewRingBuffer(512)
	x := NewExtractor(rb)

	corrupt := mustSerialize(t, &Frame{Sender: 1, Receiver: 100, Data: []byte("TEST")})
	corrupt[5] ^= 0x01 // payload byte, stays an ordinary wire byte
	feed(rb, corrupt)

	want := &Frame{Sender: 1, Receiver: 100, Data: []byte("STATUS")}
	feed(rb, mustSerialize(t, want))

	// The corrupted window is consumed without a result, never retried.
	if _, ok := x.Next(); ok {
		t.Fatal("Next should drop the corrupted frame")
	}
	got, ok := x.Next()
	if !ok {
		t.Fatal("Next should extract the valid frame after the drop")
	}
	if !got.Equal(want) {
		t.Errorf("Extracted frame mismatch: got %v, expected %v", got, want)
	}

	stats := x.Stats()
	if stats.CRCErrors != 1 {
		t.Errorf("CRCErrors should be 1, got %d", stats.CRCErrors)
	}
	if stats.ValidFrames != 1 {
		t.Errorf("ValidFrames should be 1, got %d", stats.ValidFrames)
	}
}

func TestExtractor_DrainsMultipleFrames(t *testing.T) {
	rb := NewRingBuffer(512)
	x := NewExtractor(rb)

	frames := []*Frame{
		{Sender: 1, Receiver: 100, Data: []byte("ON")},
		{Sender: 1, Receiver: 100, Data: []byte("SET_DUTY_CYCLES 50")},
		{Sender: 100, Receiver: 1, Data: []byte("PWM_ON")},
	}
	for _, f := range frames {
		feed(rb, mustSerialize(t, f))
	}

	for i, want := range frames {
		got, ok := x.Next()
		if !ok {
			t.Fatalf("Next should extract frame %d", i)
		}
		if !got.Equal(want) {
			t.Errorf("Frame %d mismatch: got %v, expected %v", i, got, want)
		}
	}
	if _, ok := x.Next(); ok {
		t.Error("Next should report false after draining all frames")
	}
}

func TestExtractor_FrameSpansWrapAround(t *testing.T) {
	rb := NewRingBuffer(48)
	x := NewExtractor(rb)

	// Advance the cursors close to the end of storage, then feed a frame
	// whose bytes wrap past it.
	for i := 0; i < 40; i++ {
		rb.PushOverwrite('x')
	}
	if _, ok := x.Next(); ok {
		t.Fatal("Junk alone should not produce a frame")
	}

	want := &Frame{Sender: 1, Receiver: 100, Data: []byte("STATUS")}
	feed(rb, mustSerialize(t, want))

	got, ok := x.Next()
	if !ok {
		t.Fatal("Next should extract a frame spanning the wrap point")
	}
	if !got.Equal(want) {
		t.Errorf("Extracted frame mismatch: got %v, expected %v", got, want)
	}
}
