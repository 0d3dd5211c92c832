// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package phare

import "testing"

func TestFixedVec_PushPop(t *testing.T) {
	v := NewFixedVec[byte](4)

	if v.Len() != 0 {
		t.Errorf("New vector should be empty, got len %d", v.Len())
	}
	if v.Cap() != 4 {
		t.Errorf("Cap should be 4, got %d", v.Cap())
	}

	for i := byte(0); i < 4; i++ {
		if !v.Push(i) {
			t.Fatalf("Push %d should succeed", i)
		}
	}
	if v.Push(99) {
		t.Error("Push into full vector should be rejected")
	}
	if v.Len() != 4 {
		t.Errorf("Len should be 4 after rejected push, got %d", v.Len())
	}

	for i := byte(3); ; i-- {
		val, ok := v.Pop()
		if !ok {
			t.Fatal("Pop from non-empty vector should succeed")
		}
		if val != i {
			t.Errorf("Pop returned %d, expected %d", val, i)
		}
		if i == 0 {
			break
		}
	}

	if _, ok := v.Pop(); ok {
		t.Error("Pop from empty vector should report false")
	}
}

func TestFixedVec_PushSlice(t *testing.T) {
	v := NewFixedVec[byte](5)

	n := v.PushSlice([]byte{1, 2, 3})
	if n != 3 {
		t.Errorf("PushSlice accepted %d, expected 3", n)
	}

	// Only two slots remain; the rest is dropped.
	n = v.PushSlice([]byte{4, 5, 6, 7})
	if n != 2 {
		t.Errorf("PushSlice accepted %d, expected 2", n)
	}
	if v.Len() != 5 {
		t.Errorf("Len should be 5, got %d", v.Len())
	}

	got := v.Slice()
	want := []byte{1, 2, 3, 4, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Slice()[%d] = %d, expected %d", i, got[i], want[i])
		}
	}
}

func TestFixedVec_Clear(t *testing.T) {
	v := NewFixedVec[int](3)
	v.Push(10)
	v.Push(20)

	v.Clear()

	if v.Len() != 0 {
		t.Errorf("Len should be 0 after Clear, got %d", v.Len())
	}
	if !v.Push(30) {
		t.Error("Push should succeed after Clear")
	}
	if got := v.Slice()[0]; got != 30 {
		t.Errorf("First element after Clear should be 30, got %d", got)
	}
}

func TestFixedVec_ZeroCapacity(t *testing.T) {
	v := NewFixedVec[byte](0)
	if v.Push(1) {
		t.Error("Push into zero-capacity vector should be rejected")
	}
	if n := v.PushSlice([]byte{1, 2}); n != 0 {
		t.Errorf("PushSlice into zero-capacity vector accepted %d, expected 0", n)
	}
}
