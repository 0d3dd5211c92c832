// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package phare

import "bytes"

// Frame is the protocol's atomic message unit.
//
// Wire representation (before escaping):
//
//	BEGIN | SENDER(1) | RECEIVER(1) | LEN(2,BE) | DATA(LEN) | CRC32(4,BE) | END
//
// Every field between BEGIN and END is escape-encoded on the wire so that
// bare BeginByte/EndByte values can only ever be delimiters. A Frame is a
// value owned by whichever scope constructed or decoded it; nothing is
// shared.
type Frame struct {
	Sender   byte
	Receiver byte
	Data     []byte
}

// SerializedLen returns the size of the frame once serialized, delimiters
// included but escaping not accounted for.
func (f *Frame) SerializedLen() int {
	return len(f.Data) + FrameMinSize
}

// Equal reports whether two frames carry the same addressing and payload.
func (f *Frame) Equal(other *Frame) bool {
	return f.Sender == other.Sender &&
		f.Receiver == other.Receiver &&
		bytes.Equal(f.Data, other.Data)
}
