// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package phare

// encodeByte appends b to out, replacing it with its {EscByte, code} pair
// when b collides with a framing byte. Returns false when out runs out of
// capacity; out then holds partial output the caller must discard.
func encodeByte(b byte, out *FixedVec[byte]) bool {
	for _, e := range escapeTable {
		if b == e[0] {
			return out.Push(EscByte) && out.Push(e[1])
		}
	}
	return out.Push(b)
}

// encodeBytes escape-encodes data into out.
func encodeBytes(data []byte, out *FixedVec[byte]) bool {
	for _, b := range data {
		if !encodeByte(b, out) {
			return false
		}
	}
	return true
}

// SerializeInto writes the frame's escaped wire representation into out.
// It fails with ErrFrameTooLong when the payload exceeds FrameDataMaxSize
// and with ErrBufferTooSmall when out fills up mid-write; in the latter case
// out holds undefined partial output and must be discarded.
func (f *Frame) SerializeInto(out *FixedVec[byte]) error {
	if len(f.Data) > FrameDataMaxSize {
		return ErrFrameTooLong
	}

	dataLen := len(f.Data)
	crc := f.CRC32()

	ok := out.Push(BeginByte)
	ok = ok && encodeBytes([]byte{f.Sender, f.Receiver, byte(dataLen >> 8), byte(dataLen)}, out)
	ok = ok && encodeBytes(f.Data, out)
	ok = ok && encodeBytes([]byte{byte(crc >> 24), byte(crc >> 16), byte(crc >> 8), byte(crc)}, out)
	ok = ok && out.Push(EndByte)

	if !ok {
		return ErrBufferTooSmall
	}
	return nil
}

// Serialize returns the frame's escaped wire representation as a fresh
// slice. Only ErrFrameTooLong is possible: the staging buffer is sized for
// the worst-case escaping of a maximum frame.
func (f *Frame) Serialize() ([]byte, error) {
	if len(f.Data) > FrameDataMaxSize {
		return nil, ErrFrameTooLong
	}

	// Every body byte may escape to two; delimiters never do.
	out := NewFixedVec[byte]((f.SerializedLen()-2)*2 + 2)
	if err := f.SerializeInto(out); err != nil {
		return nil, err
	}

	encoded := make([]byte, out.Len())
	copy(encoded, out.Slice())
	return encoded, nil
}
