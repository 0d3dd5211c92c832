// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package phare

import "encoding/binary"

// decodeByte decodes the next wire byte from data. It returns the decoded
// value and how many input bytes were consumed (1, or 2 for an escape pair).
func decodeByte(data []byte) (byte, int, error) {
	if len(data) == 0 {
		return 0, 0, ErrUnexpectedEOF
	}

	switch data[0] {
	case EscByte:
		if len(data) < 2 {
			return 0, 0, ErrUnexpectedEOF
		}
		for _, e := range escapeTable {
			if e[1] == data[1] {
				return e[0], 2, nil
			}
		}
		return 0, 0, ErrInvalidEscape

	case BeginByte, EndByte:
		// Framing bytes are always escaped inside a body. A bare one here
		// means the underlying connection dropped bytes.
		return 0, 0, ErrInvalidByte
	}

	return data[0], 1, nil
}

// Deserialize parses a frame from a complete encoded byte span, outer
// delimiters included. Error priority follows the checks: ErrUnexpectedEOF,
// ErrInvalidStartByte, ErrInvalidEndByte, then the per-byte decode errors,
// then the field-level errors up to ErrCRCMismatch.
func Deserialize(encoded []byte) (*Frame, error) {
	if len(encoded) < FrameMinSize {
		return nil, ErrUnexpectedEOF
	}
	if encoded[0] != BeginByte {
		return nil, ErrInvalidStartByte
	}
	if encoded[len(encoded)-1] != EndByte {
		return nil, ErrInvalidEndByte
	}

	decoded := NewFixedVec[byte](FrameMaxSize - 2)
	body := encoded[1 : len(encoded)-1]
	for len(body) > 0 {
		b, n, err := decodeByte(body)
		if err != nil {
			return nil, err
		}
		if !decoded.Push(b) {
			return nil, ErrDataTooBig
		}
		body = body[n:]
	}

	return parseDecoded(decoded.Slice())
}

// deserializeRingLocked parses a frame directly from the ring window
// [rb.tail, end], reading escape pairs lazily instead of linearizing the
// buffer first. The caller holds rb.mu, guarantees rb.buf[rb.tail] is
// BeginByte, and guarantees rb.buf[end] is an unescaped EndByte inside the
// occupied region, so the scan can never walk past head.
func deserializeRingLocked(rb *RingBuffer, end int) (*Frame, error) {
	size := len(rb.buf)
	decoded := NewFixedVec[byte](FrameMaxSize - 2)

	idx := (rb.tail + 1) % size
	for idx != end {
		// Two-byte window so escape pairs can be decoded in place. When the
		// pair straddles the end delimiter decodeByte rejects it, since
		// EndByte is not a valid escape code.
		window := [2]byte{rb.buf[idx], rb.buf[(idx+1)%size]}

		b, n, err := decodeByte(window[:])
		if err != nil {
			return nil, err
		}
		if !decoded.Push(b) {
			return nil, ErrDataTooBig
		}
		idx = (idx + n) % size
	}

	return parseDecoded(decoded.Slice())
}

// parseDecoded splits an unescaped frame body into fields and verifies the
// checksum.
func parseDecoded(decoded []byte) (*Frame, error) {
	if len(decoded) < fieldsOverhead {
		return nil, ErrUnexpectedEOF
	}

	sender := decoded[0]
	receiver := decoded[1]
	dataLen := int(binary.BigEndian.Uint16(decoded[2:4]))

	if dataLen > FrameDataMaxSize {
		return nil, ErrDataTooBig
	}
	if len(decoded) < fieldsOverhead+dataLen {
		return nil, ErrUnexpectedEOF
	}
	if len(decoded) > fieldsOverhead+dataLen {
		return nil, ErrExpectedEOF
	}

	data := make([]byte, dataLen)
	copy(data, decoded[4:4+dataLen])
	crc := binary.BigEndian.Uint32(decoded[4+dataLen:])

	frame := &Frame{
		Sender:   sender,
		Receiver: receiver,
		Data:     data,
	}
	if crc != frame.CRC32() {
		return nil, ErrCRCMismatch
	}

	return frame, nil
}
