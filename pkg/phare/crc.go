// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package phare

// The checksum is a non-reflected CRC32 (polynomial 0x04C11DB7, MSB-first,
// seed 0xFFFFFFFF, no final XOR) computed over the frame fields zero-padded
// to a 4-byte multiple. hash/crc32 only offers bit-reflected table variants,
// so the shift loop is written out here.

// crcUpdate folds a single byte into a running CRC32 value.
func crcUpdate(crc uint32, b byte) uint32 {
	crc ^= uint32(b) << 24
	for i := 0; i < 8; i++ {
		msb := crc >> 31
		crc <<= 1
		crc ^= (0 - msb) & crcPolynomial
	}
	return crc
}

// crcBytes folds a byte slice into a running CRC32 value.
func crcBytes(crc uint32, data []byte) uint32 {
	for _, b := range data {
		crc = crcUpdate(crc, b)
	}
	return crc
}

// CRC32 computes the frame's checksum over sender, receiver, the big-endian
// payload length, and the payload, zero-padded to a 4-byte multiple. The
// padding is purely a computation convenience and never hits the wire.
func (f *Frame) CRC32() uint32 {
	dataLen := len(f.Data)

	crc := crcBytes(crcInitial, []byte{
		f.Sender,
		f.Receiver,
		byte(dataLen >> 8),
		byte(dataLen),
	})
	crc = crcBytes(crc, f.Data)

	// 4 header bytes are already aligned, so only the payload length matters.
	for pad := (4 - dataLen%4) % 4; pad > 0; pad-- {
		crc = crcUpdate(crc, 0)
	}

	return crc
}
