// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

// Package phare implements the Phare serial framing protocol.
//
// Phare is a byte-oriented protocol for exchanging text commands between a
// host and an addressed node over a single serial line. Each frame carries a
// sender and receiver identity, a bounded payload, and a CRC32 checksum, all
// wrapped in escape-encoded delimiters so payload bytes can never collide
// with the framing. This package provides the frame codec, the bounded
// containers the codec stages data in, and the ring-buffer extractor that
// recovers frames from a raw receive stream.
package phare

// Protocol framing bytes
const (
	BeginByte = 0x28 // '('
	EndByte   = 0x29 // ')'
	EscByte   = 0x1B
)

// Escape codes. Each special byte is transmitted as {EscByte, code}.
const (
	EscCodeEsc   = 0x41
	EscCodeBegin = 0x42
	EscCodeEnd   = 0x43
)

// escapeTable maps bytes that must never appear bare inside a frame body to
// their escape codes. Kept as a table so encoder and decoder stay in sync.
var escapeTable = [3][2]byte{
	{EscByte, EscCodeEsc},
	{BeginByte, EscCodeBegin},
	{EndByte, EscCodeEnd},
}

// Frame size limits. Sizes are pre-encoding: escaping may up to double the
// number of bytes actually on the wire.
const (
	// FrameMaxSize is the upper bound on a serialized frame before escaping,
	// delimiters included.
	FrameMaxSize = 1280

	// FrameMinSize is the size of a serialized zero-payload frame:
	// BEGIN + sender + receiver + len16 + crc32 + END.
	FrameMinSize = 10

	// FrameDataMaxSize is the maximum payload length of a single frame.
	FrameDataMaxSize = FrameMaxSize - FrameMinSize
)

// CRC32 configuration: MSB-first 0x04C11DB7, seeded 0xFFFFFFFF, no final
// XOR. Input is zero-padded to a 4-byte multiple before hashing; the padding
// is a computation convenience and never transmitted.
const (
	crcPolynomial = 0x04C11DB7
	crcInitial    = 0xFFFFFFFF
)

// fieldsOverhead is the decoded size of the fixed fields surrounding the
// payload: sender(1) + receiver(1) + len(2) + crc(4).
const fieldsOverhead = 8
