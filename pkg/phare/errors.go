// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package phare

import "errors"

// Serialization errors
var (
	// ErrFrameTooLong reports a payload longer than FrameDataMaxSize.
	ErrFrameTooLong = errors.New("frame payload exceeds maximum size")

	// ErrBufferTooSmall reports a destination container that filled up
	// mid-serialization. Partial output is undefined; callers must discard it.
	ErrBufferTooSmall = errors.New("destination buffer too small for serialized frame")
)

// Deserialization errors
var (
	// ErrUnexpectedEOF reports input that ended before the next field could
	// be read.
	ErrUnexpectedEOF = errors.New("unexpected end of frame data")

	// ErrInvalidStartByte reports input that does not begin with BeginByte.
	ErrInvalidStartByte = errors.New("invalid frame start byte")

	// ErrInvalidEndByte reports input that does not end with EndByte.
	ErrInvalidEndByte = errors.New("invalid frame end byte")

	// ErrDataTooBig reports a declared payload length exceeding
	// FrameDataMaxSize, or a decoded body that would not fit a legal frame.
	ErrDataTooBig = errors.New("frame data exceeds maximum size")

	// ErrInvalidEscape reports an escape byte followed by an unrecognized
	// code. Bytes were likely dropped by the underlying connection.
	ErrInvalidEscape = errors.New("invalid escape sequence")

	// ErrInvalidByte reports a bare begin or end byte inside a frame body.
	// These must always be escaped; a bare occurrence means upstream loss.
	ErrInvalidByte = errors.New("unescaped framing byte inside frame body")

	// ErrExpectedEOF reports trailing bytes after all declared fields were
	// consumed. Internal consistency fault; should not occur on well-formed
	// input.
	ErrExpectedEOF = errors.New("trailing bytes after frame fields")

	// ErrCRCMismatch reports a structurally valid frame whose checksum
	// disagrees with its contents. The payload must be treated as corrupt.
	ErrCRCMismatch = errors.New("crc32 mismatch")
)
