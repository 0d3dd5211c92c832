// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package phare

import (
	"errors"
	"fmt"
)

// Statistics tracks per-link frame extraction counters. Corrupted frames are
// dropped silently on the hot path, so these counters are the only
// observability into how a link is behaving.
type Statistics struct {
	ValidFrames   uint64
	CRCErrors     uint64
	FramingErrors uint64 // escape, delimiter, size and truncation faults
	Resyncs       uint64 // stale frame starts abandoned for a newer one
	SkippedBytes  uint64 // inter-frame junk discarded while seeking a start
}

// recordDecode classifies the outcome of one consumed frame window.
func (s *Statistics) recordDecode(err error) {
	switch {
	case err == nil:
		s.ValidFrames++
	case errors.Is(err, ErrCRCMismatch):
		s.CRCErrors++
	default:
		s.FramingErrors++
	}
}

// TotalFrames returns the number of frame windows consumed, valid or not.
func (s *Statistics) TotalFrames() uint64 {
	return s.ValidFrames + s.CRCErrors + s.FramingErrors
}

// String returns a formatted summary.
func (s *Statistics) String() string {
	total := s.TotalFrames()

	var validPercent float64
	if total > 0 {
		validPercent = float64(s.ValidFrames) * 100.0 / float64(total)
	}

	result := "=== Link Statistics ===\n"
	result += fmt.Sprintf("Frames Consumed: %8d\n", total)
	result += fmt.Sprintf("Valid Frames:    %8d (%.1f%%)\n", s.ValidFrames, validPercent)
	if s.CRCErrors > 0 {
		result += fmt.Sprintf("CRC Errors:      %8d\n", s.CRCErrors)
	}
	if s.FramingErrors > 0 {
		result += fmt.Sprintf("Framing Errors:  %8d\n", s.FramingErrors)
	}
	if s.Resyncs > 0 {
		result += fmt.Sprintf("Resyncs:         %8d\n", s.Resyncs)
	}
	if s.SkippedBytes > 0 {
		result += fmt.Sprintf("Skipped Bytes:   %8d\n", s.SkippedBytes)
	}
	result += "=======================\n"

	return result
}
