// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package phare

import (
	"fmt"
	"strings"
)

// FormatFrame formats a frame into a single human-readable log line.
func FormatFrame(f *Frame) string {
	return fmt.Sprintf("%3d -> %3d  len=%-4d  %s",
		f.Sender, f.Receiver, len(f.Data), FormatPayload(f.Data))
}

// FormatPayload renders a payload for display. Command payloads are ASCII
// text, so printable runs are shown verbatim and everything else as \xNN.
func FormatPayload(data []byte) string {
	if len(data) == 0 {
		return `""`
	}

	var b strings.Builder
	b.WriteByte('"')
	for _, c := range data {
		if c >= 0x20 && c < 0x7F && c != '"' && c != '\\' {
			b.WriteByte(c)
		} else {
			fmt.Fprintf(&b, `\x%02X`, c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
