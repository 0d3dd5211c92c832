// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"io"

	"github.com/Thermoquad/phare/pkg/phare"
)

// frameReader turns a connection's byte stream into frames by feeding reads
// through a receive ring and extractor, the same path a node uses. All
// methods must be called from a single goroutine.
type frameReader struct {
	conn io.Reader
	rx   *phare.RingBuffer
	ext  *phare.Extractor
	buf  []byte
}

func newFrameReader(conn io.Reader) *frameReader {
	rx := phare.NewRingBuffer(phare.FrameMaxSize * 4)
	return &frameReader{
		conn: conn,
		rx:   rx,
		ext:  phare.NewExtractor(rx),
		buf:  make([]byte, 256),
	}
}

// readChunk pulls one read's worth of bytes from the connection into the
// ring. Blocks until the connection delivers something or fails.
func (fr *frameReader) readChunk() error {
	n, err := fr.conn.Read(fr.buf)
	for _, b := range fr.buf[:n] {
		fr.rx.PushOverwrite(b)
	}
	return err
}

// drain extracts every complete frame currently buffered.
func (fr *frameReader) drain() []*phare.Frame {
	var frames []*phare.Frame
	for {
		frame, ok := fr.ext.Next()
		if !ok {
			return frames
		}
		frames = append(frames, frame)
	}
}

// next blocks until a complete valid frame arrives or the connection fails.
func (fr *frameReader) next() (*phare.Frame, error) {
	for {
		if frame, ok := fr.ext.Next(); ok {
			return frame, nil
		}
		if err := fr.readChunk(); err != nil {
			return nil, err
		}
	}
}

// stats returns the underlying extractor counters.
func (fr *frameReader) stats() phare.Statistics {
	return fr.ext.Stats()
}
