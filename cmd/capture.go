// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/spf13/cobra"

	"github.com/Thermoquad/phare/pkg/phare"
)

// captureRecord is one observed frame in a capture file. Files are a plain
// CBOR sequence of these records, integer-keyed to keep them compact.
type captureRecord struct {
	UnixMilli int64  `cbor:"1,keyasint"`
	Sender    uint8  `cbor:"2,keyasint"`
	Receiver  uint8  `cbor:"3,keyasint"`
	Payload   []byte `cbor:"4,keyasint"`
}

// captureWriter appends frame records to a capture file.
type captureWriter struct {
	f   *os.File
	enc *cbor.Encoder
}

func newCaptureWriter(path string) (*captureWriter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open capture file: %w", err)
	}
	return &captureWriter{f: f, enc: cbor.NewEncoder(f)}, nil
}

func (w *captureWriter) record(at time.Time, frame *phare.Frame) error {
	return w.enc.Encode(captureRecord{
		UnixMilli: at.UnixMilli(),
		Sender:    frame.Sender,
		Receiver:  frame.Receiver,
		Payload:   frame.Data,
	})
}

func (w *captureWriter) Close() error {
	return w.f.Close()
}

var captureCmd = &cobra.Command{
	Use:   "capture <file>",
	Short: "Print the frames stored in a capture file",
	Long: `Decode a CBOR capture file written by 'phare monitor --capture' and print
its frames in the same format the monitor uses.`,
	Args: cobra.ExactArgs(1),
	RunE: runCapture,
}

func init() {
	rootCmd.AddCommand(captureCmd)
}

func runCapture(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	dec := cbor.NewDecoder(f)
	count := 0
	for {
		var rec captureRecord
		if err := dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("capture file corrupt after %d records: %w", count, err)
		}

		frame := &phare.Frame{Sender: rec.Sender, Receiver: rec.Receiver, Data: rec.Payload}
		at := time.UnixMilli(rec.UnixMilli)
		fmt.Printf("[%s] %s\n", at.Format("15:04:05.000"), phare.FormatFrame(frame))
		count++
	}

	fmt.Printf("\n%d frames\n", count)
	return nil
}
