// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/Thermoquad/phare/pkg/phare"
)

var (
	monitorStatsInterval int
	monitorCapturePath   string
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Display decoded frame traffic in human-readable format",
	Long: `Continuously decode and display Phare frames as they arrive.

Each valid frame is printed with a timestamp, its addressing, and its
payload. Corrupted or malformed frames are dropped by the extractor and
show up in the link statistics, printed every --stats seconds.

With --capture, every valid frame is also appended to a CBOR capture file
that can be replayed later with 'phare capture'.

Supports both serial and WebSocket connections.`,
	RunE: runMonitor,
}

func init() {
	monitorCmd.Flags().IntVar(&monitorStatsInterval, "stats", 0, "Print link statistics every N seconds (0 disables)")
	monitorCmd.Flags().StringVar(&monitorCapturePath, "capture", "", "Append observed frames to a CBOR capture file")
	rootCmd.AddCommand(monitorCmd)
}

func runMonitor(cmd *cobra.Command, args []string) error {
	conn, connInfo, err := openConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	var capture *captureWriter
	if monitorCapturePath != "" {
		capture, err = newCaptureWriter(monitorCapturePath)
		if err != nil {
			return err
		}
		defer capture.Close()
	}

	fmt.Printf("Phare - Frame Monitor\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Press Ctrl+C to exit\n\n")

	fr := newFrameReader(conn)

	var nextStats time.Time
	if monitorStatsInterval > 0 {
		nextStats = time.Now().Add(time.Duration(monitorStatsInterval) * time.Second)
	}

	for {
		if err := fr.readChunk(); err != nil {
			if err == ErrConnectionClosed {
				log.Printf("Connection closed")
				return nil
			}
			log.Printf("Read error: %v", err)
			continue
		}

		for _, frame := range fr.drain() {
			now := time.Now()
			fmt.Printf("[%s] %s\n", now.Format("15:04:05.000"), phare.FormatFrame(frame))

			if capture != nil {
				if err := capture.record(now, frame); err != nil {
					log.Printf("Capture write error: %v", err)
				}
			}
		}

		if monitorStatsInterval > 0 && time.Now().After(nextStats) {
			stats := fr.stats()
			fmt.Print(stats.String())
			nextStats = time.Now().Add(time.Duration(monitorStatsInterval) * time.Second)
		}
	}
}
