// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/Thermoquad/phare/pkg/phare"
	"github.com/Thermoquad/phare/pkg/pwmnode"
)

var (
	nodeLocalID    uint8
	nodeTimerClock uint32
	nodeInitPeriod uint32
	nodeStatsEvery int
)

var nodeCmd = &cobra.Command{
	Use:   "node",
	Short: "Emulate a Phare PWM node on a serial line",
	Long: `Run a software PWM node against the connection, for bench testing hosts
without real hardware.

The emulator answers the full command set (ON, OFF, SET_FREQ,
SET_DUTY_CYCLES, STATUS) exactly like node firmware: bytes from the
connection land in a receive ring, a polling loop extracts frames and
dispatches commands, and responses are queued through a transmit ring
drained by a writer. Frames addressed to other identities are ignored.`,
	RunE: runNode,
}

func init() {
	nodeCmd.Flags().Uint8Var(&nodeLocalID, "id", pwmnode.DefaultLocalID, "Identity byte this node answers to")
	nodeCmd.Flags().Uint32Var(&nodeTimerClock, "clock", 64_000_000, "Timer input clock in Hz")
	nodeCmd.Flags().Uint32Var(&nodeInitPeriod, "period", 1000, "Initial timer period in raw counts")
	nodeCmd.Flags().IntVar(&nodeStatsEvery, "stats", 0, "Print link statistics every N seconds (0 disables)")
	rootCmd.AddCommand(nodeCmd)
}

func runNode(cmd *cobra.Command, args []string) error {
	conn, connInfo, err := openConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	// Transmit side mirrors the firmware: responses are enqueued into a tx
	// ring byte by byte, a writer drains it to the wire. Enqueue accepts
	// what fits and reports the count so the node retries the rest.
	txRing := phare.NewRingBuffer(phare.FrameMaxSize * 4)
	tx := pwmnode.TransmitterFunc(func(p []byte) int {
		accepted := 0
		for _, b := range p {
			if !txRing.TryPush(b) {
				break
			}
			accepted++
		}
		return accepted
	})

	pwm := pwmnode.NewSimPWM(nodeInitPeriod)
	dev := pwmnode.NewDevice(pwm, nodeTimerClock)
	node := pwmnode.NewNode(nodeLocalID, dev, tx)

	fmt.Printf("Phare - Node Emulator\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Identity: %d, timer clock: %d Hz\n", nodeLocalID, nodeTimerClock)
	fmt.Printf("Press Ctrl+C to exit\n\n")

	// Writer: drain the tx ring to the connection.
	go func() {
		out := make([]byte, 0, 256)
		for {
			out = out[:0]
			for len(out) < cap(out) {
				b, ok := txRing.TryPop()
				if !ok {
					break
				}
				out = append(out, b)
			}

			if len(out) == 0 {
				time.Sleep(time.Millisecond)
				continue
			}
			if _, err := conn.Write(out); err != nil {
				log.Printf("Write error: %v", err)
				return
			}
		}
	}()

	// Reader: the producer context, feeding the node's receive ring.
	readErr := make(chan error, 1)
	go func() {
		buf := make([]byte, 256)
		for {
			n, err := conn.Read(buf)
			if err != nil {
				readErr <- err
				return
			}
			node.Feed(buf[:n])
		}
	}()

	// Polling loop: the consumer context.
	var nextStats time.Time
	if nodeStatsEvery > 0 {
		nextStats = time.Now().Add(time.Duration(nodeStatsEvery) * time.Second)
	}

	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case err := <-readErr:
			if err == ErrConnectionClosed {
				log.Printf("Connection closed")
				return nil
			}
			return fmt.Errorf("read failed: %w", err)

		case <-ticker.C:
			node.HandlePending()

			if nodeStatsEvery > 0 && time.Now().After(nextStats) {
				stats := node.Stats()
				fmt.Print(stats.String())
				nextStats = time.Now().Add(time.Duration(nodeStatsEvery) * time.Second)
			}
		}
	}
}
