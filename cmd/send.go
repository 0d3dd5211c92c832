// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Thermoquad/phare/pkg/phare"
)

var sendTimeout time.Duration

var sendCmd = &cobra.Command{
	Use:   "send <command> [args...]",
	Short: "Send one command to a node and print its response",
	Long: `Send a single text command to the target node and wait for the response.

The command and its arguments are joined with spaces into one frame payload,
addressed with --from/--to, and written to the connection. The first frame
addressed back from the node is printed; frames from or to other identities
are ignored while waiting.

Examples:
  phare send --port /dev/ttyUSB0 STATUS
  phare send --port /dev/ttyUSB0 SET_FREQ 1000
  phare send --port /dev/ttyUSB0 SET_DUTY_CYCLES 25 50 75`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSend,
}

func init() {
	sendCmd.Flags().DurationVar(&sendTimeout, "timeout", 2*time.Second, "How long to wait for the response")
	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, args []string) error {
	conn, _, err := openConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	frame := &phare.Frame{
		Sender:   hostID,
		Receiver: nodeID,
		Data:     []byte(strings.Join(args, " ")),
	}

	encoded, err := frame.Serialize()
	if err != nil {
		return fmt.Errorf("cannot serialize command: %w", err)
	}
	if _, err := conn.Write(encoded); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}

	resp, err := awaitResponse(conn, sendTimeout)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", resp.Data)
	return nil
}

// awaitResponse reads frames until one arrives from the target node
// addressed to us, or the timeout expires. The read loop runs in its own
// goroutine because serial reads have no deadline of their own.
func awaitResponse(conn Connection, timeout time.Duration) (*phare.Frame, error) {
	frameCh := make(chan *phare.Frame, 1)
	errCh := make(chan error, 1)

	go func() {
		fr := newFrameReader(conn)
		for {
			frame, err := fr.next()
			if err != nil {
				errCh <- err
				return
			}
			if frame.Sender == nodeID && frame.Receiver == hostID {
				frameCh <- frame
				return
			}
		}
	}()

	select {
	case frame := <-frameCh:
		return frame, nil
	case err := <-errCh:
		return nil, fmt.Errorf("connection failed while waiting for response: %w", err)
	case <-time.After(timeout):
		return nil, fmt.Errorf("no response from node %d within %s", nodeID, timeout)
	}
}
