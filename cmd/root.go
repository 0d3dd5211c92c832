// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Thermoquad/phare/pkg/pwmnode"
)

var (
	// Serial connection flags
	portName string
	baudRate int

	// WebSocket connection flags (remote serial bridges)
	wsURL         string
	wsUsername    string
	wsNoSSLVerify bool

	// Addressing flags
	hostID uint8
	nodeID uint8
)

var rootCmd = &cobra.Command{
	Use:   "phare",
	Short: "Phare PWM node control tool",
	Long: `Phare - control and monitoring tool for Phare PWM nodes.

Phare nodes generate a pulse-width-modulated output and are driven over a
single serial line with a framed, checksummed text-command protocol. This
tool sends one-shot commands, monitors frame traffic, provides an
interactive control TUI, and can emulate a full node for bench testing.

Connection modes:
  Serial:    --port /dev/ttyUSB0 [--baud 115200]
  WebSocket: --url ws://host/path [--username user]

For WebSocket authentication, the password is read from the PHARE_PASSWORD
environment variable, or prompted interactively if not set. The --password
flag is intentionally not provided to avoid leaking credentials in shell
history.`,
	Version: "1.2.0",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&portName, "port", "p", "", "Serial port device")
	rootCmd.PersistentFlags().IntVarP(&baudRate, "baud", "b", 115200, "Baud rate (serial only)")

	rootCmd.PersistentFlags().StringVarP(&wsURL, "url", "u", "", "WebSocket URL (ws:// or wss://)")
	rootCmd.PersistentFlags().StringVar(&wsUsername, "username", "", "Username for HTTP Basic auth")
	rootCmd.PersistentFlags().BoolVar(&wsNoSSLVerify, "no-ssl-verify", false, "Skip TLS certificate verification (wss:// only)")

	rootCmd.PersistentFlags().Uint8Var(&hostID, "from", 1, "Identity byte this tool sends as")
	rootCmd.PersistentFlags().Uint8Var(&nodeID, "to", pwmnode.DefaultLocalID, "Identity byte of the target node")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
