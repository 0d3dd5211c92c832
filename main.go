// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad
//
// Phare - framed serial PWM node tooling
//
// Host-side tool for talking to Phare PWM nodes: one-shot commands, line
// monitoring, an interactive control TUI, and a full node emulator.

package main

import (
	"os"

	"github.com/Thermoquad/phare/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
