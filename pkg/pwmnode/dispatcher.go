// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

// Package pwmnode implements the command side of a Phare PWM node: the
// dispatch table mapping text commands to handlers, the device state those
// handlers mutate, and the node loop tying frame extraction to command
// execution and response transmission.
package pwmnode

import "bytes"

// handlerFunc executes one command against the device and returns the
// response payload. Handlers never panic across this boundary; every
// failure becomes response text.
type handlerFunc func(dev *Device, args [][]byte) []byte

// commandEntry binds a command name to its handler and argument arity.
// minArgs and maxArgs bound the argument count inclusively, excluding the
// command name itself.
type commandEntry struct {
	name    string
	fn      handlerFunc
	minArgs int
	maxArgs int
}

// commandTable is the closed set of supported commands. It is never
// mutated after package initialization.
var commandTable = []commandEntry{
	{"ON", cmdPwmOn, 0, 0},
	{"OFF", cmdPwmOff, 0, 0},
	{"SET_FREQ", cmdSetFreq, 1, 1},
	{"SET_DUTY_CYCLES", cmdSetDutyCycles, 1, MaxDutyCycles},
	{"STATUS", cmdStatus, 0, 0},
}

// ParseCommand splits a frame payload into tokens on single ASCII spaces.
// Consecutive or trailing delimiters produce no empty tokens. The second
// result is false when the payload holds no tokens at all.
func ParseCommand(payload []byte) ([][]byte, bool) {
	var args [][]byte
	for _, tok := range bytes.Split(payload, []byte{' '}) {
		if len(tok) > 0 {
			args = append(args, tok)
		}
	}
	return args, len(args) > 0
}

// Dispatcher routes parsed commands to their handlers against one device.
type Dispatcher struct {
	dev *Device
}

// NewDispatcher creates a dispatcher for dev.
func NewDispatcher(dev *Device) *Dispatcher {
	return &Dispatcher{dev: dev}
}

// Execute runs the command named by args[0] and returns the response
// payload. Unknown names and out-of-range argument counts are answered with
// the matching error token; exactly one handler runs per call.
func (d *Dispatcher) Execute(args [][]byte) []byte {
	if len(args) == 0 {
		return []byte(RespUnknownCommand)
	}

	for i := range commandTable {
		entry := &commandTable[i]
		if string(args[0]) != entry.name {
			continue
		}

		n := len(args) - 1
		if n < entry.minArgs || n > entry.maxArgs {
			return []byte(RespInvalidArgument)
		}
		return entry.fn(d.dev, args)
	}

	return []byte(RespUnknownCommand)
}
