// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package pwmnode

import (
	"fmt"
	"strconv"
)

// parseUint32 parses an unsigned decimal argument. The whole token must be
// consumed; "100x" is rejected, not truncated.
func parseUint32(arg []byte) (uint32, error) {
	v, err := strconv.ParseUint(string(arg), 10, 32)
	return uint32(v), err
}

// cmdPwmOn handles ON: enables output generation.
func cmdPwmOn(dev *Device, _ [][]byte) []byte {
	if !dev.generating {
		dev.startPWM()
	}
	return []byte(RespPwmOn)
}

// cmdPwmOff handles OFF: disables output generation.
func cmdPwmOff(dev *Device, _ [][]byte) []byte {
	if dev.generating {
		dev.stopPWM()
	}
	return []byte(RespPwmOff)
}

// cmdSetFreq handles SET_FREQ <hz>: reprograms the timer period and rescales
// the stored compare values so the configured duty-cycle percentages hold at
// the new frequency. Generation is paused around the reconfiguration and
// restored afterwards.
func cmdSetFreq(dev *Device, args [][]byte) []byte {
	hz, err := parseUint32(args[1])
	if err != nil {
		return []byte(RespInvalidArgument)
	}
	if hz == 0 {
		return []byte(RespInvalidFrequency)
	}

	period := dev.timerClock / hz
	if period == 0 {
		// Requested frequency above the timer clock: divisor degenerates.
		return []byte(RespInvalidFrequency)
	}

	restore := dev.generating
	if restore {
		dev.stopPWM()
	}

	dev.pwm.SetPeriod(period)
	for i, pct := range dev.userDuty {
		dev.compare[i] = uint32(uint64(pct) * uint64(period) / 100)
	}

	if restore {
		dev.startPWM()
	}

	return fmt.Appendf(nil, "%s %d", RespFreqChanged, hz)
}

// cmdSetDutyCycles handles SET_DUTY_CYCLES <pct>...: replaces the whole
// duty-cycle set. All-or-nothing: one bad value rejects the entire request
// and leaves prior state untouched.
func cmdSetDutyCycles(dev *Device, args [][]byte) []byte {
	period := dev.pwm.Period()

	newUser := make([]uint8, 0, len(args)-1)
	newCompare := make([]uint32, 0, len(args)-1)
	for _, arg := range args[1:] {
		pct, err := parseUint32(arg)
		if err != nil {
			return []byte(RespInvalidArgument)
		}
		if pct > 100 {
			return []byte(RespInvalidDutyCycle)
		}
		newUser = append(newUser, uint8(pct))
		newCompare = append(newCompare, uint32(uint64(pct)*uint64(period)/100))
	}

	if dev.generating {
		dev.stopPWM()
		dev.compare = newCompare
		dev.userDuty = newUser
		dev.startPWM()
	} else {
		dev.compare = newCompare
		dev.userDuty = newUser
	}

	resp := []byte(RespDutyCyclesChanged)
	for _, arg := range args[1:] {
		resp = append(resp, ' ')
		resp = append(resp, arg...)
	}
	return resp
}

// cmdStatus handles STATUS: reports the generation flag, the current
// frequency, and every duty-cycle percentage, all recomputed from the
// hardware-side period so the report reflects what the timer actually runs.
func cmdStatus(dev *Device, _ [][]byte) []byte {
	period := dev.pwm.Period()

	generating := 0
	if dev.generating {
		generating = 1
	}
	resp := fmt.Appendf(nil, "%s %d %d", RespStatus, generating, dev.timerClock/period)

	for _, cnt := range dev.compare {
		resp = fmt.Appendf(resp, " %d", uint64(cnt)*100/uint64(period))
	}
	return resp
}
