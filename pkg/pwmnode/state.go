// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package pwmnode

// MaxDutyCycles is the most duty-cycle values one SET_DUTY_CYCLES command
// may carry, bounded by what a single frame payload can hold.
const MaxDutyCycles = 312

// Device is the command execution context: the timer peripheral, its input
// clock, and the mutable generation state. It is constructed once at
// startup, mutated only inside command handlers, and read by status
// reporting — no other code touches it.
type Device struct {
	pwm        PWM
	timerClock uint32

	generating bool
	compare    []uint32 // raw compare values programmed into the timer
	userDuty   []uint8  // percentages as last accepted, kept for rescaling
}

// NewDevice creates a device around the given timer peripheral.
// timerClock is the timer input clock in Hz, used to convert between
// frequencies and raw periods.
func NewDevice(pwm PWM, timerClock uint32) *Device {
	return &Device{
		pwm:        pwm,
		timerClock: timerClock,
		compare:    []uint32{0},
	}
}

// Generating reports whether output generation is currently enabled.
func (d *Device) Generating() bool {
	return d.generating
}

// DutyCycles returns the percentages last accepted by SET_DUTY_CYCLES.
func (d *Device) DutyCycles() []uint8 {
	out := make([]uint8, len(d.userDuty))
	copy(out, d.userDuty)
	return out
}

func (d *Device) startPWM() {
	d.generating = true
	d.pwm.Start(d.compare)
}

func (d *Device) stopPWM() {
	d.generating = false
	d.pwm.Stop()
}
