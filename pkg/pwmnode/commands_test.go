// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package pwmnode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdOnOff(t *testing.T) {
	dev, pwm := newTestDevice()
	d := NewDispatcher(dev)

	assert.Equal(t, RespPwmOn, run(t, d, "ON"))
	assert.True(t, dev.Generating())
	assert.True(t, pwm.Running())

	// Idempotent: a second ON changes nothing and still acknowledges.
	assert.Equal(t, RespPwmOn, run(t, d, "ON"))
	assert.True(t, dev.Generating())

	assert.Equal(t, RespPwmOff, run(t, d, "OFF"))
	assert.False(t, dev.Generating())
	assert.False(t, pwm.Running())

	assert.Equal(t, RespPwmOff, run(t, d, "OFF"))
	assert.False(t, dev.Generating())
}

func TestCmdSetFreq(t *testing.T) {
	dev, pwm := newTestDevice()
	d := NewDispatcher(dev)

	// 64 MHz clock / 1000 Hz = 64000 counts.
	assert.Equal(t, "FREQ_CHANGED 1000", run(t, d, "SET_FREQ 1000"))
	assert.Equal(t, uint32(64000), pwm.Period())
}

func TestCmdSetFreq_Invalid(t *testing.T) {
	dev, pwm := newTestDevice()
	d := NewDispatcher(dev)

	tests := []struct {
		name string
		line string
		want string
	}{
		{"zero frequency", "SET_FREQ 0", RespInvalidFrequency},
		{"above timer clock", "SET_FREQ 128000000", RespInvalidFrequency},
		{"not a number", "SET_FREQ fast", RespInvalidArgument},
		{"trailing garbage", "SET_FREQ 100x", RespInvalidArgument},
		{"negative", "SET_FREQ -5", RespInvalidArgument},
		{"overflow", "SET_FREQ 4294967296", RespInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(t, d, tt.line))
		})
	}

	// Rejections leave the timer untouched.
	assert.Equal(t, uint32(1000), pwm.Period())
}

func TestCmdSetFreq_RescalesDutyCycles(t *testing.T) {
	dev, pwm := newTestDevice()
	d := NewDispatcher(dev)

	// 50% of the initial 1000-count period.
	run(t, d, "SET_DUTY_CYCLES 50")
	run(t, d, "ON")
	require.Equal(t, []uint32{500}, pwm.Compare())

	// Changing the frequency must keep the percentage, not the raw count.
	assert.Equal(t, "FREQ_CHANGED 1000", run(t, d, "SET_FREQ 1000"))
	assert.Equal(t, uint32(64000), pwm.Period())
	assert.Equal(t, []uint32{32000}, pwm.Compare())

	// Generation was restored after the reconfiguration.
	assert.True(t, dev.Generating())
	assert.True(t, pwm.Running())
}

func TestCmdSetDutyCycles(t *testing.T) {
	dev, pwm := newTestDevice()
	d := NewDispatcher(dev)

	assert.Equal(t, "DUTY_CYCLES_CHANGED 25 50 75", run(t, d, "SET_DUTY_CYCLES 25 50 75"))
	assert.Equal(t, []uint8{25, 50, 75}, dev.DutyCycles())

	// Compare values are scaled against the current 1000-count period and
	// reach the timer on the next start.
	run(t, d, "ON")
	assert.Equal(t, []uint32{250, 500, 750}, pwm.Compare())
}

func TestCmdSetDutyCycles_WhileGenerating(t *testing.T) {
	dev, pwm := newTestDevice()
	d := NewDispatcher(dev)

	run(t, d, "ON")
	assert.Equal(t, "DUTY_CYCLES_CHANGED 10 90", run(t, d, "SET_DUTY_CYCLES 10 90"))

	// The new set is active immediately, generation never stays off.
	assert.Equal(t, []uint32{100, 900}, pwm.Compare())
	assert.True(t, pwm.Running())
}

func TestCmdSetDutyCycles_AllOrNothing(t *testing.T) {
	dev, _ := newTestDevice()
	d := NewDispatcher(dev)

	run(t, d, "SET_DUTY_CYCLES 25 50")

	// One bad value rejects the whole request; valid values before it must
	// not be applied.
	assert.Equal(t, RespInvalidDutyCycle, run(t, d, "SET_DUTY_CYCLES 50 150"))
	assert.Equal(t, []uint8{25, 50}, dev.DutyCycles())

	assert.Equal(t, RespInvalidArgument, run(t, d, "SET_DUTY_CYCLES 50 abc"))
	assert.Equal(t, []uint8{25, 50}, dev.DutyCycles())
}

func TestCmdSetDutyCycles_Boundaries(t *testing.T) {
	dev, _ := newTestDevice()
	d := NewDispatcher(dev)

	assert.Equal(t, "DUTY_CYCLES_CHANGED 0 100", run(t, d, "SET_DUTY_CYCLES 0 100"))
	assert.Equal(t, RespInvalidDutyCycle, run(t, d, "SET_DUTY_CYCLES 101"))
}

func TestCmdStatus_Initial(t *testing.T) {
	dev, _ := newTestDevice()
	d := NewDispatcher(dev)

	// Fresh device: off, 64 MHz / 1000 counts = 64000 Hz, one zero compare.
	assert.Equal(t, "STATUS_RESP 0 64000 0", run(t, d, "STATUS"))
}

func TestCmdStatus_ReflectsConfiguration(t *testing.T) {
	dev, _ := newTestDevice()
	d := NewDispatcher(dev)

	run(t, d, "SET_FREQ 2000")
	run(t, d, "SET_DUTY_CYCLES 25 50")
	run(t, d, "ON")

	assert.Equal(t, "STATUS_RESP 1 2000 25 50", run(t, d, "STATUS"))

	run(t, d, "OFF")
	assert.Equal(t, "STATUS_RESP 0 2000 25 50", run(t, d, "STATUS"))
}
