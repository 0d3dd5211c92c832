// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package pwmnode

// Response tokens. The first word of every response payload is one of
// these; remote peers match on them to classify the outcome.
const (
	RespPwmOn             = "PWM_ON"
	RespPwmOff            = "PWM_OFF"
	RespFreqChanged       = "FREQ_CHANGED"
	RespDutyCyclesChanged = "DUTY_CYCLES_CHANGED"
	RespStatus            = "STATUS_RESP"

	RespUnknownCommand   = "UNKNOWN_COMMAND"
	RespInvalidArgument  = "INVALID_ARGUMENT"
	RespInvalidFrequency = "INVALID_FREQUENCY"
	RespInvalidDutyCycle = "INVALID_DUTY_CYCLE"
)
