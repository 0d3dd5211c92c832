// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package pwmnode

import "sync"

// PWM abstracts the hardware timer driving the output. Compare values are
// raw timer counts, already scaled against the configured period; the
// command handlers own that conversion. Implementations are only ever called
// from command handlers, never from the codec or buffer layers.
type PWM interface {
	// Start begins generation with the given compare values, cycling
	// through them one per timer period.
	Start(compare []uint32)

	// Stop halts generation. The configured period is retained.
	Stop()

	// SetPeriod reprograms the timer period in raw counts.
	SetPeriod(period uint32)

	// Period returns the currently configured period in raw counts.
	// Implementations must never report zero; handlers divide by it.
	Period() uint32
}

// SimPWM is an in-memory PWM implementation backing tests and the host-side
// node emulator. It records what a real timer peripheral would be doing.
type SimPWM struct {
	mu      sync.Mutex
	period  uint32
	running bool
	compare []uint32
}

// NewSimPWM creates a simulated PWM with the given initial period.
func NewSimPWM(period uint32) *SimPWM {
	if period == 0 {
		period = 1
	}
	return &SimPWM{period: period}
}

// Start implements PWM.
func (s *SimPWM) Start(compare []uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = true
	s.compare = append(s.compare[:0], compare...)
}

// Stop implements PWM.
func (s *SimPWM) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
}

// SetPeriod implements PWM.
func (s *SimPWM) SetPeriod(period uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if period == 0 {
		period = 1
	}
	s.period = period
}

// Period implements PWM.
func (s *SimPWM) Period() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.period
}

// Running reports whether generation is active.
func (s *SimPWM) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Compare returns a copy of the compare values last passed to Start.
func (s *SimPWM) Compare() []uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]uint32, len(s.compare))
	copy(out, s.compare)
	return out
}
