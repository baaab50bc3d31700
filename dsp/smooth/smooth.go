// Package smooth provides integer moving-average smoothing for raw control
// samples (potentiometer ADC readings).
package smooth

import (
	"errors"
	"fmt"
)

const (
	// DefaultWindow is the number of samples averaged once the buffer is full.
	DefaultWindow = 5
	// MaxWindow bounds the window so the running sum cannot overflow.
	MaxWindow = 1024
)

// ErrInvalidWindow is returned for a window outside [1, MaxWindow].
var ErrInvalidWindow = errors.New("smooth: window must be in [1, 1024]")

// MovingAverage is a circular moving average over uint16 samples.
//
// The running sum is kept in integer arithmetic: each update subtracts the
// sample being overwritten and adds the new one, so it never drifts. While
// the buffer is filling, the mean is taken over the samples seen so far
// rather than over the full window.
type MovingAverage struct {
	buffer   []uint16
	writePos int
	sum      uint32
	count    int
}

// New returns a moving average over window samples.
func New(window int) (*MovingAverage, error) {
	if window <= 0 || window > MaxWindow {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWindow, window)
	}

	return &MovingAverage{buffer: make([]uint16, window)}, nil
}

// Update pushes sample, evicts the oldest one once the window is full and
// returns the truncated integer mean of the retained samples.
func (m *MovingAverage) Update(sample uint16) uint16 {
	m.sum -= uint32(m.buffer[m.writePos])
	m.buffer[m.writePos] = sample
	m.sum += uint32(sample)

	m.writePos++
	if m.writePos >= len(m.buffer) {
		m.writePos = 0
	}

	if m.count < len(m.buffer) {
		m.count++
	}

	return uint16(m.sum / uint32(m.count))
}

// Mean returns the current mean without pushing a sample. It is 0 before
// the first update.
func (m *MovingAverage) Mean() uint16 {
	if m.count == 0 {
		return 0
	}

	return uint16(m.sum / uint32(m.count))
}

// Reset clears the history.
func (m *MovingAverage) Reset() {
	clear(m.buffer)
	m.writePos = 0
	m.sum = 0
	m.count = 0
}

// Len returns the window capacity.
func (m *MovingAverage) Len() int {
	return len(m.buffer)
}

// Count returns how many samples currently contribute to the mean.
func (m *MovingAverage) Count() int {
	return m.count
}
