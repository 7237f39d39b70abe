package clock

import (
	"sync"
	"time"
)

// Manual is a deterministic Clock and Ticker for tests. Time only moves on
// Advance, which fires the tick callback once per elapsed interval on the
// caller's goroutine.
type Manual struct {
	mu       sync.Mutex
	now      time.Time
	interval time.Duration
	onTick   func()
	elapsed  time.Duration
	running  bool
	starts   int
}

func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) Start(interval time.Duration, onTick func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interval = interval
	m.onTick = onTick
	m.elapsed = 0
	m.running = true
	m.starts++
}

func (m *Manual) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.running = false
	m.onTick = nil
}

// Running reports whether tick delivery is active.
func (m *Manual) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// Starts counts calls to Start.
func (m *Manual) Starts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.starts
}

// Set moves the clock without firing ticks.
func (m *Manual) Set(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// Advance moves time forward by d, firing a tick for every full interval.
// A callback that stops the ticker ends delivery for the rest of d.
func (m *Manual) Advance(d time.Duration) {
	step := time.Second
	m.mu.Lock()
	if m.running && m.interval > 0 {
		step = m.interval
	}
	m.mu.Unlock()

	for d > 0 {
		chunk := step
		if d < chunk {
			chunk = d
		}
		d -= chunk

		m.mu.Lock()
		m.now = m.now.Add(chunk)
		var fire func()
		if m.running && m.interval > 0 {
			m.elapsed += chunk
			if m.elapsed >= m.interval {
				m.elapsed -= m.interval
				fire = m.onTick
			}
		}
		m.mu.Unlock()

		if fire != nil {
			fire()
		}
	}
}

// Ticks advances by n whole intervals (one second when stopped).
func (m *Manual) Ticks(n int) {
	m.mu.Lock()
	step := time.Second
	if m.interval > 0 {
		step = m.interval
	}
	m.mu.Unlock()
	m.Advance(time.Duration(n) * step)
}
