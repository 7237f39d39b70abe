// Package feedback implements the sound, haptic and notification
// collaborators for a terminal.
package feedback

import (
	"io"
	"sync"
)

// Bell rings the terminal bell. It never fails the caller.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

func (b *Bell) PlayStart() {
	b.ring(1)
}

func (b *Bell) PlayComplete() {
	b.ring(2)
}

func (b *Bell) ring(times int) {
	if b == nil || b.w == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := 0; i < times; i++ {
		_, _ = io.WriteString(b.w, "\a")
	}
}

// Nop stands in for haptics on devices without a vibration motor.
type Nop struct{}

func (Nop) PlayStart()    {}
func (Nop) PlayComplete() {}
