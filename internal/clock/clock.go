// Package clock provides the time source and tick scheduler driving the timer.
package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

// Ticker delivers onTick callbacks at a fixed interval until stopped.
// Start on a running ticker restarts it; Stop on a stopped ticker does nothing.
type Ticker interface {
	Start(interval time.Duration, onTick func())
	Stop()
}

// Real is the wall clock backed by time.Ticker.
type Real struct {
	mu   sync.Mutex
	stop chan struct{}
}

func NewReal() *Real {
	return &Real{}
}

func (r *Real) Now() time.Time {
	return time.Now()
}

func (r *Real) Start(interval time.Duration, onTick func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopLocked()
	stop := make(chan struct{})
	r.stop = stop

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				select {
				case <-stop:
					return
				default:
				}
				onTick()
			}
		}
	}()
}

func (r *Real) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
}

func (r *Real) stopLocked() {
	if r.stop != nil {
		close(r.stop)
		r.stop = nil
	}
}
