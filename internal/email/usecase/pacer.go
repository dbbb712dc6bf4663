package usecase

import (
	"sync"
	"time"
)

// Pacer spaces out successive sync passes so third-party mail servers are
// not hit in bursts. Wait blocks until the next pacing token is available.
type Pacer interface {
	Wait()
}

// intervalPacer hands out one token per interval. The first token is free.
type intervalPacer struct {
	interval time.Duration

	mu   sync.Mutex
	last time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewIntervalPacer creates a pacer releasing one token per interval.
func NewIntervalPacer(interval time.Duration) Pacer {
	return &intervalPacer{
		interval: interval,
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

func (p *intervalPacer) Wait() {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if !p.last.IsZero() {
		if wait := p.interval - now.Sub(p.last); wait > 0 {
			p.sleep(wait)
			now = now.Add(wait)
		}
	}
	p.last = now
}
