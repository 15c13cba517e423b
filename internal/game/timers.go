package game

import (
	"context"
	"sync"
	"time"
)

// Timer is a repeating callback owned by a session.
type Timer struct {
	Name     string
	Interval time.Duration
	Fire     func(ctx context.Context)
}

// timerSet runs one ticker goroutine per timer and reports fires by index on
// a single channel, so callbacks run on the consumer's goroutine only.
type timerSet struct {
	timers []Timer
	fired  chan int
	stop   chan struct{}
	wg     sync.WaitGroup
}

func startTimers(timers []Timer) *timerSet {
	ts := &timerSet{
		timers: timers,
		fired:  make(chan int),
		stop:   make(chan struct{}),
	}
	for i, t := range timers {
		ts.wg.Add(1)
		go ts.run(i, t.Interval)
	}
	return ts
}

func (ts *timerSet) run(index int, interval time.Duration) {
	defer ts.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			select {
			case ts.fired <- index:
			case <-ts.stop:
				return
			}
		case <-ts.stop:
			return
		}
	}
}

// C returns the fire channel. A nil set returns a nil channel, which blocks
// forever in a select.
func (ts *timerSet) C() <-chan int {
	if ts == nil {
		return nil
	}
	return ts.fired
}

// Timer returns the timer for a fired index.
func (ts *timerSet) Timer(index int) Timer {
	return ts.timers[index]
}

// Stop halts all tickers and waits for their goroutines. No fires are
// delivered after Stop returns.
func (ts *timerSet) Stop() {
	if ts == nil {
		return
	}
	close(ts.stop)
	ts.wg.Wait()
}
