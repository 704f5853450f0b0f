// This file is part of gslib.
//
// gslib is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gslib is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gslib.  If not, see <https://www.gnu.org/licenses/>.

package vsync

import (
	"sync/atomic"
	"time"

	"github.com/ps2homebrew/gslib/logger"
)

// Ticker is a Notifier that calls subscribers at a regular rate. Subscribers
// are called on the Ticker's own goroutine.
type Ticker struct {
	subscribers

	rate  chan time.Duration
	quit  chan bool
	done  chan bool
	count atomic.Int64
}

// period converts a rate in Hz to a duration. rates of zero or less are
// treated as 60Hz
func period(hz float32) time.Duration {
	if hz <= 0 {
		hz = 60
	}
	return time.Duration(float64(time.Second) / float64(hz))
}

// NewTicker is the preferred method of initialisation for the Ticker type.
// The ticker starts immediately. It should be stopped with Stop().
func NewTicker(hz float32) *Ticker {
	tck := &Ticker{
		rate: make(chan time.Duration, 1),
		quit: make(chan bool),
		done: make(chan bool),
	}

	logger.Logf(logger.Allow, "vsync", "ticker started at %.2fHz", hz)

	go tck.run(period(hz))

	return tck
}

func (tck *Ticker) run(dur time.Duration) {
	defer close(tck.done)

	t := time.NewTicker(dur)
	defer t.Stop()

	for {
		select {
		case <-tck.quit:
			return
		case dur = <-tck.rate:
			t.Reset(dur)
		case <-t.C:
			tck.count.Add(1)
			tck.notify()
		}
	}
}

// SetRate changes the rate of the ticker. The change happens on the next
// tick.
func (tck *Ticker) SetRate(hz float32) {
	// replace any pending rate change that has not yet been seen
	select {
	case <-tck.rate:
	default:
	}
	tck.rate <- period(hz)
	logger.Logf(logger.Allow, "vsync", "ticker rate changed to %.2fHz", hz)
}

// Stop the ticker. Once Stop() has returned no subscriber will be called.
// Stopping more than once is safe but Stop() must not be called from a
// subscribed function.
func (tck *Ticker) Stop() {
	select {
	case <-tck.done:
		return
	default:
	}

	select {
	case tck.quit <- true:
	case <-tck.done:
	}
	<-tck.done
}

// Count returns the number of ticks since the ticker started.
func (tck *Ticker) Count() int {
	return int(tck.count.Load())
}
