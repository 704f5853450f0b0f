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

// Package vsync notifies subscribers of the vertical blank.
//
// On hardware the notification is an interrupt handler. The Ticker type
// emulates the interrupt with a time.Ticker running at the refresh rate of
// the display mode. The Manual type is pulsed explicitly and is useful for
// stepping and for tests.
package vsync

import (
	"sort"
	"sync"
)

// ID identifies a subscription. IDs are never reused by a Notifier.
type ID int

// Notifier implementations call each subscribed function once per vertical
// blank.
type Notifier interface {
	Subscribe(func()) ID
	Unsubscribe(ID)
}

// subscribers is the subscription list shared by the Notifier
// implementations in this package.
type subscribers struct {
	crit sync.Mutex
	next ID
	fns  map[ID]func()
}

func (sub *subscribers) Subscribe(fn func()) ID {
	sub.crit.Lock()
	defer sub.crit.Unlock()

	if sub.fns == nil {
		sub.fns = make(map[ID]func())
	}

	sub.next++
	sub.fns[sub.next] = fn
	return sub.next
}

func (sub *subscribers) Unsubscribe(id ID) {
	sub.crit.Lock()
	defer sub.crit.Unlock()
	delete(sub.fns, id)
}

// Len returns the number of subscriptions.
func (sub *subscribers) Len() int {
	sub.crit.Lock()
	defer sub.crit.Unlock()
	return len(sub.fns)
}

// call subscribers in the order they subscribed. the lock is not held while
// the functions are running so a function can unsubscribe itself
func (sub *subscribers) notify() {
	sub.crit.Lock()
	ids := make([]ID, 0, len(sub.fns))
	for id := range sub.fns {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	fns := make([]func(), len(ids))
	for i, id := range ids {
		fns[i] = sub.fns[id]
	}
	sub.crit.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Manual is a Notifier that is pulsed by calling Pulse(). Subscribers are
// called on the goroutine that calls Pulse().
type Manual struct {
	subscribers
	count int
}

// Pulse calls every subscribed function once.
func (man *Manual) Pulse() {
	man.count++
	man.notify()
}

// Count returns the number of pulses.
func (man *Manual) Count() int {
	return man.count
}
